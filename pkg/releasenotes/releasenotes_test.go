package releasenotes_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/germanamz/relnotes/pkg/releasenotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParams() releasenotes.Params {
	return releasenotes.Params{
		Version:            "v1.2.3",
		UpstreamRepo:       "lukilabs/craft-agents-oss",
		UpstreamReleaseURL: "https://github.com/lukilabs/craft-agents-oss/releases/tag/v1.2.3",
		EnglishBody:        "## Added\n\n- Feature A",
		ChineseBody:        "## 新增\n\n- 功能 A",
	}
}

func TestCompose_ContainsMetadataAndSections(t *testing.T) {
	out := releasenotes.Compose(sampleParams())

	assert.Contains(t, out, "# v1.2.3 (Bilingual Release)")
	assert.Contains(t, out, "Upstream repository: `lukilabs/craft-agents-oss`")
	assert.Contains(t, out, "Upstream release: https://github.com/lukilabs/craft-agents-oss/releases/tag/v1.2.3")
	assert.Contains(t, out, releasenotes.EnglishHeading)
	assert.Contains(t, out, "## Added")
	assert.Contains(t, out, releasenotes.ChineseHeading)
	assert.Contains(t, out, "## 新增")
}

func TestCompose_Layout(t *testing.T) {
	p := sampleParams()
	p.EnglishBody = "\n\n## Added\n\n- Feature A\n\n"
	p.ChineseBody = "  ## 新增\n\n- 功能 A\n"

	want := strings.Join([]string{
		"# v1.2.3 (Bilingual Release)",
		"",
		"- Upstream repository: `lukilabs/craft-agents-oss`",
		"- Upstream release: https://github.com/lukilabs/craft-agents-oss/releases/tag/v1.2.3",
		"",
		"> Chinese section is machine-translated and reviewed in this fork workflow.",
		"",
		"---",
		"",
		"## English (Official)",
		"",
		"## Added",
		"",
		"- Feature A",
		"",
		"---",
		"",
		"## 中文（自动翻译）",
		"",
		"## 新增",
		"",
		"- 功能 A",
		"",
	}, "\n")

	assert.Equal(t, want, releasenotes.Compose(p))
}

func TestCompose_EnglishBeforeChinese(t *testing.T) {
	out := releasenotes.Compose(sampleParams())

	assert.Less(t, strings.Index(out, releasenotes.EnglishHeading), strings.Index(out, releasenotes.ChineseHeading))
	assert.True(t, strings.HasSuffix(out, "- 功能 A\n"))
}

func TestDiff_UpToDate(t *testing.T) {
	want := releasenotes.Compose(sampleParams())
	path := filepath.Join(t.TempDir(), "release.md")
	require.NoError(t, os.WriteFile(path, []byte(want), 0o600))

	diff, err := releasenotes.Diff(path, want)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestDiff_Changed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.md")
	old := releasenotes.Compose(sampleParams())
	require.NoError(t, os.WriteFile(path, []byte(old), 0o600))

	p := sampleParams()
	p.ChineseBody = "## 新增\n\n- 功能 B"

	diff, err := releasenotes.Diff(path, releasenotes.Compose(p))
	require.NoError(t, err)

	assert.Contains(t, diff, "--- "+path)
	assert.Contains(t, diff, "-- 功能 A")
	assert.Contains(t, diff, "+- 功能 B")
}

func TestDiff_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.md")

	diff, err := releasenotes.Diff(path, "# v1.0.0\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "+# v1.0.0")
}
