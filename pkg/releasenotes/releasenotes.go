// Package releasenotes composes the bilingual release document from the
// English notes and their Chinese translation.
package releasenotes

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Params are the inputs of Compose.
type Params struct {
	Version            string
	UpstreamRepo       string
	UpstreamReleaseURL string
	EnglishBody        string
	ChineseBody        string
}

// Section headings of the composed document.
const (
	EnglishHeading = "## English (Official)"
	ChineseHeading = "## 中文（自动翻译）"
)

const translationNotice = "> Chinese section is machine-translated and reviewed in this fork workflow."

// Compose renders the bilingual markdown document. Both bodies are trimmed;
// the result ends with a single newline.
func Compose(p Params) string {
	lines := []string{
		fmt.Sprintf("# %s (Bilingual Release)", p.Version),
		"",
		fmt.Sprintf("- Upstream repository: `%s`", p.UpstreamRepo),
		fmt.Sprintf("- Upstream release: %s", p.UpstreamReleaseURL),
		"",
		translationNotice,
		"",
		"---",
		"",
		EnglishHeading,
		"",
		strings.TrimSpace(p.EnglishBody),
		"",
		"---",
		"",
		ChineseHeading,
		"",
		strings.TrimSpace(p.ChineseBody),
		"",
	}

	return strings.Join(lines, "\n")
}

// Diff returns a unified diff from the file at path to want. A missing file
// diffs as empty. The result is empty when the file already matches.
func Diff(path, want string) (string, error) {
	current, err := os.ReadFile(path) //nolint:gosec // path is a caller-provided output file
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("releasenotes: read %s: %w", path, err)
	}

	if string(current) == want {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(want),
		FromFile: path,
		ToFile:   path + " (composed)",
		Context:  3,
	}

	result, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("releasenotes: diff: %w", err)
	}

	return result, nil
}
