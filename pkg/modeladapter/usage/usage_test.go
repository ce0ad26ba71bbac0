package usage_test

import (
	"log/slog"
	"testing"

	"github.com/germanamz/relnotes/pkg/modeladapter/usage"
	"github.com/stretchr/testify/assert"
)

func TestTokenCount_Total(t *testing.T) {
	tc := usage.TokenCount{PromptTokens: 120, CompletionTokens: 80}
	assert.Equal(t, 200, tc.Total())
}

func TestTokenCount_LogValue(t *testing.T) {
	v := usage.TokenCount{PromptTokens: 3, CompletionTokens: 4}.LogValue()

	assert.Equal(t, slog.KindGroup, v.Kind())

	attrs := map[string]int64{}
	for _, a := range v.Group() {
		attrs[a.Key] = a.Value.Int64()
	}
	assert.Equal(t, map[string]int64{"prompt": 3, "completion": 4, "total": 7}, attrs)
}

func TestTracker_Empty(t *testing.T) {
	var tr usage.Tracker

	tc, ok := tr.Last()
	assert.False(t, ok)
	assert.Equal(t, usage.TokenCount{}, tc)
	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, usage.TokenCount{}, tr.Total())
}

func TestTracker_AddLastTotal(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenCount{PromptTokens: 10, CompletionTokens: 5})
	tr.Add(usage.TokenCount{PromptTokens: 20, CompletionTokens: 10})

	last, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, usage.TokenCount{PromptTokens: 20, CompletionTokens: 10}, last)
	assert.Equal(t, 2, tr.Count())
	assert.Equal(t, usage.TokenCount{PromptTokens: 30, CompletionTokens: 15}, tr.Total())
}
