package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	response string
	err      error
	prompts  []string
	block    bool
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, _ ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestKeywordExtractor_AddsGroundedTerms(t *testing.T) {
	client := &fakeClient{response: `{"keywords": ["Terraform", "Python", "event sourcing", "quantum"]}`}
	x := NewKeywordExtractor(client, nil, nil)

	set := x.Extract("Python services with terraform and event sourcing")

	assert.True(t, set.Has("python"))
	assert.True(t, set.Has("terraform"))
	assert.True(t, set.Has("event sourcing"))
	assert.False(t, set.Has("quantum"), "terms absent from the text are dropped")
	assert.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Python services with terraform")
}

func TestKeywordExtractor_DropsStopWords(t *testing.T) {
	client := &fakeClient{response: `{"keywords": ["the", "with"]}`}
	set := NewKeywordExtractor(client, nil, nil).Extract("the job with Go")

	assert.False(t, set.Has("the"))
	assert.False(t, set.Has("with"))
	assert.True(t, set.Has("go"))
}

func TestKeywordExtractor_FallsBackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	set := NewKeywordExtractor(client, nil, nil).Extract("Looking for Python and AWS")

	assert.ElementsMatch(t, []string{"aws", "python"}, set.Sorted())
}

func TestKeywordExtractor_FallsBackOnBadJSON(t *testing.T) {
	client := &fakeClient{response: "not json"}
	set := NewKeywordExtractor(client, nil, nil).Extract("Looking for Python")

	assert.Equal(t, []string{"python"}, set.Sorted())
}

func TestKeywordExtractor_Timeout(t *testing.T) {
	client := &fakeClient{block: true}
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond

	start := time.Now()
	set := NewKeywordExtractor(client, cfg, nil).Extract("Looking for Python")

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, set.Has("python"))
}

func TestKeywordExtractor_EmptyTextSkipsClient(t *testing.T) {
	client := &fakeClient{response: `{"keywords": ["go"]}`}
	set := NewKeywordExtractor(client, nil, nil).Extract("   ")

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, client.prompts)
}

func TestBuildKeywordPrompt_Truncates(t *testing.T) {
	prompt := buildKeywordPrompt(strings.Repeat("a", maxPromptChars+500))
	assert.Less(t, len(prompt), maxPromptChars+500)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"keywords\": []}\n```", `{"keywords": []}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"preamble", "Here you go:\n{\"a\": 1}", `{"a": 1}`},
		{"array", "  [1, 2]  ", `[1, 2]`},
		{"no json", "nothing", "nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_GetModel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel("unknown"))

	lite := &Config{Models: map[ModelTier]string{TierLite: "only-lite"}}
	assert.Equal(t, "only-lite", lite.GetModel(TierStandard))
	assert.Empty(t, (&Config{}).GetModel(TierLite))
}

func TestConfig_WithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierLite, "custom")

	assert.Equal(t, "custom", custom.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash-lite", base.GetModel(TierLite))
	assert.Equal(t, base.Timeout, custom.Timeout)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")
	assert.Error(t, err)
}
