package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/textutil"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxPromptChars bounds the text sent to the model.
const maxPromptChars = 12000

// KeywordExtractor augments the heuristic extractor with terms proposed by an
// LLM. Proposed terms are kept only when they occur in the text. Any client
// failure falls back to the heuristic result.
type KeywordExtractor struct {
	client   Client
	fallback keywords.Extractor
	tier     ModelTier
	timeout  time.Duration
	logger   *zerolog.Logger
}

var _ keywords.Extractor = (*KeywordExtractor)(nil)

// NewKeywordExtractor builds the strategy. A nil logger discards output.
func NewKeywordExtractor(client Client, config *Config, logger *zerolog.Logger) *KeywordExtractor {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &KeywordExtractor{
		client:   client,
		fallback: keywords.Heuristic{},
		tier:     TierLite,
		timeout:  timeout,
		logger:   logger,
	}
}

type keywordResponse struct {
	Keywords []string `json:"keywords"`
}

// Extract returns the heuristic keywords plus any grounded LLM terms.
func (x *KeywordExtractor) Extract(text string) types.KeywordSet {
	set := x.fallback.Extract(text)
	text = textutil.Sanitize(text)
	if x.client == nil || strings.TrimSpace(text) == "" {
		return set
	}

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	terms, err := x.propose(ctx, text)
	if err != nil {
		x.logger.Warn().Err(err).Msg("LLM keyword extraction failed, using heuristic keywords")
		return set
	}

	lower := strings.ToLower(text)
	added := 0
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || keywords.IsStopWord(t) || set.Has(t) || !strings.Contains(lower, t) {
			continue
		}
		set.Add(t)
		added++
	}
	x.logger.Debug().Int("heuristic", set.Len()-added).Int("llm", added).Msg("extracted keywords")
	return set
}

func (x *KeywordExtractor) propose(ctx context.Context, text string) ([]string, error) {
	raw, err := x.client.GenerateJSON(ctx, buildKeywordPrompt(text), x.tier)
	if err != nil {
		return nil, err
	}
	var resp keywordResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}
	return resp.Keywords, nil
}

func buildKeywordPrompt(text string) string {
	return prompts.Format(prompts.MustGet("keywords.json", "extract-keywords"), map[string]string{
		"Text": textutil.Truncate(text, maxPromptChars),
	})
}
