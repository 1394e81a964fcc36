package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
)

// appRuntime holds what every command needs: configuration, a logger and the engine.
type appRuntime struct {
	cfg     *config.Config
	logger  zerolog.Logger
	engine  *engine.Engine
	closers []func() error
}

// newRuntime loads configuration and builds the engine. Long-running commands
// pass alwaysLog so they log at the configured level without --verbose.
func newRuntime(ctx context.Context, alwaysLog bool) (*appRuntime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}

	logCfg := observability.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}
	switch {
	case alwaysLog:
	case cfg.Verbose:
		logCfg = observability.LogConfig{Level: "debug", Format: "pretty"}
	default:
		logCfg.Level = "disabled"
	}

	rt := &appRuntime{cfg: cfg, logger: observability.NewLogger(logCfg)}

	opts := []engine.Option{engine.WithSynonymClasses(cfg.ExtraSynonyms)}
	if cfg.GeminiAPIKey != "" && !noLLM {
		llmCfg := llm.DefaultConfig()
		if cfg.GeminiModel != "" {
			llmCfg = llmCfg.WithModel(llm.TierLite, cfg.GeminiModel)
		}
		client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		rt.closers = append(rt.closers, client.Close)
		opts = append(opts, engine.WithExtractor(llm.NewKeywordExtractor(client, llmCfg, &rt.logger)))
		rt.logger.Debug().Str("model", llmCfg.GetModel(llm.TierLite)).Msg("LLM keyword extraction enabled")
	}

	eng, err := engine.New(opts...)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.engine = eng
	return rt, nil
}

// Close releases clients opened by newRuntime.
func (rt *appRuntime) Close() {
	for _, closeFn := range rt.closers {
		if err := closeFn(); err != nil {
			rt.logger.Warn().Err(err).Msg("failed to close client")
		}
	}
}

// readText loads a document from disk, or returns inline unchanged when path is empty.
// "-" reads plain text from stdin.
func (rt *appRuntime) readText(cmd *cobra.Command, path, inline string) (string, error) {
	if path == "" {
		return rt.cfg.Truncate(inline), nil
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return rt.cfg.Truncate(ingestion.CleanText(string(data))), nil
	}

	text, doc, err := ingestion.ReadFile(path)
	if err != nil {
		return "", err
	}
	rt.logger.Debug().Str("file", doc.Filename).Str("type", doc.ContentType).Int("chars", doc.Chars).Msg("read document")
	return rt.cfg.Truncate(text), nil
}

// emit prints v as JSON with --json, otherwise through render.
func emit(cmd *cobra.Command, v any, render func(p *observability.Printer)) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	render(observability.NewPrinter(cmd.OutOrStdout()))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// writeJSONFile writes v as indented JSON to path.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
