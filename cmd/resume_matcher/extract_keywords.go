package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	keywordsFile string
	keywordsText string
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "List the keywords of a resume or job description",
	RunE:  runExtractKeywords,
}

func init() {
	extractKeywordsCmd.Flags().StringVarP(&keywordsFile, "in", "i", "", "Path to a text, HTML, PDF or DOCX file (- for stdin)")
	extractKeywordsCmd.Flags().StringVar(&keywordsText, "text", "", "Inline text instead of --in")

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	if keywordsFile == "" && keywordsText == "" {
		return fmt.Errorf("must provide either --in or --text")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	text, err := rt.readText(cmd, keywordsFile, keywordsText)
	if err != nil {
		return err
	}

	set := rt.engine.ExtractKeywords(text)
	return emit(cmd, set, func(p *observability.Printer) { p.PrintKeywords(set) })
}
