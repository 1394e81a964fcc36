package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	suggestResumeFile string
	suggestJobFile    string
	suggestMissing    string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Produce prioritized improvement suggestions for a resume",
	Long: "Runs the compliance and style checks on the resume and turns their findings, plus the keywords " +
		"missing for the job (from --job or --missing), into at most ten prioritized suggestions.",
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestResumeFile, "resume", "r", "", "Path to the resume (required)")
	suggestCmd.Flags().StringVarP(&suggestJobFile, "job", "j", "", "Path to the job description used to find missing keywords")
	suggestCmd.Flags().StringVar(&suggestMissing, "missing", "", "Comma-separated missing keywords instead of --job")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if suggestResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	if suggestJobFile != "" && suggestMissing != "" {
		return fmt.Errorf("cannot use --job with --missing")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, suggestResumeFile, "")
	if err != nil {
		return err
	}

	missing := splitList(suggestMissing)
	if suggestJobFile != "" {
		job, err := rt.readText(cmd, suggestJobFile, "")
		if err != nil {
			return err
		}
		missing = rt.engine.MatchResumeToJob(resume, job).Missing
	}

	compliance := rt.engine.AnalyzeCompliance(resume)
	style := rt.engine.AnalyzeStyle(resume)
	suggestions := rt.engine.GenerateSuggestions(resume, missing, compliance.Issues, style.Issues)

	return emit(cmd, suggestions, func(p *observability.Printer) { p.PrintSuggestions(suggestions) })
}
