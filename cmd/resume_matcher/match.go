package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	matchResumeFile string
	matchJobFile    string
	matchJobText    string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a resume covers a job description's keywords",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to the resume (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to the job description")
	matchCmd.Flags().StringVar(&matchJobText, "job-text", "", "Inline job description instead of --job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matchResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	if matchJobFile == "" && matchJobText == "" {
		return fmt.Errorf("must provide either --job or --job-text")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, matchResumeFile, "")
	if err != nil {
		return err
	}
	job, err := rt.readText(cmd, matchJobFile, matchJobText)
	if err != nil {
		return err
	}

	result := rt.engine.MatchResumeToJob(resume, job)
	return emit(cmd, result, func(p *observability.Printer) { p.PrintMatch(&result) })
}
