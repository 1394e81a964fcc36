package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var parseResumeFile string

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract contact info, sections, experience, education and skills from a resume",
	RunE:  runParseResume,
}

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to the resume (required)")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	if parseResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, parseResumeFile, "")
	if err != nil {
		return err
	}

	parsed := rt.engine.ParseResume(resume)
	return emit(cmd, parsed, func(p *observability.Printer) { p.PrintParsedResume(&parsed) })
}
