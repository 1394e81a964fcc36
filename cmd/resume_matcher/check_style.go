package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var styleResumeFile string

var checkStyleCmd = &cobra.Command{
	Use:   "check-style",
	Short: "Check a resume's wording: weak phrases, typos, passive voice, pronouns, repetition",
	RunE:  runCheckStyle,
}

func init() {
	checkStyleCmd.Flags().StringVarP(&styleResumeFile, "resume", "r", "", "Path to the resume (required)")

	rootCmd.AddCommand(checkStyleCmd)
}

func runCheckStyle(cmd *cobra.Command, _ []string) error {
	if styleResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, styleResumeFile, "")
	if err != nil {
		return err
	}

	report := rt.engine.AnalyzeStyle(resume)
	return emit(cmd, report, func(p *observability.Printer) { p.PrintStyle(&report) })
}
