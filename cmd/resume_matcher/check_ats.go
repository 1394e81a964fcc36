package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var atsResumeFile string

var checkATSCmd = &cobra.Command{
	Use:   "check-ats",
	Short: "Audit a resume for applicant tracking system compatibility",
	RunE:  runCheckATS,
}

func init() {
	checkATSCmd.Flags().StringVarP(&atsResumeFile, "resume", "r", "", "Path to the resume (required)")

	rootCmd.AddCommand(checkATSCmd)
}

func runCheckATS(cmd *cobra.Command, _ []string) error {
	if atsResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, atsResumeFile, "")
	if err != nil {
		return err
	}

	report := rt.engine.AnalyzeCompliance(resume)
	return emit(cmd, report, func(p *observability.Printer) { p.PrintCompliance(&report) })
}
