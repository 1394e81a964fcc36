package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	autoFixResumeFile string
	autoFixJobFile    string
	autoFixFixes      string
	autoFixOutFile    string
)

var autoFixCmd = &cobra.Command{
	Use:   "auto-fix",
	Short: "Apply automatic edits to a resume",
	Long: "Applies the selected fixes to the resume text: skills (add missing technical keywords from --job), " +
		"action_verbs (replace the first weak verb) and quantify (add a metric to the first bullet without one).",
	RunE: runAutoFix,
}

func init() {
	autoFixCmd.Flags().StringVarP(&autoFixResumeFile, "resume", "r", "", "Path to the resume (required)")
	autoFixCmd.Flags().StringVarP(&autoFixJobFile, "job", "j", "", "Path to the job description (used by the skills fix)")
	autoFixCmd.Flags().StringVar(&autoFixFixes, "fix", "skills,action_verbs,quantify", "Comma-separated fixes to apply")
	autoFixCmd.Flags().StringVarP(&autoFixOutFile, "out", "o", "", "Write the fixed resume text to this file")

	rootCmd.AddCommand(autoFixCmd)
}

func runAutoFix(cmd *cobra.Command, _ []string) error {
	if autoFixResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	rt, err := newRuntime(context.Background(), false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, autoFixResumeFile, "")
	if err != nil {
		return err
	}
	job, err := rt.readText(cmd, autoFixJobFile, "")
	if err != nil {
		return err
	}

	req := types.AutoFixRequest{ResumeText: resume, JobDescription: job}
	for _, f := range splitList(autoFixFixes) {
		req.Fixes = append(req.Fixes, types.FixKind(f))
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid --fix value %q (use skills, action_verbs, quantify): %w", autoFixFixes, err)
	}

	result := rt.engine.AutoFix(req.ResumeText, req.JobDescription, req.Fixes)

	if autoFixOutFile != "" {
		if err := os.WriteFile(autoFixOutFile, []byte(result.FixedText), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if len(result.Applied) == 0 {
		_, _ = fmt.Fprintln(out, "No fixes applied")
	} else {
		_, _ = fmt.Fprintf(out, "Applied: %s\n", strings.Join(result.Applied, "; "))
		_, _ = fmt.Fprintf(out, "Word count change: %+d\n", result.WordCountChange)
	}
	if autoFixOutFile == "" {
		_, _ = fmt.Fprintf(out, "\n%s\n", result.FixedText)
	} else {
		_, _ = fmt.Fprintf(out, "Output: %s\n", autoFixOutFile)
	}
	return nil
}
