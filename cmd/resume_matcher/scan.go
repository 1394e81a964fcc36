package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scanJobFile string

var scanCmd = &cobra.Command{
	Use:   "scan <resume>...",
	Short: "Score several resumes at once and rank them",
	Long: "Reads each resume, runs the ATS and style checks, and with --job also the keyword match. " +
		"Resumes are ranked by overall score when a job is given, otherwise by ATS score.",
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanJobFile, "job", "j", "", "Path to the job description to match against")

	rootCmd.AddCommand(scanCmd)
}

// ScanEntry is one row of the scan output.
type ScanEntry struct {
	File          string   `json:"file"`
	ATSScore      float64  `json:"ats_score"`
	Compatibility string   `json:"compatibility"`
	StyleScore    float64  `json:"style_score"`
	MatchScore    *float64 `json:"match_score,omitempty"`
	OverallScore  *float64 `json:"overall_score,omitempty"`
	Missing       []string `json:"missing_keywords,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	job, err := rt.readText(cmd, scanJobFile, "")
	if err != nil {
		return err
	}

	entries := make([]ScanEntry, len(args))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		g.Go(func() error {
			entry := ScanEntry{File: path}
			resume, err := rt.readText(cmd, path, "")
			if err != nil {
				entry.Error = err.Error()
				entries[i] = entry
				return nil
			}

			if job == "" {
				compliance := rt.engine.AnalyzeCompliance(resume)
				entry.ATSScore, entry.Compatibility = compliance.Score, compliance.Rating
				entry.StyleScore = rt.engine.AnalyzeStyle(resume).Score
				entries[i] = entry
				return nil
			}

			report, err := rt.engine.Analyze(ctx, resume, job)
			if err != nil {
				return err
			}
			entry.ATSScore, entry.Compatibility = report.Compliance.Score, report.Compliance.Rating
			entry.StyleScore = report.Style.Score
			entry.MatchScore = &report.Match.Score
			entry.OverallScore = &report.OverallScore
			entry.Missing = report.Match.Missing
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to scan resumes: %w", err)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return rankScore(entries[a]) > rankScore(entries[b])
	})

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if job != "" {
		_, _ = fmt.Fprintln(tw, "RANK\tFILE\tOVERALL\tMATCH\tATS\tSTYLE\tMISSING")
	} else {
		_, _ = fmt.Fprintln(tw, "RANK\tFILE\tATS\tRATING\tSTYLE")
	}
	for i, e := range entries {
		name := filepath.Base(e.File)
		switch {
		case e.Error != "":
			_, _ = fmt.Fprintf(tw, "-\t%s\terror: %s\n", name, e.Error)
		case job != "":
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%.0f\t%.0f\t%d\n",
				i+1, name, *e.OverallScore, *e.MatchScore, e.ATSScore, e.StyleScore, len(e.Missing))
		default:
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%.0f\t%s\t%.0f\n", i+1, name, e.ATSScore, e.Compatibility, e.StyleScore)
		}
	}
	return tw.Flush()
}

// rankScore orders entries by overall score when present, then ATS score.
// Unreadable files sort last.
func rankScore(e ScanEntry) float64 {
	if e.Error != "" {
		return -1
	}
	if e.OverallScore != nil {
		return *e.OverallScore
	}
	return e.ATSScore
}
