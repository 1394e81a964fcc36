package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	historyLimit    int
	historyOffset   int
	historyID       string
	historyRoleType string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored analyses and the keyword library",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one stored analysis",
	RunE:  runHistoryShow,
}

var historyKeywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the most frequent keywords seen in saved job descriptions",
	RunE:  runHistoryKeywords,
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of analyses")
	historyListCmd.Flags().IntVar(&historyOffset, "offset", 0, "Number of analyses to skip")
	historyShowCmd.Flags().StringVar(&historyID, "id", "", "Analysis ID (required)")
	historyKeywordsCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of keywords")
	historyKeywordsCmd.Flags().StringVar(&historyRoleType, "role-type", "", "Only keywords recorded for this role type")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyKeywordsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := openDatabase(ctx, rt)
	if err != nil {
		return err
	}
	defer database.Close()

	analyses, err := database.ListAnalyses(ctx, historyLimit, historyOffset)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), analyses)
	}
	if len(analyses) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No analyses stored")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCREATED\tRESUME\tJOB\tMATCH\tATS\tOVERALL")
	for _, a := range analyses {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.0f\t%.1f\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04"), a.ResumeName, a.JobTitle, a.Score, a.ATSScore, a.OverallScore)
	}
	return tw.Flush()
}

func runHistoryShow(cmd *cobra.Command, _ []string) error {
	if historyID == "" {
		return fmt.Errorf("--id is required")
	}
	id, err := uuid.Parse(historyID)
	if err != nil {
		return fmt.Errorf("invalid analysis id %q: %w", historyID, err)
	}

	ctx := context.Background()
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := openDatabase(ctx, rt)
	if err != nil {
		return err
	}
	defer database.Close()

	rec, err := database.GetAnalysis(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return writeJSON(cmd.OutOrStdout(), rec)
}

func runHistoryKeywords(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	database, err := openDatabase(ctx, rt)
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.TopKeywords(ctx, historyRoleType, historyLimit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), stats)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEYWORD\tROLE\tSEEN\tIMPORTANCE")
	for _, s := range stats {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\n", s.Keyword, s.RoleType, s.Frequency, s.ImportanceScore)
	}
	return tw.Flush()
}
