package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/history"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobText    string
	analyzeJobURL     string
	analyzeTitle      string
	analyzeCompany    string
	analyzeRoleType   string
	analyzeOutFile    string
	analyzeSave       bool
	analyzeValidate   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis of a resume against a job description",
	Long: "Runs keyword matching, the ATS compatibility audit and the style check, then derives prioritized " +
		"suggestions and an optimization report. The job description can be a file, inline text or a job posting URL.",
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to the resume (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to the job description")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Inline job description")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fetch")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title recorded with the analysis")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company recorded with the analysis")
	analyzeCmd.Flags().StringVar(&analyzeRoleType, "role-type", "", "Role type for the keyword library (Full Stack, Frontend, Backend, Other)")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Also write the report as JSON to this file")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Store the analysis in the database (requires DATABASE_URL)")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the report against schemas/analysis_report.schema.json")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	sources := 0
	for _, s := range []string{analyzeJobFile, analyzeJobText, analyzeJobURL} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("must provide exactly one of --job, --job-text or --job-url")
	}

	ctx := context.Background()
	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	resume, err := rt.readText(cmd, analyzeResumeFile, "")
	if err != nil {
		return err
	}

	var job string
	if analyzeJobURL != "" {
		text, doc, err := ingestion.FetchJobPosting(ctx, analyzeJobURL, nil)
		if err != nil {
			return err
		}
		rt.logger.Debug().Str("url", doc.URL).Int("chars", doc.Chars).Msg("fetched job posting")
		job = rt.cfg.Truncate(text)
	} else if job, err = rt.readText(cmd, analyzeJobFile, analyzeJobText); err != nil {
		return err
	}

	req := &types.AnalyzeRequest{
		ResumeText:     resume,
		JobDescription: job,
		JobTitle:       analyzeTitle,
		Company:        analyzeCompany,
		ResumeName:     analyzeResumeFile,
		RoleType:       analyzeRoleType,
		Save:           analyzeSave,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	start := time.Now()
	report, err := rt.engine.Analyze(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to analyze: %w", err)
	}
	report.ResumeName = req.ResumeName
	report.JobTitle = req.JobTitle
	rt.logger.Debug().Dur("duration", time.Since(start)).Float64("overall_score", report.OverallScore).Msg("analysis finished")

	if analyzeValidate {
		if err := validateReport(report); err != nil {
			return err
		}
	}

	if analyzeSave {
		if err := saveReport(ctx, rt, req, report); err != nil {
			return err
		}
	}

	if analyzeOutFile != "" {
		if err := writeJSONFile(analyzeOutFile, report); err != nil {
			return err
		}
	}

	return emit(cmd, report, func(p *observability.Printer) { p.PrintAnalysis(report) })
}

// validateReport fails on schema violations and only warns when the schema
// itself cannot be loaded.
func validateReport(report *types.AnalysisReport) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.AnalysisReportSchema)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s not found, skipping validation\n", schemas.AnalysisReportSchema)
		return nil
	}

	err := schemas.ValidateValue(schemaPath, report)
	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr):
		return fmt.Errorf("report does not validate against schema: %w", err)
	case errors.As(err, &schemaLoadErr):
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report (schema loading failed): %v\n", err)
		return nil
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report: %v\n", err)
		return nil
	}
}

func saveReport(ctx context.Context, rt *appRuntime, req *types.AnalyzeRequest, report *types.AnalysisReport) error {
	database, err := openDatabase(ctx, rt)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := history.Record(ctx, database, req, report)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "Saved analysis %s\n", id)
	return nil
}

// openDatabase connects with the configured URL and applies the schema.
func openDatabase(ctx context.Context, rt *appRuntime) (*db.DB, error) {
	if rt.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	database, err := db.Connect(ctx, rt.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
