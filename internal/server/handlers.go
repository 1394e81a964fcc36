package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-matcher/internal/history"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// KeywordsResponse represents the response for /api/keywords
type KeywordsResponse struct {
	Keywords types.KeywordSet `json:"keywords"`
	Count    int              `json:"count"`
}

// SuggestionsResponse represents the response for /api/suggestions
type SuggestionsResponse struct {
	Suggestions  []types.Suggestion       `json:"suggestions"`
	Optimization types.OptimizationReport `json:"optimization"`
}

// ScanResponse represents the response for /api/scan-resume. Report is set
// only when a job description accompanies the upload.
type ScanResponse struct {
	Document   *ingestion.Document    `json:"document"`
	Text       string                 `json:"text"`
	Compliance types.ComplianceReport `json:"ats_result"`
	Style      types.StyleReport      `json:"grammar_result"`
	Report     *types.AnalysisReport  `json:"report,omitempty"`
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.KeywordsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}

	set := s.engine.ExtractKeywords(s.cfg.Truncate(req.Text))
	s.jsonResponse(w, http.StatusOK, KeywordsResponse{Keywords: set, Count: set.Len()})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}

	result := s.engine.MatchResumeToJob(s.cfg.Truncate(req.ResumeText), s.cfg.Truncate(req.JobDescription))
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleATSCheck(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeTextRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeCompliance(s.cfg.Truncate(req.ResumeText)))
}

func (s *Server) handleGrammarCheck(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeTextRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeStyle(s.cfg.Truncate(req.ResumeText)))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestionsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}

	text := s.cfg.Truncate(req.ResumeText)
	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{
		Suggestions:  s.engine.GenerateSuggestions(text, req.MissingKeywords, req.ComplianceIssues, req.StyleIssues),
		Optimization: s.engine.Optimize(text, req.MissingKeywords, req.ComplianceIssues, req.StyleIssues),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	req.ResumeText = s.cfg.Truncate(req.ResumeText)
	req.JobDescription = s.cfg.Truncate(req.JobDescription)

	report, err := s.engine.Analyze(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.fail(w, fmt.Errorf("failed to analyze: %w", err))
		return
	}
	report.ResumeName = req.ResumeName
	report.JobTitle = req.JobTitle

	if req.Save {
		s.save(r, &req, report)
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// save records the analysis when a store is configured. Storage failures are
// logged and leave report.ID empty; the analysis itself is still returned.
func (s *Server) save(r *http.Request, req *types.AnalyzeRequest, report *types.AnalysisReport) {
	if s.store == nil {
		s.logger.Warn().Msg("save requested but no database is configured")
		return
	}
	if _, err := history.Record(r.Context(), s.store, req, report); err != nil {
		s.logger.Error().Err(err).Msg("failed to save analysis")
	}
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeTextRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ParseResume(s.cfg.Truncate(req.ResumeText)))
}

func (s *Server) handleAutoFix(w http.ResponseWriter, r *http.Request) {
	var req types.AutoFixRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}

	result := s.engine.AutoFix(s.cfg.Truncate(req.ResumeText), s.cfg.Truncate(req.JobDescription), req.Fixes)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleScanResume extracts text from an uploaded "resume" file and analyzes it.
func (s *Server) handleScanResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBodyBytes)
	if err := r.ParseMultipartForm(MaxUploadBodyBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.fail(w, maxBytesErr)
			return
		}
		s.fail(w, &ErrValidation{Field: "resume", Message: "expected a multipart upload"})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.fail(w, &ErrValidation{Field: "resume", Message: "file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, err := ingestion.ExtractText(contentType, header.Filename, data)
	if err != nil {
		s.fail(w, err)
		return
	}
	doc := ingestion.NewDocument(header.Filename, ingestion.DetectType(contentType, header.Filename), text)
	text = s.cfg.Truncate(text)

	resp := ScanResponse{
		Document:   doc,
		Text:       text,
		Compliance: s.engine.AnalyzeCompliance(text),
		Style:      s.engine.AnalyzeStyle(text),
	}

	if job := strings.TrimSpace(r.FormValue("job_description")); job != "" {
		req := types.AnalyzeRequest{
			ResumeText:     text,
			JobDescription: s.cfg.Truncate(job),
			JobTitle:       r.FormValue("job_title"),
			ResumeName:     header.Filename,
		}
		report, err := s.engine.Analyze(r.Context(), req.ResumeText, req.JobDescription)
		if err != nil {
			s.fail(w, fmt.Errorf("failed to analyze: %w", err))
			return
		}
		report.ResumeName = req.ResumeName
		report.JobTitle = req.JobTitle
		if r.FormValue("save") == "true" {
			s.save(r, &req, report)
		}
		resp.Report = report
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
