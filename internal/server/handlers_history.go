package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
)

// HistoryResponse represents the response for /api/history
type HistoryResponse struct {
	Analyses []db.AnalysisSummary `json:"analyses"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

// TopKeywordsResponse represents the response for /api/keywords/top
type TopKeywordsResponse struct {
	RoleType string           `json:"role_type,omitempty"`
	Keywords []db.KeywordStat `json:"keywords"`
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, &ErrStoreUnavailable{})
		return
	}

	limit, err := queryInt(r, "limit", db.DefaultListLimit)
	if err != nil {
		s.fail(w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		s.fail(w, err)
		return
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit, offset)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, HistoryResponse{
		Analyses: analyses,
		Limit:    db.ClampLimit(limit),
		Offset:   max(offset, 0),
	})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, &ErrStoreUnavailable{})
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.fail(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if rec == nil {
		s.fail(w, &ErrNotFound{Resource: "analysis", ID: idStr})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleTopKeywords(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, &ErrStoreUnavailable{})
		return
	}

	limit, err := queryInt(r, "limit", db.DefaultListLimit)
	if err != nil {
		s.fail(w, err)
		return
	}
	roleType := r.URL.Query().Get("role_type")

	stats, err := s.store.TopKeywords(r.Context(), roleType, limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, TopKeywordsResponse{RoleType: roleType, Keywords: stats})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrValidation{Field: name, Message: "must be an integer"}
	}
	return v, nil
}
