package history

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

// rows is what a fakeStore has committed.
type rows struct {
	jobs      []db.JobInput
	resumes   []db.ResumeInput
	sightings map[string]int
	keywords  map[string]float64
	role      string
	analyses  []db.AnalysisInput
}

// fakeStore stages writes made inside InTx and keeps them only when fn succeeds.
type fakeStore struct {
	committed rows
	staged    *rows
	txCount   int

	failJob      error
	failAnalysis error
}

func (f *fakeStore) InTx(_ context.Context, fn func(w db.Writer) error) error {
	f.txCount++
	staged := f.committed
	staged.jobs = append([]db.JobInput(nil), f.committed.jobs...)
	staged.resumes = append([]db.ResumeInput(nil), f.committed.resumes...)
	staged.analyses = append([]db.AnalysisInput(nil), f.committed.analyses...)
	staged.sightings = map[string]int{}
	for k, v := range f.committed.sightings {
		staged.sightings[k] = v
	}
	f.staged = &staged
	defer func() { f.staged = nil }()

	if err := fn(f); err != nil {
		return err
	}
	f.committed = staged
	return nil
}

func (f *fakeStore) SaveJob(_ context.Context, in db.JobInput) (uuid.UUID, error) {
	if f.failJob != nil {
		return uuid.Nil, f.failJob
	}
	f.staged.jobs = append(f.staged.jobs, in)
	return uuid.New(), nil
}

func (f *fakeStore) SaveResume(_ context.Context, in db.ResumeInput) (uuid.UUID, error) {
	f.staged.resumes = append(f.staged.resumes, in)
	return uuid.New(), nil
}

func (f *fakeStore) RecordKeywords(_ context.Context, roleType string, weights map[string]float64) error {
	f.staged.role = roleType
	f.staged.keywords = weights
	for kw := range weights {
		f.staged.sightings[kw]++
	}
	return nil
}

func (f *fakeStore) SaveAnalysis(_ context.Context, in db.AnalysisInput) (uuid.UUID, error) {
	if f.failAnalysis != nil {
		return uuid.Nil, f.failAnalysis
	}
	f.staged.analyses = append(f.staged.analyses, in)
	return uuid.New(), nil
}

func analyze(t *testing.T, req *types.AnalyzeRequest) *types.AnalysisReport {
	t.Helper()
	report, err := engine.MustNew().Analyze(context.Background(), req.ResumeText, req.JobDescription)
	require.NoError(t, err)
	return report
}

func TestRecord(t *testing.T) {
	req := &types.AnalyzeRequest{
		ResumeText:     "Python developer with Docker experience",
		JobDescription: "Looking for Python, Docker and Kubernetes skills",
		JobTitle:       "Platform Engineer",
		ResumeName:     "jane.txt",
		RoleType:       "Backend",
	}
	report := analyze(t, req)

	store := &fakeStore{}
	id, err := Record(context.Background(), store, req, report)
	require.NoError(t, err)
	assert.Equal(t, 1, store.txCount)

	got := store.committed
	assert.Equal(t, id.String(), report.ID)
	require.Len(t, got.jobs, 1)
	assert.Equal(t, "Platform Engineer", got.jobs[0].Title)
	assert.Contains(t, got.jobs[0].Keywords, "kubernetes")
	assert.IsNonDecreasing(t, got.jobs[0].Keywords)

	require.Len(t, got.resumes, 1)
	assert.Len(t, got.resumes[0].ContentHash, 64)

	assert.Equal(t, "Backend", got.role)
	assert.Contains(t, got.keywords, "python")

	require.Len(t, got.analyses, 1)
	a := got.analyses[0]
	assert.NotNil(t, a.ResumeID)
	assert.NotNil(t, a.JobID)
	assert.Equal(t, report.OverallScore, a.OverallScore)
	assert.Equal(t, report.Match.Missing, a.MissingKeywords)
}

func TestRecord_UsesScoredKeywords(t *testing.T) {
	req := &types.AnalyzeRequest{ResumeText: "Go developer", JobDescription: "Go and SQL"}
	report := &types.AnalysisReport{
		Match: types.MatchResult{JobWeights: types.TermWeights{"sql": 0.25, "go": 0.75}},
	}

	store := &fakeStore{}
	_, err := Record(context.Background(), store, req, report)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "sql"}, store.committed.jobs[0].Keywords)
	assert.Equal(t, map[string]float64{"go": 0.75, "sql": 0.25}, store.committed.keywords)
}

func TestRecord_EmptyResumeSkipsResumeRow(t *testing.T) {
	req := &types.AnalyzeRequest{JobDescription: "Go and SQL"}
	report := analyze(t, req)

	store := &fakeStore{}
	_, err := Record(context.Background(), store, req, report)
	require.NoError(t, err)

	assert.Empty(t, store.committed.resumes)
	require.Len(t, store.committed.analyses, 1)
	assert.Nil(t, store.committed.analyses[0].ResumeID)
}

func TestRecord_StoreError(t *testing.T) {
	req := &types.AnalyzeRequest{JobDescription: "Go"}
	report := analyze(t, req)

	_, err := Record(context.Background(), &fakeStore{failJob: errors.New("connection refused")}, req, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record job")
	assert.Empty(t, report.ID)
}

func TestRecord_AnalysisFailureCommitsNothing(t *testing.T) {
	req := &types.AnalyzeRequest{
		ResumeText:     "Python developer with Docker experience",
		JobDescription: "Looking for Python, Docker, AWS and Kubernetes skills",
		RoleType:       "Backend",
	}
	report := analyze(t, req)
	store := &fakeStore{failAnalysis: errors.New("disk full")}

	for attempt := 0; attempt < 2; attempt++ {
		_, err := Record(context.Background(), store, req, report)
		require.EqualError(t, err, "failed to record analysis: disk full")
		assert.Empty(t, report.ID)

		assert.Empty(t, store.committed.jobs)
		assert.Empty(t, store.committed.resumes)
		assert.Empty(t, store.committed.sightings)
		assert.Empty(t, store.committed.analyses)
	}

	store.failAnalysis = nil
	_, err := Record(context.Background(), store, req, report)
	require.NoError(t, err)
	assert.Len(t, store.committed.jobs, 1)
	assert.Equal(t, 1, store.committed.sightings["python"])
}
