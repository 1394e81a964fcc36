package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

func testRuntime(t *testing.T) *appRuntime {
	t.Helper()
	cfg := config.Default()
	return &appRuntime{cfg: &cfg, logger: *observability.NopLogger(), engine: engine.MustNew()}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"python", []string{"python"}},
		{"python, sql ,,docker", []string{"python", "sql", "docker"}},
		{" , ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.in))
		})
	}
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSONFile(path, map[string]int{"score": 80}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 80, got["score"])

	err = writeJSONFile(filepath.Join(t.TempDir(), "missing", "out.json"), 1)
	assert.ErrorContains(t, err, "failed to write output file")
}

func TestEmit(t *testing.T) {
	t.Cleanup(func() { jsonOutput = false })
	set := engine.MustNew().ExtractKeywords("Python and Kubernetes engineer with Docker")

	t.Run("json", func(t *testing.T) {
		jsonOutput = true
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		rendered := false
		require.NoError(t, emit(cmd, set.Sorted(), func(*observability.Printer) { rendered = true }))
		assert.False(t, rendered)

		var got []string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Contains(t, got, "python")
	})

	t.Run("text", func(t *testing.T) {
		jsonOutput = false
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		require.NoError(t, emit(cmd, set, func(p *observability.Printer) { p.PrintKeywords(set) }))
		assert.Contains(t, strings.ToLower(buf.String()), "kubernetes")
	})
}

func TestReadText(t *testing.T) {
	rt := testRuntime(t)
	cmd := &cobra.Command{}

	t.Run("inline", func(t *testing.T) {
		text, err := rt.readText(cmd, "", "inline job text")
		require.NoError(t, err)
		assert.Equal(t, "inline job text", text)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nPython engineer\n"), 0o644))
		text, err := rt.readText(cmd, path, "")
		require.NoError(t, err)
		assert.Contains(t, text, "Python engineer")
	})

	t.Run("stdin", func(t *testing.T) {
		cmd.SetIn(strings.NewReader("Go developer"))
		text, err := rt.readText(cmd, "-", "")
		require.NoError(t, err)
		assert.Contains(t, text, "Go developer")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := rt.readText(cmd, filepath.Join(t.TempDir(), "nope.txt"), "")
		assert.Error(t, err)
	})
}

func TestValidateReport(t *testing.T) {
	report, err := engine.MustNew().Analyze(t.Context(),
		"Jane Doe\njane@example.com\n\nEXPERIENCE\n• Built Python services for 2 million users\n\nSKILLS\nPython, SQL",
		"Python engineer with SQL and AWS")
	require.NoError(t, err)
	assert.NoError(t, validateReport(report))

	report.OverallScore = 250
	assert.ErrorContains(t, validateReport(report), "does not validate")
}

func TestRankScore(t *testing.T) {
	overall := 72.5
	assert.Equal(t, -1.0, rankScore(ScanEntry{Error: "boom", ATSScore: 90}))
	assert.Equal(t, 72.5, rankScore(ScanEntry{ATSScore: 90, OverallScore: &overall}))
	assert.Equal(t, 90.0, rankScore(ScanEntry{ATSScore: 90}))
}

func TestAutoFixRequest_RejectsUnknownFix(t *testing.T) {
	req := types.AutoFixRequest{ResumeText: "text", Fixes: []types.FixKind{"spelling"}}
	assert.Error(t, req.Validate())
}
