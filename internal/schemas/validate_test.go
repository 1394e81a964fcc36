package schemas

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointSchema = `{
	"type": "object",
	"required": ["x", "y"],
	"properties": {
		"x": {"type": "number"},
		"y": {"type": "number"}
	}
}`

func TestValidateJSONString(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"x": 1, "y": 2}`, false},
		{"missing field", `{"x": 1}`, true},
		{"wrong type", `{"x": "one", "y": 2}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(pointSchema, tt.doc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{ not a schema`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "point.schema.json")
	goodPath := filepath.Join(dir, "good.json")
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(pointSchema), 0o644))
	require.NoError(t, os.WriteFile(goodPath, []byte(`{"x": 1, "y": 2}`), 0o644))
	require.NoError(t, os.WriteFile(badPath, []byte(`{"y": 2}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, goodPath))

	err := ValidateJSON(schemaPath, badPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSON_NotFound(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", "whatever.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "point.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(pointSchema), 0o644))

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(AnalysisReportSchema))
	assert.NotEmpty(t, ResolveSchemaPath(MatchResultSchema))
	assert.Empty(t, ResolveSchemaPath("schemas/nothing_here.schema.json"))
}

func TestEngineOutput_MatchesSchemas(t *testing.T) {
	e := engine.MustNew()
	resume := `Jane Doe
jane@example.com | (555) 123-4567

EXPERIENCE
Senior Engineer, Acme
• Led migration of 12 services to Kubernetes, cutting costs by 30%
• Built Python and PostgreSQL pipelines serving 2 million users

SKILLS
Python, SQL, Docker, Git`
	job := `We need a Python engineer with Kubernetes, Docker, AWS and Terraform experience.
Kubernetes and AWS are essential. Strong communication and leadership skills.`

	report, err := e.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	analysisPath := ResolveSchemaPath(AnalysisReportSchema)
	require.NotEmpty(t, analysisPath)
	assert.NoError(t, ValidateValue(analysisPath, report))

	matchPath := ResolveSchemaPath(MatchResultSchema)
	require.NotEmpty(t, matchPath)
	assert.NoError(t, ValidateValue(matchPath, report.Match))
}

func TestEngineOutput_EmptyInputMatchesSchema(t *testing.T) {
	report, err := engine.MustNew().Analyze(context.Background(), "", "")
	require.NoError(t, err)

	analysisPath := ResolveSchemaPath(AnalysisReportSchema)
	require.NotEmpty(t, analysisPath)
	assert.NoError(t, ValidateValue(analysisPath, report))
}

func TestValidateValue_RejectsOutOfRangeScore(t *testing.T) {
	matchPath := ResolveSchemaPath(MatchResultSchema)
	require.NotEmpty(t, matchPath)

	bad := types.MatchResult{
		Score:   140,
		Matched: []string{},
		Missing: []string{},
		Density: map[string]float64{},
	}
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateValue(matchPath, bad), &validationErr)
}
