// Package worker runs analyses requested over AMQP and publishes the reports.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/history"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Result statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// MalformedError marks a request that can never succeed. Such messages are
// dropped instead of requeued.
type MalformedError struct {
	Message string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed request: %s", e.Message)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// Result is the message published for every processed request.
type Result struct {
	CorrelationID string                `json:"correlation_id,omitempty"`
	Status        string                `json:"status"`
	Error         string                `json:"error,omitempty"`
	Report        *types.AnalysisReport `json:"report,omitempty"`
	Saved         bool                  `json:"saved"`
	Timestamp     time.Time             `json:"timestamp"`
}

// Processor turns request bodies into results. Store may be nil.
type Processor struct {
	Engine *engine.Engine
	Store  history.Writer
	Config *config.Config
	Logger *zerolog.Logger
}

// Process decodes, validates and analyzes one request. A *MalformedError is
// returned together with a failed Result that can still be published.
func (p *Processor) Process(ctx context.Context, body []byte) (*Result, error) {
	var req types.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return p.failed("", "invalid JSON"), &MalformedError{Message: "invalid JSON", Cause: err}
	}
	if err := req.Validate(); err != nil {
		return p.failed(req.CorrelationID, err.Error()), &MalformedError{Message: "validation failed", Cause: err}
	}

	if p.Config != nil {
		req.ResumeText = p.Config.Truncate(req.ResumeText)
		req.JobDescription = p.Config.Truncate(req.JobDescription)
	}

	report, err := p.Engine.Analyze(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze: %w", err)
	}
	report.ResumeName = req.ResumeName
	report.JobTitle = req.JobTitle

	result := &Result{
		CorrelationID: req.CorrelationID,
		Status:        StatusCompleted,
		Report:        report,
		Timestamp:     time.Now().UTC(),
	}

	if req.Save && p.Store != nil {
		if _, err := history.Record(ctx, p.Store, &req, report); err != nil {
			p.logger().Error().Err(err).Str("correlation_id", req.CorrelationID).Msg("failed to save analysis")
		} else {
			result.Saved = true
		}
	}
	return result, nil
}

func (p *Processor) failed(correlationID, message string) *Result {
	return &Result{
		CorrelationID: correlationID,
		Status:        StatusFailed,
		Error:         message,
		Timestamp:     time.Now().UTC(),
	}
}

func (p *Processor) logger() *zerolog.Logger {
	if p.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return p.Logger
}

// IsMalformed reports whether err marks a request that must not be retried.
func IsMalformed(err error) bool {
	var malformed *MalformedError
	return errors.As(err, &malformed)
}
