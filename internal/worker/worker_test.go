package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/observability"
)

const requestBody = `{
	"resume_text": "Python developer. Built Docker images for 3 services.",
	"job_description": "Python, Docker and Kubernetes engineer",
	"job_title": "Platform Engineer",
	"correlation_id": "req-42"
}`

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

type published struct {
	queue         string
	correlationID string
	result        Result
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, queue, correlationID string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	var r Result
	if err := json.Unmarshal(body, &r); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, published{queue: queue, correlationID: correlationID, result: r})
	return nil
}

type fakeStore struct {
	analyses int
}

func (f *fakeStore) InTx(_ context.Context, fn func(w db.Writer) error) error {
	return fn(f)
}

func (f *fakeStore) SaveJob(context.Context, db.JobInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeStore) SaveResume(context.Context, db.ResumeInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeStore) RecordKeywords(context.Context, string, map[string]float64) error {
	return nil
}

func (f *fakeStore) SaveAnalysis(context.Context, db.AnalysisInput) (uuid.UUID, error) {
	f.analyses++
	return uuid.New(), nil
}

func newProcessor() *Processor {
	cfg := config.Default()
	return &Processor{Engine: engine.MustNew(), Config: &cfg, Logger: observability.NopLogger()}
}

func TestProcess(t *testing.T) {
	result, err := newProcessor().Process(context.Background(), []byte(requestBody))
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "req-42", result.CorrelationID)
	require.NotNil(t, result.Report)
	assert.Equal(t, "Platform Engineer", result.Report.JobTitle)
	assert.Contains(t, result.Report.Match.Matched, "python")
	assert.Contains(t, result.Report.Match.Missing, "kubernetes")
	assert.False(t, result.Saved)
}

func TestProcess_Save(t *testing.T) {
	store := &fakeStore{}
	p := newProcessor()
	p.Store = store

	body := `{"job_description": "Go developer", "resume_text": "Go", "save": true}`
	result, err := p.Process(context.Background(), []byte(body))
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.NotEmpty(t, result.Report.ID)
	assert.Equal(t, 1, store.analyses)
}

func TestProcess_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantID  string
		wantMsg string
	}{
		{"invalid JSON", `{"job_description": `, "", "invalid JSON"},
		{"missing job", `{"resume_text": "x", "correlation_id": "req-7"}`, "req-7", "JobDescription"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newProcessor().Process(context.Background(), []byte(tt.body))
			require.Error(t, err)
			assert.True(t, IsMalformed(err))

			require.NotNil(t, result)
			assert.Equal(t, StatusFailed, result.Status)
			assert.Equal(t, tt.wantID, result.CorrelationID)
			assert.Contains(t, result.Error, tt.wantMsg)
		})
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newProcessor().Process(ctx, []byte(requestBody))
	require.Error(t, err)
	assert.False(t, IsMalformed(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestHandle_Success(t *testing.T) {
	ack := &fakeAck{}
	pub := &fakePublisher{}
	handle(context.Background(), newProcessor(), pub, "analysis.results", observability.NopLogger(),
		message{Body: []byte(requestBody), ack: ack})

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "analysis.results", pub.sent[0].queue)
	assert.Equal(t, "req-42", pub.sent[0].correlationID)
	assert.Equal(t, StatusCompleted, pub.sent[0].result.Status)
}

func TestHandle_ReplyToAndDeliveryCorrelationID(t *testing.T) {
	ack := &fakeAck{}
	pub := &fakePublisher{}
	body := `{"job_description": "Go developer", "resume_text": "Go"}`
	handle(context.Background(), newProcessor(), pub, "analysis.results", observability.NopLogger(),
		message{Body: []byte(body), CorrelationID: "amqp-1", ReplyTo: "client.replies", ack: ack})

	assert.True(t, ack.acked)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "client.replies", pub.sent[0].queue)
	assert.Equal(t, "amqp-1", pub.sent[0].correlationID)
}

func TestHandle_MalformedIsDropped(t *testing.T) {
	ack := &fakeAck{}
	pub := &fakePublisher{}
	handle(context.Background(), newProcessor(), pub, "analysis.results", observability.NopLogger(),
		message{Body: []byte("not json"), CorrelationID: "amqp-2", ack: ack})

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
	assert.False(t, ack.acked)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, StatusFailed, pub.sent[0].result.Status)
	assert.Equal(t, "amqp-2", pub.sent[0].correlationID)
}

func TestHandle_TransientFailureIsRequeued(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ack := &fakeAck{}
	pub := &fakePublisher{}
	handle(ctx, newProcessor(), pub, "analysis.results", observability.NopLogger(),
		message{Body: []byte(requestBody), ack: ack})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
	assert.Empty(t, pub.sent)
}

func TestHandle_PublishFailureIsRequeued(t *testing.T) {
	ack := &fakeAck{}
	pub := &fakePublisher{err: errors.New("channel closed")}
	handle(context.Background(), newProcessor(), pub, "analysis.results", observability.NopLogger(),
		message{Body: []byte(requestBody), ack: ack})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
	assert.False(t, ack.acked)
}

func TestMalformedError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &MalformedError{Message: "invalid JSON", Cause: cause}
	assert.Equal(t, "malformed request: invalid JSON: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsMalformed(cause))
}
