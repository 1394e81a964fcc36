package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "debug", Output: &buf})

	logger.Debug().Str("path", "/api/match").Msg("request")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "debug", event["level"])
	assert.Equal(t, "/api/match", event["path"])
	assert.Contains(t, event, "time")
}

func TestNewLogger_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "nonsense", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Format: "pretty", Output: &buf})

	logger.Info().Msg("server started")
	assert.Contains(t, buf.String(), "server started")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewLogger_SetsGlobal(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LogConfig{Output: &buf})

	log.Info().Msg("global")
	assert.Contains(t, buf.String(), "global")
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	require.NotNil(t, l)
	l.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
