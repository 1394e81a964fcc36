package config

import (
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvPort           = "PORT"
	EnvMaxInputChars  = "MAX_INPUT_CHARS"
	EnvCORSOrigin     = "CORS_ORIGIN"
	EnvDatabaseURL    = "DATABASE_URL"
	EnvAMQPURL        = "AMQP_URL"
	EnvRequestQueue   = "ANALYSIS_REQUEST_QUEUE"
	EnvResultQueue    = "ANALYSIS_RESULT_QUEUE"
	EnvPrefetch       = "AMQP_PREFETCH"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvGeminiModel    = "GEMINI_MODEL"
	EnvRateLimitLimit = "RATE_LIMIT_PER_MINUTE"
)

// ApplyEnv overrides fields with any non-empty environment variable.
// Unparseable numbers are ignored.
func (c *Config) ApplyEnv() {
	c.Port = getEnvInt(EnvPort, c.Port)
	c.MaxInputChars = getEnvInt(EnvMaxInputChars, c.MaxInputChars)
	c.CORSOrigin = getEnvString(EnvCORSOrigin, c.CORSOrigin)
	c.DatabaseURL = getEnvString(EnvDatabaseURL, c.DatabaseURL)
	c.AMQPURL = getEnvString(EnvAMQPURL, c.AMQPURL)
	c.RequestQueue = getEnvString(EnvRequestQueue, c.RequestQueue)
	c.ResultQueue = getEnvString(EnvResultQueue, c.ResultQueue)
	c.Prefetch = getEnvInt(EnvPrefetch, c.Prefetch)
	c.LogLevel = getEnvString(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnvString(EnvLogFormat, c.LogFormat)
	c.GeminiAPIKey = getEnvString(EnvGeminiAPIKey, c.GeminiAPIKey)
	c.GeminiModel = getEnvString(EnvGeminiModel, c.GeminiModel)
	c.RateLimitPerMinute = getEnvInt(EnvRateLimitLimit, c.RateLimitPerMinute)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
