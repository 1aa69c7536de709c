package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "failed to fetch timetable", assert.AnError,
		slog.String("source", "http://example.com/horaires.csv"))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"failed to fetch timetable"`)
	assert.Contains(t, output, assert.AnError.Error())
	assert.Contains(t, output, `"source":"http://example.com/horaires.csv"`)
}

func TestLogErrorWithNilLogger(t *testing.T) {
	// Must not panic
	LogError(nil, "message", assert.AnError)
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "timetable_import_complete",
		slog.Int("trips", 120),
		slog.Duration("duration", 250*time.Millisecond))

	output := buf.String()
	assert.Contains(t, output, `"msg":"timetable_import_complete"`)
	assert.Contains(t, output, `"trips":120`)
	assert.Contains(t, output, `"duration"`)
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "noop", slog.Duration("duration", 0))

	assert.NotContains(t, buf.String(), `"duration"`)
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/v1/stations", 200, 12.5,
		slog.String("request_id", "abc-123"))

	output := buf.String()
	assert.Contains(t, output, `"msg":"http_request"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/api/v1/stations"`)
	assert.Contains(t, output, `"status":200`)
	assert.Contains(t, output, `"request_id":"abc-123"`)
}
