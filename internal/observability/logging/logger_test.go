package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"empty defaults to info", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "DEBUG", slog.LevelDebug},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"invalid defaults to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", FormatJSON)

	logger.Debug("this should not appear")
	logger.Info("magazine created", slog.String("name", "Vogue"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be one JSON line")
	assert.Equal(t, "magazine created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Vogue", entry["name"])
	assert.NotContains(t, buf.String(), "this should not appear")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "TEXT")

	logger.Debug("article created")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, `msg="article created"`)
}

func TestNewLogger_Env(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	logger := NewLogger()
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextPropagation(t *testing.T) {
	t.Run("default when absent", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		logger := New(&bytes.Buffer{}, "info", FormatJSON)
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("Or prefers the explicit logger", func(t *testing.T) {
		explicit := New(&bytes.Buffer{}, "info", FormatJSON)
		carried := New(&bytes.Buffer{}, "info", FormatJSON)
		ctx := WithLogger(context.Background(), carried)

		assert.Same(t, explicit, Or(ctx, explicit))
		assert.Same(t, carried, Or(ctx, nil))
	})
}
