package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json_format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "json"}, &buf)

		log.Info("started", logger.Component("server"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "started", entry["msg"])
		assert.Equal(t, "server", entry["component"])
	})

	t.Run("text_format_is_default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "unknown"}, &buf)

		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level_filters_records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "error", Format: "text"}, &buf)

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Error("kept")
		assert.Contains(t, buf.String(), "msg=kept")
	})

	t.Run("unknown_level_defaults_to_info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "whatever", Format: "text"}, &buf)

		assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("debug_level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "debug", Format: "text"}, &buf)

		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("nil_writer_resolves_from_output_config", func(t *testing.T) {
		t.Parallel()

		// The writer itself is os.Stdout/os.Stderr; asserting on level
		// behavior verifies construction succeeded without a writer.
		log := logger.New(logger.Config{Level: "error", Format: "text", Output: "stdout"}, nil)

		assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, log.Enabled(context.Background(), slog.LevelError))
	})
}
