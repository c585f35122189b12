package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uboraplatform/ubora/pkg/logger"
)

type ctxKey string

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "ubora")),
	)

	log.Info("session created", logger.UserID("u1"))

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "session created", rec["msg"])
	assert.Equal(t, "ubora", rec["service"])
	assert.Equal(t, "u1", rec["user_id"])
}

func TestNew_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(&buf),
	)

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
	)

	log.Info("dropped")
	assert.Empty(t, buf.Bytes())

	log.Warn("kept")
	assert.NotEmpty(t, buf.Bytes())
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	key := ctxKey("request_id")
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", key),
	)

	ctx := context.WithValue(context.Background(), key, "req-42")
	log.InfoContext(ctx, "handled")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "req-42", rec["request_id"])
}

func TestWithContextValue_MissingValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	key := ctxKey("request_id")
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", key),
	)

	log.InfoContext(context.Background(), "handled")

	rec := decodeRecord(t, &buf)
	_, present := rec["request_id"]
	assert.False(t, present)
}

func TestWithEnvironment_Presets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithEnvironment("production", "ubora"),
	)

	log.Info("up")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "production", rec["env"])
	assert.Equal(t, "ubora", rec["service"])
}

func TestContextHandler_PreservesExtractorsOnWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	key := ctxKey("request_id")
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", key),
	).With(slog.String("component", "transition"))

	ctx := context.WithValue(context.Background(), key, "req-7")
	log.InfoContext(ctx, "quoted")

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "req-7", rec["request_id"])
	assert.Equal(t, "transition", rec["component"])
}
