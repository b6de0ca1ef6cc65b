package jarowinkler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	l.LogCompare(ctx, 3, 4, 0.9, nil)
	assert.Empty(t, buf.String(), "success is logged at debug level")

	l.WithOptions(DefaultOptions()).LogCompare(ctx, 3, 4, 0, errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "weight=0.1")
	assert.Contains(t, out, "ignore_case=false")
}

func TestLoggerDefaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
}
