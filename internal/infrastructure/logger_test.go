package infrastructure

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("garbage"))
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "batch-123")
	assert.Equal(t, "batch-123", TraceIDFromContext(ctx))
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
}

func TestFileLoggerInjectsTraceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")

	logger, closer, err := NewLogger("info", "file", path)
	require.NoError(t, err)
	require.NotNil(t, closer)

	ctx := WithTraceID(context.Background(), "batch-456")
	logger.InfoContext(ctx, "hello", slog.String("k", "v"))
	require.NoError(t, closer.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "expected one log line")

	var record map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "batch-456", record["trace_id"])
	assert.Equal(t, "v", record["k"])
}
