// ABOUTME: Tests for the slog-backed logger and level parsing.
// ABOUTME: Output is captured from a text handler writing to a buffer.
package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown", "k", "v")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "k=v")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug").With("session", "abc", "user", "alice")
	log.Warn(context.Background(), "hello")

	for _, want := range []string{"level=WARN", "msg=hello", "session=abc", "user=alice"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in output, got:\n%s", want, buf.String())
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" error ": slog.LevelError,
		"warn":    slog.LevelWarn,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	log.Error(context.TODO(), "discarded", "a", 1)
	log.With("x", 2).Info(context.TODO(), "discarded")
}

func TestNewSlogLogger_NilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	NewSlogLogger(nil).Info(context.Background(), "via default", "n", 1)
	require.Contains(t, buf.String(), "msg=\"via default\"")
	require.Contains(t, buf.String(), "n=1")
}
