package logging

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", raw, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLoggerWritesBoundFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "tracker")

	logger.Info("match polled", "fixture_id", int64(555))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "tracker" {
		t.Fatalf("missing bound field: %#v", fields)
	}
	if fields["fixture_id"] != int64(555) {
		t.Fatalf("missing call field: %#v", fields)
	}
}

func TestMirrorReceivesRecords(t *testing.T) {
	var (
		mu   sync.Mutex
		msgs []string
		keys []any
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, level.String()+":"+msg)
		keys = append(keys, args...)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := NewNop().With("svc", "api")
	logger.WarnContext(context.Background(), "cache unavailable", "error", "boom")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "warn:cache unavailable" {
		t.Fatalf("unexpected mirrored messages: %v", msgs)
	}
	if len(keys) != 4 || keys[0] != "svc" || keys[2] != "error" {
		t.Fatalf("unexpected mirrored args: %v", keys)
	}
}
