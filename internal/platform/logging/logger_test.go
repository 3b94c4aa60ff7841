package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Info("award refresh finished", "league_id", "lg-1", "awards", 13, "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["league_id"] != "lg-1" {
		t.Fatalf("unexpected league_id field: %v", fields["league_id"])
	}
	if fields["awards"] != int64(13) {
		t.Fatalf("unexpected awards field: %v", fields["awards"])
	}
	if _, ok := fields["arg_2"]; !ok {
		t.Fatalf("expected dangling key to be logged as arg_2, got %v", fields)
	}
}

func TestLoggerWritesErrorsAsNamedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("sleeper week failed", "error", errors.New("boom"))

	fields := logs.All()[0].ContextMap()
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestMirrorReceivesEntries(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := NewNop()
	logger.ErrorContext(context.Background(), "join league failed")
	logger.Debug("cache miss")

	if len(got) != 2 || got[0] != "error:join league failed" || got[1] != "debug:cache miss" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "", want: LevelInfo},
		{in: "DEBUG", want: LevelDebug},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "trace", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, %v", tc.in, got, err)
		}
	}
}
