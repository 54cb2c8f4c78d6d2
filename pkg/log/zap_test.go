package log_test

import (
	"context"
	"testing"

	"agenda-notifier/pkg/log"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := log.RunID(ctx); got != "" {
		t.Errorf("expected empty run id, got %q", got)
	}

	ctx = log.WithRunID(ctx, "run-123")
	if got := log.RunID(ctx); got != "run-123" {
		t.Errorf("expected run-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingConsole},
	}

	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Infof(log.WithRunID(context.Background(), "abc"), "hello %s", "world")
	}
}
