package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("dev", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	l, err := New("prod", "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be enabled")
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled")
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "store")

	l.Warn("load failed", "key", "ascend.document.v1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "store" || ctx["key"] != "ascend.document.v1" {
		t.Fatalf("context=%v", ctx)
	}
}
