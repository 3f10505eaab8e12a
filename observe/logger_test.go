package observe

import (
	"bytes"
	"context"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "dropped")
	logger.Warn(ctx, "kept")
	logger.Error(ctx, "kept")

	entries := parseLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("levels = %v, %v; want warn, error", entries[0]["level"], entries[1]["level"])
	}
}

func TestLogger_WithCache(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	cacheLogger := logger.WithCache(MetaFor(testVertex(7), testKey))
	cacheLogger.Debug(context.Background(), "cache recomputed", Field{Key: "duration_ms", Value: 1.5})
	logger.Info(context.Background(), "plain")

	entries := parseLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	e := entries[0]
	if e["msg"] != "cache recomputed" {
		t.Errorf("msg = %v", e["msg"])
	}
	if v, ok := e["cache.vertex"].(float64); !ok || v != 7 {
		t.Errorf("cache.vertex = %v, want 7", e["cache.vertex"])
	}
	if e["cache.kind"] != "projection" {
		t.Errorf("cache.kind = %v, want projection", e["cache.kind"])
	}
	if e["cache.key"] != "projection[3,4]" {
		t.Errorf("cache.key = %v, want projection[3,4]", e["cache.key"])
	}
	if v, ok := e["duration_ms"].(float64); !ok || v != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", e["duration_ms"])
	}
	if _, ok := e["timestamp"]; !ok {
		t.Error("timestamp missing")
	}

	if _, ok := entries[1]["cache.key"]; ok {
		t.Error("parent logger should not carry cache fields")
	}
}

func TestVertexMeta(t *testing.T) {
	meta := VertexMeta(nil)
	if meta.Vertex != -1 {
		t.Errorf("Vertex = %d, want -1", meta.Vertex)
	}
	if fields := VertexMeta(testVertex(3)).Fields(); len(fields) != 1 || fields[0].Value != 3 {
		t.Errorf("Fields() = %v, want only cache.vertex=3", fields)
	}
}
