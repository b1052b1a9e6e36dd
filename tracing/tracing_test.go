package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "spans.txt")

	if err := Init("nucleus", "test", fname); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ctx, span := StartSpan(context.Background(), "syscall.allocate_page")
	span.WithAttributes(map[string]string{"errno": "ok"})
	span.End(nil)

	_, span = StartSpan(ctx, "syscall.create_file")
	span.End(errors.New("capacity exceeded"))

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("no data written to trace file")
	}
}

func TestNilSpanIsSafe(t *testing.T) {
	var s *Span
	s.WithAttributes(map[string]string{"k": "v"})
	s.End(nil)
}
