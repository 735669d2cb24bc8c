package lib

import (
	"bytes"
	"strings"
	"testing"
)

func TestTracerPreservesOrder(test *testing.T) {
	cpu := newTestCPU(test, []byte{0xa9, 0x01, 0xa9, 0x02, 0xa9, 0x03})

	var out bytes.Buffer
	tracer := NewTracer(&out)

	for i := 0; i < 3; i++ {
		snapshot := step(test, cpu)
		if err := tracer.Write(snapshot); err != nil {
			test.Fatalf("unexpected trace write error: %v", err)
		}
	}
	if err := tracer.Flush(); err != nil {
		test.Fatalf("unexpected flush error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		test.Fatalf("expected 3 trace lines, got %v", len(lines))
	}
	for i, prefix := range []string{"C000", "C002", "C004"} {
		if !strings.HasPrefix(lines[i], prefix) {
			test.Fatalf("expected line %v to start with %v, got %q", i, prefix, lines[i])
		}
	}
}

func TestTraceLinePaddingShortInstruction(test *testing.T) {
	cpu := newTestCPU(test, []byte{0x18}) // CLC, 1 byte

	snapshot := step(test, cpu)
	line := snapshot.Format()
	if !strings.Contains(line, "18        CLC") {
		test.Fatalf("expected padded single-byte instruction, got %q", line)
	}
}
