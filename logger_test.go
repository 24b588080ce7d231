package ktx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Not parallel: swaps the package logger.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	data, _ := serializeOrFatal(t, rgba8Header(4, 4), nil)
	if _, err := Parse(append(data, 0, 0, 0, 0)); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ktx: serialized container", "ktx: parsed container", "ktx: trailing bytes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("nil must restore the silent logger")
	}
}
