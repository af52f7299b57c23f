package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "fetch failed", errors.New("boom"), FieldOperation, "teams")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "operation=teams") {
		t.Fatalf("expected error and operation fields, got %q", out)
	}
}
