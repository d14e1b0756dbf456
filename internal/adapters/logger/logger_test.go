package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.trai.ch/dbfetch/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("fetching data")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output, got %q", out)
	}
	if !strings.Contains(out, "fetching data") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(errors.New("connection refused"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got %q", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected error text in output, got %q", out)
	}
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Debug("noisy detail")

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestLogger_DebugEmittedAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewAt(slog.LevelDebug)
	l.SetOutput(&buf)

	l.Debug("directory created")

	if !strings.Contains(buf.String(), "directory created") {
		t.Errorf("expected debug message in output, got %q", buf.String())
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Warn("retrying")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level in output, got %q", buf.String())
	}
}
