package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(buf, &Options{Level: level, TimeFormat: "15:04", NoColor: true}))
}

func TestHandler_FormatsRecord(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo)

	log.Info("turn resolved", "outcome", "ok", Err(errors.New("boom")))

	out := buf.String()
	for _, want := range []string{"INFO ", "| turn resolved", "outcome=ok", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI codes: %q", out)
	}
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record should be written")
	}
}

func TestHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo).With("lang", "Hindi").WithGroup("llm")

	log.Info("call", "model", "gemini-2.5-flash")

	out := buf.String()
	if !strings.Contains(out, "llm.lang=Hindi") && !strings.Contains(out, "lang=Hindi") {
		t.Errorf("missing handler attr: %q", out)
	}
	if !strings.Contains(out, "llm.model=gemini-2.5-flash") {
		t.Errorf("missing grouped attr: %q", out)
	}
}

func TestHandler_TurnID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo)

	ctx := ContextWithTurnID(context.Background(), "0123456789abcdef")
	log.InfoContext(ctx, "resolving")

	if !strings.Contains(buf.String(), "01234567 ") {
		t.Errorf("missing short turn id: %q", buf.String())
	}
}

func TestErr_Nil(t *testing.T) {
	if a := Err(nil); !a.Equal(slog.Attr{}) {
		t.Errorf("Err(nil) = %v, want empty attr", a)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
