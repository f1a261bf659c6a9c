// Package logger provides the slog handler and helpers used across the app.
package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type contextKey string

const turnIDKey contextKey = "turn_id"

// Options configures a Handler.
type Options struct {
	// Level is the minimum level to log. Defaults to Info when nil.
	Level slog.Leveler

	// TimeFormat formats record timestamps.
	TimeFormat string

	// Source appends the short file:line of the call site.
	Source bool

	// NoColor disables ANSI colors. Log files always set it.
	NoColor bool
}

// DefaultOptions are used when NewHandler is given nil options.
var DefaultOptions = &Options{
	Level:      slog.LevelInfo,
	TimeFormat: time.DateTime,
	Source:     true,
}

// Handler is a compact, human-oriented slog.Handler.
type Handler struct {
	groups []string
	attrs  []slog.Attr
	opts   Options

	mu  *sync.Mutex
	out io.Writer
}

// NewHandler creates a Handler writing to out.
func NewHandler(out io.Writer, opts *Options) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}}
	if opts == nil {
		h.opts = *DefaultOptions
	} else {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

func (h *Handler) clone() *Handler {
	return &Handler{
		groups: append([]string(nil), h.groups...),
		attrs:  append([]slog.Attr(nil), h.attrs...),
		opts:   h.opts,
		mu:     h.mu,
		out:    h.out,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var bf bytes.Buffer

	if !r.Time.IsZero() {
		bf.WriteString(h.paint(color.New(color.Faint), r.Time.Format(h.opts.TimeFormat)))
		bf.WriteByte(' ')
	}

	bf.WriteString(h.levelBadge(r.Level))
	bf.WriteByte(' ')

	if id, ok := TurnIDFromContext(ctx); ok {
		bf.WriteString(h.paint(color.New(color.FgMagenta), shortID(id)))
		bf.WriteByte(' ')
	}

	if h.opts.Source && r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fmt.Fprintf(&bf, "%s:%d ", filepath.Base(f.File), f.Line)
	}

	bf.WriteString("| ")
	bf.WriteString(r.Message)

	attrs := append([]slog.Attr(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		key := prefix + a.Key
		c := color.New(color.FgCyan)
		if strings.Contains(a.Key, "err") {
			c = color.New(color.FgRed)
		}
		bf.WriteByte(' ')
		bf.WriteString(h.paint(c, key+"="))
		bf.WriteString(a.Value.Resolve().String())
	}
	bf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(bf.Bytes())
	return err
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *Handler) levelBadge(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.paint(color.New(color.BgRed, color.FgHiWhite), "ERROR")
	case level >= slog.LevelWarn:
		return h.paint(color.New(color.BgYellow, color.FgHiWhite), "WARN ")
	case level >= slog.LevelInfo:
		return h.paint(color.New(color.BgGreen, color.FgHiWhite), "INFO ")
	default:
		return h.paint(color.New(color.BgCyan, color.FgHiWhite), "DEBUG")
	}
}

func (h *Handler) paint(c *color.Color, s string) string {
	if h.opts.NoColor {
		return s
	}
	return c.Sprint(s)
}

// Err wraps an error as a slog attribute under the "error" key.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// ContextWithTurnID tags log records emitted while resolving a turn.
func ContextWithTurnID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, turnIDKey, id)
}

// TurnIDFromContext returns the turn ID set by ContextWithTurnID.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(turnIDKey).(string)
	return id, ok && id != ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
// Unknown names yield Info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Setup installs a Handler writing to out as the default logger and
// returns it.
func Setup(out io.Writer, level slog.Level, noColor bool) *slog.Logger {
	l := slog.New(NewHandler(out, &Options{
		Level:      level,
		TimeFormat: time.DateTime,
		Source:     level <= slog.LevelDebug,
		NoColor:    noColor,
	}))
	slog.SetDefault(l)
	return l
}
