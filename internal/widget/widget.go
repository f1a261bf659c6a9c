// Package widget tells an embedding host page to close the chat widget.
package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// CloseType is the signal type host pages listen for.
const CloseType = "KISAN_WIDGET_CLOSE"

// Signal is a message sent to the host page.
type Signal struct {
	Type string `json:"type"`
}

// CloseSignal asks the host to close the widget.
var CloseSignal = Signal{Type: CloseType}

// Host is the page or process embedding the widget.
type Host interface {
	Close(ctx context.Context) error
}

// Nop is a Host for standalone mode. Close does nothing.
type Nop struct{}

func (Nop) Close(context.Context) error { return nil }

// WriterHost writes each signal as one JSON line, for hosts that spawn
// the widget as a child process and read its stdout.
type WriterHost struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterHost creates a WriterHost writing to w.
func NewWriterHost(w io.Writer) *WriterHost {
	return &WriterHost{w: w}
}

func (h *WriterHost) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := json.Marshal(CloseSignal)
	if err != nil {
		return fmt.Errorf("encode close signal: %w", err)
	}
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(line); err != nil {
		return fmt.Errorf("write close signal: %w", err)
	}
	return nil
}
