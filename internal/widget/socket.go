package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"

	"github.com/kisanlabs/plantdoctor/internal/logger"
)

// DefaultPath is where SocketHost accepts host page connections.
const DefaultPath = "/widget"

const writeWait = 5 * time.Second

// SocketHost delivers signals to host pages connected over websocket.
type SocketHost struct {
	upgrader       websocket.Upgrader
	allowedOrigins map[string]bool

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewSocketHost creates a SocketHost. An empty allowedOrigins accepts any
// origin.
func NewSocketHost(allowedOrigins []string) *SocketHost {
	h := &SocketHost{
		allowedOrigins: make(map[string]bool, len(allowedOrigins)),
		conns:          make(map[*websocket.Conn]struct{}),
	}
	for _, o := range allowedOrigins {
		h.allowedOrigins[o] = true
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *SocketHost) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return h.allowedOrigins[origin]
}

// ServeHTTP upgrades the request and holds the connection until the page
// goes away. Anything the page sends is ignored.
func (h *SocketHost) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("widget upgrade failed", logger.Err(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	slog.Debug("widget host connected", "remote", r.RemoteAddr)

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("widget host closed unexpectedly", logger.Err(err))
			}
			return
		}
	}
}

// Clients returns the number of connected host pages.
func (h *SocketHost) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close sends the close signal to every connected host page.
func (h *SocketHost) Close(ctx context.Context) error {
	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var result *multierror.Error
	for conn := range h.conns {
		if err := ctx.Err(); err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		_ = conn.SetWriteDeadline(deadline)
		if err := conn.WriteJSON(CloseSignal); err != nil {
			result = multierror.Append(result, fmt.Errorf("signal %s: %w", conn.RemoteAddr(), err))
		}
	}
	return result.ErrorOrNil()
}

// dropAll closes every host connection. Shutdown does not track
// hijacked connections.
func (h *SocketHost) dropAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
	}
}

// Serve accepts host page connections on addr until ctx is cancelled.
func (h *SocketHost) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return h.serve(ctx, ln)
}

func (h *SocketHost) serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(DefaultPath, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		h.dropAll()
	}()

	slog.Info("widget host listening", "addr", ln.Addr().String(), "path", DefaultPath)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("widget server: %w", err)
	}
	return nil
}
