package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kisanlabs/plantdoctor/internal/app"
	"github.com/kisanlabs/plantdoctor/internal/config"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/widget"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupFileLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	conv, err := newConversation(ctx, cfg, st.EventRepo())
	if err != nil {
		return err
	}

	opts := app.Options{
		Conversation: conv,
		Widget:       cfg.Widget,
		ExportDir:    cfg.ExportDir,
	}
	if cfg.Widget {
		host, err := startWidgetHost(ctx, cfg)
		if err != nil {
			return err
		}
		opts.Host = host
		if cfg.WidgetHost == config.WidgetHostStdout {
			// stdout carries the signals, so draw on stderr.
			opts.Output = os.Stderr
		}
	}

	slog.Info("starting chat", "widget", cfg.Widget, "language", cfg.Language)
	return app.Run(opts)
}

// setupFileLogging sends logs to cfg.LogFile, or drops them when no file is
// configured, since the chat UI owns the terminal.
func setupFileLogging(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		logger.Setup(io.Discard, cfg.Level(), true)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Setup(f, cfg.Level(), true)
	return func() { f.Close() }, nil
}

func startWidgetHost(ctx context.Context, cfg config.Config) (widget.Host, error) {
	switch cfg.WidgetHost {
	case config.WidgetHostSocket:
		host := widget.NewSocketHost(cfg.WidgetOrigins)
		go func() {
			if err := host.Serve(ctx, cfg.WidgetAddr); err != nil {
				slog.Error("widget socket stopped", logger.Err(err))
			}
		}()
		return host, nil
	default:
		return widget.NewWriterHost(os.Stdout), nil
	}
}
