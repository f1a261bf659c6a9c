package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kisanlabs/plantdoctor/internal/config"
	"github.com/kisanlabs/plantdoctor/internal/conversation"
	"github.com/kisanlabs/plantdoctor/internal/doctor"
	"github.com/kisanlabs/plantdoctor/internal/llm"
	"github.com/kisanlabs/plantdoctor/internal/report"
	"github.com/kisanlabs/plantdoctor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "plantdoctor",
	Short: "Crop disease assistant for farmers",
	Long: "Kisan Plant Doctor: send a photo, a voice note or a question about your crop " +
		"and get a diagnosis, treatment steps and local experts in your own language.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("events-db", "", "Path to the event database (overrides PLANTDOCTOR_EVENTS_DB)")
	pf.String("env-file", ".env", "Load environment variables from this file when it exists")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.StringP("lang", "l", "", "Language code or name, e.g. hi or Hindi")
	pf.String("provider", "", "Model provider: gemini, openai, anthropic, openrouter or mock")

	f := rootCmd.Flags()
	f.String("log-file", "", "Write logs to this file while the chat is open")
	f.Bool("widget", false, "Run as an embedded widget: skip the landing screen, Esc closes")
	f.String("widget-host", "", "How to reach the host page: stdout or socket")
	f.String("widget-addr", "", "Listen address for the socket widget host")
	f.String("export-dir", "", "Directory for saved reports")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(adviceCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies any flags the user set.
// Flags win over the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str("events-db", &cfg.EventsDB)
	str("log-level", &cfg.LogLevel)
	str("lang", &cfg.Language)
	str("log-file", &cfg.LogFile)
	str("widget-host", &cfg.WidgetHost)
	str("widget-addr", &cfg.WidgetAddr)
	str("export-dir", &cfg.ExportDir)
	if flags.Lookup("widget") != nil && flags.Changed("widget") {
		cfg.Widget, _ = flags.GetBool("widget")
	}
	if flags.Lookup("provider") != nil && flags.Changed("provider") {
		// The provider stack reads its settings from the environment.
		provider, _ := flags.GetString("provider")
		if err := os.Setenv(llm.EnvPrefix+"LLM_PROVIDER", provider); err != nil {
			return config.Config{}, fmt.Errorf("set provider: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the event database path using the configured
// path when set, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.EventsDB != "" {
		return cfg.EventsDB, store.EnsureDir(cfg.EventsDB)
	}
	return store.DefaultDBPath()
}

func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newConversation builds the model provider, the doctor and an empty
// conversation, selecting cfg.Language when one is configured.
func newConversation(ctx context.Context, cfg config.Config, events store.EventRepo) (*conversation.Conversation, error) {
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("model provider not configured: %w", err)
	}

	doc, err := doctor.New(provider, cfg.Doctor(), doctor.WithRecorder(events))
	if err != nil {
		return nil, err
	}

	book, err := report.NewBook(cfg.ReportCapacity)
	if err != nil {
		return nil, err
	}

	conv, err := conversation.New(doc, conversation.WithReportBook(book))
	if err != nil {
		return nil, err
	}
	if cfg.Language != "" {
		if err := conv.SelectLanguage(cfg.Language); err != nil {
			return nil, err
		}
	}
	return conv, nil
}
