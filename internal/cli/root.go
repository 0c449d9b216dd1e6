// Package cli wires configuration, logging and services into the cobra
// command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"searchpro/internal/config"
	"searchpro/internal/domain"
	"searchpro/internal/eventbus"
	"searchpro/internal/logging"
	"searchpro/internal/search"
	"searchpro/internal/speech"
	"searchpro/internal/ui"
	"searchpro/internal/ui/clipboard"
)

type options struct {
	configPath string
	endpoint   string
	envFiles   []string
	mode       string
	query      string
}

// NewRootCmd builds the searchpro command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "searchpro",
		Short: "SearchPro - terminal search landing page",
		Long: `SearchPro is a single screen search page for the terminal with web, voice,
image and music search modes backed by one HTTP search endpoint.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "Search endpoint URL")
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env", nil, "Dotenv files to load (default: .env)")
	root.Flags().StringVar(&opts.mode, "mode", "", "Initial search mode: web, voice, image or music")
	root.Flags().StringVar(&opts.query, "query", "", "Query to search right after start")

	root.AddCommand(newSearchCmd(opts), newConfigCmd(opts), newServeDevCmd(opts))
	return root
}

// Execute runs the root command until it finishes or the process is signalled
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig reads env files and the config file, then applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	config.LoadEnvFiles(opts.envFiles...)

	cfg, err := config.NewConfigService(opts.configPath).Load()
	if err != nil {
		return nil, err
	}

	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	if opts.mode != "" {
		mode, err := domain.ParseSearchMode(opts.mode)
		if err != nil {
			return nil, err
		}
		cfg.UI.Mode = string(mode)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newSearcher(cfg *config.Config, log *zap.Logger) (*search.Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	return search.NewClient(cfg.Endpoint, timeout, log), nil
}

func runTUI(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bus := eventbus.New(log)
	defer bus.Close()
	unsubscribe := subscribeAudit(bus, log)
	defer unsubscribe()

	searcher, err := newSearcher(cfg, log)
	if err != nil {
		return err
	}

	model := ui.NewModel(bus, cfg, ui.Services{
		Searcher:   searcher,
		Recognizer: speech.New(cfg.VoiceCommand, log),
		Clipboard:  clipboard.System{},
		Log:        log,
	})
	model.SetInitialQuery(opts.query)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Info("starting", zap.String("endpoint", searcher.Endpoint()), zap.String("mode", cfg.UI.Mode))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// subscribeAudit logs every domain event the controller publishes
func subscribeAudit(bus eventbus.EventBus, log *zap.Logger) func() {
	audit := log.Named("audit")
	var unsubscribers []func()
	for _, eventType := range domain.AllEventTypes {
		unsubscribers = append(unsubscribers, bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			audit.Info(string(e.Type()), auditFields(e)...)
		}))
	}
	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}

// auditFields describes an event. Errors are logged as text since the
// reflected encoding of an error value is empty.
func auditFields(e eventbus.DomainEvent) []zap.Field {
	fields := []zap.Field{zap.Any("event", e)}
	switch ev := e.(type) {
	case domain.SearchFailedEvent:
		fields = append(fields, zap.Error(ev.Err))
	case domain.VoiceCaptureFinishedEvent:
		fields = append(fields, zap.Error(ev.Err))
	}
	return fields
}
