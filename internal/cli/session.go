package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/config"
	"github.com/roach88/eventbot/internal/event"
	"github.com/roach88/eventbot/internal/journal"
	"github.com/roach88/eventbot/internal/metrics"
	"github.com/roach88/eventbot/internal/store"
)

// session bundles what a command needs to talk to the store.
type session struct {
	cfg       config.Config
	logger    *slog.Logger
	store     *store.Store
	journal   *journal.Journal // nil unless journal_path is configured
	formatter *OutputFormatter
}

// openSession loads configuration and opens the store (and journal, if
// configured). When reg is non-nil the store reports to Prometheus.
func openSession(opts *RootOptions, cmd *cobra.Command, reg prometheus.Registerer) (*session, error) {
	cfg, err := config.Load(config.Options{File: opts.ConfigFile, EnvFile: opts.EnvFile})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, ErrCodeInvalidInput, "failed to load config", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	level, _ := cfg.SlogLevel() // validated by config.Load
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ids, err := event.GeneratorFor(cfg.IDScheme)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, ErrCodeInvalidInput, "invalid id scheme", err)
	}

	storeOpts := []store.Option{
		store.WithIDGenerator(ids),
		store.WithLogger(logger),
	}

	var j *journal.Journal
	if cfg.JournalPath != "" {
		logger.Debug("opening journal", "path", cfg.JournalPath)
		j, err = journal.Open(cfg.JournalPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, ErrCodeStorage, "failed to open journal", err)
		}
		storeOpts = append(storeOpts, store.WithJournal(j))
	}

	if reg != nil {
		storeOpts = append(storeOpts, store.WithRecorder(metrics.NewStoreMetrics(reg)))
	}

	st, err := store.Open(cfg.DataDir, storeOpts...)
	if err != nil {
		if j != nil {
			j.Close()
		}
		return nil, WrapExitError(ExitCommandError, ErrCodeInvalidInput, "failed to open store", err)
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		journal: j,
		formatter: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		},
	}, nil
}

// Close releases the journal, if open.
func (s *session) Close() {
	if s.journal == nil {
		return
	}
	if err := s.journal.Close(); err != nil {
		s.logger.Error("error closing journal", "error", err)
	}
}

// commandContext returns the command's context, or Background when the
// command runs outside ExecuteContext (tests calling Execute directly).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// storeFailure maps a store error onto an ExitError.
func storeFailure(message string, err error) *ExitError {
	switch {
	case store.IsCorrupt(err):
		return WrapExitError(ExitCommandError, ErrCodeCorrupt, message, err)
	case store.IsStorageError(err):
		return WrapExitError(ExitCommandError, ErrCodeStorage, message, err)
	default:
		return WrapExitError(ExitCommandError, ErrCodeGeneric, message, err)
	}
}

// notFound reports a missing event.
func notFound(id string) *ExitError {
	return NewExitError(ExitFailure, ErrCodeNotFound, "event not found: "+id)
}
