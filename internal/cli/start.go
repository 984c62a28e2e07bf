package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/bot"
	"github.com/roach88/eventbot/internal/metrics"
)

// shutdownTimeout bounds the graceful shutdown of the probe server.
const shutdownTimeout = 5 * time.Second

// StartOptions holds flags for the start command.
type StartOptions struct {
	*RootOptions
	MetricsAddr string
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the bot process",
		Long: `Initialize storage, announce startup to the admin chat and serve
/healthz, /readyz and /metrics until interrupted.

The announcement goes through the Telegram Bot API when TELEGRAM_TOKEN is
set and is logged otherwise. A failed announcement is logged, not fatal.

Example:
  TELEGRAM_TOKEN=... ADMIN_ID=12345 eventbot start --metrics-addr :9464`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "probe listen address (overrides config)")

	return cmd
}

func runStart(opts *StartOptions, cmd *cobra.Command) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sess, err := openSession(opts.RootOptions, cmd, reg)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			sess.logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := sess.store.EnsureInitialized(ctx); err != nil {
		return storeFailure("failed to initialize storage", err)
	}

	announce(ctx, sess, time.Now())

	addr := sess.cfg.MetricsAddr
	if opts.MetricsAddr != "" {
		addr = opts.MetricsAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeGeneric, "failed to listen on "+addr, err)
	}

	ready := func(ctx context.Context) error {
		_, err := sess.store.List(ctx)
		return err
	}
	srv := &http.Server{
		Handler:           metrics.NewProbeMux(reg, ready),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	sess.logger.Info("bot started", "data_dir", sess.cfg.DataDir, "probes", ln.Addr().String())
	fmt.Fprintf(cmd.OutOrStdout(), "Serving probes on %s\n", ln.Addr())

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, ErrCodeGeneric, "probe server failed", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sess.logger.Warn("probe server shutdown", "error", err)
	}

	sess.logger.Info("bot stopped gracefully")
	return nil
}

// announce sends the startup message, logging rather than failing on error.
func announce(ctx context.Context, sess *session, now time.Time) {
	var n bot.Notifier = bot.LogNotifier{Logger: sess.logger}
	if tg := sess.cfg.Telegram; tg.Token != "" {
		n = bot.NewTelegramNotifier(tg.Token, tg.APIBase, nil)
	}

	sent, err := bot.AnnounceStartup(ctx, n, sess.cfg.Telegram.AdminID, now)
	switch {
	case err != nil:
		sess.logger.Warn("startup announcement failed", "error", err)
	case sent:
		sess.logger.Info("startup announced", "admin_id", sess.cfg.Telegram.AdminID)
	default:
		sess.logger.Debug("no admin_id configured, skipping startup announcement")
	}
}

