package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/journal"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [event-id]",
		Short: "Show journaled mutations",
		Long: `Show the mutation journal, oldest first. With an event id only that
event's entries are shown; without one the last --limit entries are shown.
Requires journal_path (EVENTBOT_JOURNAL) to be configured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd, args)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "entries to show when no event id is given")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command, args []string) error {
	sess, err := openSession(opts.RootOptions, cmd, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	if sess.journal == nil {
		return NewExitError(ExitCommandError, ErrCodeInvalidInput, "no journal configured: set journal_path or EVENTBOT_JOURNAL")
	}

	ctx := commandContext(cmd)
	var entries []journal.Entry
	if len(args) == 1 {
		entries, err = sess.journal.History(ctx, args[0])
	} else {
		entries, err = sess.journal.Entries(ctx, opts.Limit)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeStorage, "failed to read journal", err)
	}
	return sess.formatter.Success(historyView(entries))
}
