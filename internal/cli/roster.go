package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/store"
)

// NewJoinCommand creates the join command.
func NewJoinCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "join <event-id> <player-id>",
		Short: "Add a player to an event's roster",
		Long: `Add a player to the roster. Capacity is advisory and not checked.
Exits 1 when the event does not exist or the player already joined.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(rootOpts, cmd, args, true)
		},
	}
}

// NewLeaveCommand creates the leave command.
func NewLeaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leave <event-id> <player-id>",
		Short: "Remove a player from an event's roster",
		Long:  `Remove a player from the roster. Exits 1 when the event does not exist or the player is not on it.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(rootOpts, cmd, args, false)
		},
	}
}

func runRoster(rootOpts *RootOptions, cmd *cobra.Command, args []string, join bool) error {
	id := args[0]
	player, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return NewExitError(ExitCommandError, ErrCodeInvalidInput, fmt.Sprintf("invalid player id %q", args[1]))
	}

	sess, err := openSession(rootOpts, cmd, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := commandContext(cmd)
	var ok bool
	if join {
		ok, err = sess.store.AddPlayer(ctx, id, player)
	} else {
		ok, err = sess.store.RemovePlayer(ctx, id, player)
	}
	if err != nil {
		return storeFailure("failed to update roster", err)
	}
	if !ok {
		return rosterRefusal(ctx, sess.store, id, player, join)
	}

	e, found, err := sess.store.Get(ctx, id)
	if err != nil {
		return storeFailure("failed to read events", err)
	}
	if !found {
		return notFound(id)
	}
	return sess.formatter.Success(eventView(e))
}

// rosterRefusal tells a missing event apart from a refused roster change.
// The store reports both as false.
func rosterRefusal(ctx context.Context, st *store.Store, id string, player int64, join bool) error {
	_, found, err := st.Get(ctx, id)
	if err != nil {
		return storeFailure("failed to read events", err)
	}
	if !found {
		return notFound(id)
	}
	if join {
		return NewExitError(ExitFailure, ErrCodePrecondition, fmt.Sprintf("player %d already joined %s", player, id))
	}
	return NewExitError(ExitFailure, ErrCodePrecondition, fmt.Sprintf("player %d is not on %s", player, id))
}

// AttachOptions holds flags for the attach command.
type AttachOptions struct {
	*RootOptions
	Copy bool
}

// NewAttachCommand creates the attach command.
func NewAttachCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AttachOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "attach <event-id> <path>",
		Short: "Record a media file against an event",
		Long: `Append a media path to the event. The path is stored as given and
duplicates are kept. With --copy the file is first copied into the media
directory and the copy's path is recorded instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttach(opts, cmd, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "copy the file into the media directory")

	return cmd
}

func runAttach(opts *AttachOptions, cmd *cobra.Command, id, path string) error {
	sess, err := openSession(opts.RootOptions, cmd, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := commandContext(cmd)
	if opts.Copy {
		// Copy only for events that exist, so a typo leaves no orphan file.
		if _, found, err := sess.store.Get(ctx, id); err != nil {
			return storeFailure("failed to read events", err)
		} else if !found {
			return notFound(id)
		}
		dst, err := copyIntoMedia(sess.store.MediaDir(), path)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeStorage, "failed to copy media file", err)
		}
		sess.logger.Debug("copied media file", "src", path, "dst", dst)
		path = dst
	}

	ok, err := sess.store.AddMediaFile(ctx, id, path)
	if err != nil {
		return storeFailure("failed to attach media", err)
	}
	if !ok {
		return notFound(id)
	}

	e, found, err := sess.store.Get(ctx, id)
	if err != nil {
		return storeFailure("failed to read events", err)
	}
	if !found {
		return notFound(id)
	}
	return sess.formatter.Success(eventView(e))
}

// copyIntoMedia copies src into mediaDir under its base name and returns the
// destination path. An existing file of the same name is overwritten.
func copyIntoMedia(mediaDir, src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(mediaDir, filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dst, nil
}

