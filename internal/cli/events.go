package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/event"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and an empty event document",
		Long: `Create the data directory, its media directory and, if absent, an
empty events document. Safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts, cmd, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.store.EnsureInitialized(commandContext(cmd)); err != nil {
				return storeFailure("failed to initialize storage", err)
			}
			return sess.formatter.Success(initView{Path: sess.store.Path(), MediaDir: sess.store.MediaDir()})
		},
	}
}

type initView struct {
	Path     string `json:"path"`
	MediaDir string `json:"media_dir"`
}

func (v initView) String() string {
	return fmt.Sprintf("Initialized %s (media: %s)", v.Path, v.MediaDir)
}

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	CreatorID   int64
	Title       string
	Description string
	MaxPlayers  int
	EventDate   string
	MessageID   int64
	Autodelete  bool
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Long: `Create an event and print the stored record.

Example:
  eventbot create --creator 12345 --title "D&D Session" \
    --description "Lost Mines of Phandelver" --max-players 5 \
    --date 2025-12-01T19:00:00 --message-id 99999`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.CreatorID, "creator", 0, "creator user id (required)")
	_ = cmd.MarkFlagRequired("creator")
	cmd.Flags().StringVar(&opts.Title, "title", "", "event title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "event description")
	cmd.Flags().IntVar(&opts.MaxPlayers, "max-players", 0, "advisory capacity (required)")
	_ = cmd.MarkFlagRequired("max-players")
	cmd.Flags().StringVar(&opts.EventDate, "date", "", "event date, ISO-8601")
	cmd.Flags().Int64Var(&opts.MessageID, "message-id", 0, "correlated chat message id")
	cmd.Flags().BoolVar(&opts.Autodelete, "autodelete", true, "mark the event for automatic cleanup")

	return cmd
}

func runCreate(opts *CreateOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	draft := event.Draft{
		CreatorID:   opts.CreatorID,
		Title:       opts.Title,
		Description: opts.Description,
		MaxPlayers:  opts.MaxPlayers,
		Autodelete:  event.Bool(opts.Autodelete),
	}
	if cmd.Flags().Changed("date") {
		draft.EventDate = event.String(opts.EventDate)
	}
	if cmd.Flags().Changed("message-id") {
		draft.MessageID = event.Int64(opts.MessageID)
	}

	e, err := sess.store.Create(commandContext(cmd), draft)
	if err != nil {
		return storeFailure("failed to create event", err)
	}
	sess.formatter.VerboseLog("created %s in %s", e.EventID, sess.store.Path())
	return sess.formatter.Success(eventView(e))
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts, cmd, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			e, ok, err := sess.store.Get(commandContext(cmd), args[0])
			if err != nil {
				return storeFailure("failed to read events", err)
			}
			if !ok {
				return notFound(args[0])
			}
			return sess.formatter.Success(eventView(e))
		},
	}
}

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	var messageID int64

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the event announced by a chat message",
		Long: `Find the first event whose message_id matches.

Example:
  eventbot find --message-id 99999`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts, cmd, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			e, ok, err := sess.store.GetByMessageID(commandContext(cmd), messageID)
			if err != nil {
				return storeFailure("failed to read events", err)
			}
			if !ok {
				return NewExitError(ExitFailure, ErrCodeNotFound, fmt.Sprintf("no event for message %d", messageID))
			}
			return sess.formatter.Success(eventView(e))
		},
	}

	cmd.Flags().Int64Var(&messageID, "message-id", 0, "chat message id (required)")
	_ = cmd.MarkFlagRequired("message-id")

	return cmd
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events in storage order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts, cmd, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			events, err := sess.store.List(commandContext(cmd))
			if err != nil {
				return storeFailure("failed to read events", err)
			}
			return sess.formatter.Success(eventListView(events))
		},
	}
}

// UpdateOptions holds flags for the update command.
type UpdateOptions struct {
	*RootOptions
	CreatorID      int64
	Title          string
	Description    string
	MaxPlayers     int
	Players        []int64
	EventDate      string
	ClearDate      bool
	MediaFiles     []string
	MessageID      int64
	ClearMessageID bool
	Autodelete     bool
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Overwrite selected fields of an event",
		Long: `Overwrite the fields given as flags; all other fields keep their values.
List flags (--players, --media) replace the whole list.

Examples:
  eventbot update event_1_1764615600 --title "Session 2" --max-players 6
  eventbot update event_1_1764615600 --clear-date`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(opts, args[0], cmd)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.CreatorID, "creator", 0, "creator user id")
	f.StringVar(&opts.Title, "title", "", "event title")
	f.StringVar(&opts.Description, "description", "", "event description")
	f.IntVar(&opts.MaxPlayers, "max-players", 0, "advisory capacity")
	f.Int64SliceVar(&opts.Players, "players", nil, "replace the roster (comma-separated ids)")
	f.StringVar(&opts.EventDate, "date", "", "event date, ISO-8601")
	f.BoolVar(&opts.ClearDate, "clear-date", false, "remove the event date")
	f.StringSliceVar(&opts.MediaFiles, "media", nil, "replace the media list (comma-separated paths)")
	f.Int64Var(&opts.MessageID, "message-id", 0, "correlated chat message id")
	f.BoolVar(&opts.ClearMessageID, "clear-message-id", false, "remove the message id")
	f.BoolVar(&opts.Autodelete, "autodelete", true, "automatic cleanup flag")
	cmd.MarkFlagsMutuallyExclusive("date", "clear-date")
	cmd.MarkFlagsMutuallyExclusive("message-id", "clear-message-id")

	return cmd
}

// buildPatch turns the changed flags into a patch.
func buildPatch(opts *UpdateOptions, cmd *cobra.Command) *event.Patch {
	changed := cmd.Flags().Changed
	p := event.NewPatch()
	if changed("creator") {
		p.SetCreatorID(opts.CreatorID)
	}
	if changed("title") {
		p.SetTitle(opts.Title)
	}
	if changed("description") {
		p.SetDescription(opts.Description)
	}
	if changed("max-players") {
		p.SetMaxPlayers(opts.MaxPlayers)
	}
	if changed("players") {
		p.SetPlayers(opts.Players)
	}
	if changed("date") {
		p.SetEventDate(opts.EventDate)
	}
	if opts.ClearDate {
		p.ClearEventDate()
	}
	if changed("media") {
		p.SetMediaFiles(opts.MediaFiles)
	}
	if changed("message-id") {
		p.SetMessageID(opts.MessageID)
	}
	if opts.ClearMessageID {
		p.ClearMessageID()
	}
	if changed("autodelete") {
		p.SetAutodelete(opts.Autodelete)
	}
	return p
}

func runUpdate(opts *UpdateOptions, id string, cmd *cobra.Command) error {
	patch := buildPatch(opts, cmd)
	if patch.Empty() {
		return NewExitError(ExitCommandError, ErrCodeInvalidInput, "nothing to update: pass at least one field flag")
	}

	sess, err := openSession(opts.RootOptions, cmd, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := commandContext(cmd)
	ok, err := sess.store.Update(ctx, id, patch)
	if err != nil {
		return storeFailure("failed to update event", err)
	}
	if !ok {
		return notFound(id)
	}
	sess.formatter.VerboseLog("updated %v", patch.Fields())

	e, ok, err := sess.store.Get(ctx, id)
	if err != nil {
		return storeFailure("failed to read events", err)
	}
	if !ok {
		return notFound(id) // removed by a concurrent writer
	}
	return sess.formatter.Success(eventView(e))
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts, cmd, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			ok, err := sess.store.Delete(commandContext(cmd), args[0])
			if err != nil {
				return storeFailure("failed to delete event", err)
			}
			if !ok {
				return notFound(args[0])
			}
			return sess.formatter.Success(messageView{Message: "Deleted " + args[0], EventID: args[0]})
		},
	}
}
