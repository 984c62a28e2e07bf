package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/eventbot/internal/bot"
)

// NewPingCommand creates the ping command.
func NewPingCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Reply with Pong!",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success(messageView{Message: bot.Ping()})
		},
	}
}
