// ABOUTME: stop-momentum subcommand: Stop hook requiring an ack-token handshake
// ABOUTME: Blocks a stop until the agent restates itself and includes the issued token

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/momentum"
)

var momentumCmd = &cobra.Command{
	Use:   "stop-momentum",
	Short: "Stop hook: require a deliberate acknowledgment token before stopping",
	Long: `On each Stop event, checks whether the last assistant message contains
the pending ack token. If it does, the stop is allowed and the token is
cleared. Otherwise the stop is blocked with guidance and a freshly
generated token the agent must include in its next reply. The host's
stop_hook_active flag short-circuits to allow so the hook cannot block
itself in a loop.

Guidance comes from .claude/momentum-guide.md in the project when
present, else a built-in default.`,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, "stop-momentum", hookio.EventStop, momentum.Handle)
	},
}

func init() {
	rootCmd.AddCommand(momentumCmd)
}
