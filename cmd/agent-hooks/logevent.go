// ABOUTME: log-event subcommand: pure observer hook for any lifecycle event
// ABOUTME: Emits {} and mirrors the full input into the event log when enabled

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/hookio"
)

var logEventCmd = &cobra.Command{
	Use:   "log-event",
	Short: "Observer hook: record the full event payload, decide nothing",
	Long: `Returns {} for every event so the host proceeds normally, while the
(input, output) pair is mirrored to the JSONL event log. Only useful
with AGENT_HOOKS_EVENT_LOG set; without it this hook is a no-op.`,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, "log-event", hookio.EventPreToolUse, func(ev hookio.Event) hookio.Decision {
			return hookio.Allow()
		})
	},
}

func init() {
	rootCmd.AddCommand(logEventCmd)
}
