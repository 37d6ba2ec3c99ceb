// ABOUTME: subagent-start/subagent-stop subcommands: guard refcount bookkeeping
// ABOUTME: Always emit the empty allow object; only state is touched

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/guard"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
)

var subagentStartCmd = &cobra.Command{
	Use:   "subagent-start",
	Short: "SubagentStart hook: count an active subagent for the delegation guard",
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, "subagent-start", hookio.EventPreToolUse, guard.HandleSubagentStart)
	},
}

var subagentStopCmd = &cobra.Command{
	Use:   "subagent-stop",
	Short: "SubagentStop hook: release an active subagent for the delegation guard",
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, "subagent-stop", hookio.EventPreToolUse, guard.HandleSubagentStop)
	},
}

func init() {
	rootCmd.AddCommand(subagentStartCmd)
	rootCmd.AddCommand(subagentStopCmd)
}
