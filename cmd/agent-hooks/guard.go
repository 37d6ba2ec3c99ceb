// ABOUTME: delegation-guard subcommand: PreToolUse hook enforcing delegation discipline
// ABOUTME: Denies the first solo call per cycle, then escalates advisories at powers of two

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/classify"
	"github.com/mauromedda/agent-hooks-go/internal/guard"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
)

var guardCmd = &cobra.Command{
	Use:   "delegation-guard",
	Short: "PreToolUse hook: block the first solo tool call, then escalate advisories",
	Long: `Tracks consecutive tool calls that bypass subagent delegation. The
first qualifying call after a reset is denied once; after that, executed
calls increment a streak and advisories fire at streak 2, 4, 8, 16, ...
A delegating call (Task/Agent) resets the cycle; exempt orchestration
tools are neutral. Active subagents suppress the guard entirely.

The tool category table can be overridden per project via
.claude/hook-tools.yaml or the AGENT_HOOKS_TOOL_TABLE variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, "delegation-guard", hookio.EventPreToolUse, func(ev hookio.Event) hookio.Decision {
			return guard.HandleToolCall(ev, classify.LoadTable(ev.Cwd))
		})
	},
}

func init() {
	rootCmd.AddCommand(guardCmd)
}
