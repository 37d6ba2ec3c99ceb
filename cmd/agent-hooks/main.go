// ABOUTME: CLI entry point: one subcommand per lifecycle hook
// ABOUTME: Hook subcommands read one event from stdin, print one JSON decision, exit 0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "agent-hooks",
	Short: "Delegation and momentum guard hooks for Claude Code",
	Long: `agent-hooks implements the hook subcommands a Claude Code installation
wires into its lifecycle events: a delegation guard on PreToolUse, a
stop-momentum handshake on Stop, subagent lifecycle bookkeeping, an
event mirror, and a fail-open/fail-closed wrapper for external hooks.

Every hook subcommand reads one JSON event from stdin, prints exactly
one JSON decision object to stdout, and exits 0 regardless of internal
failures.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
