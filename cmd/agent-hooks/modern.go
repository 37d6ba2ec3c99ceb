// ABOUTME: prefer-modern-tools subcommand: advisory nudging fd/rg over find/grep
// ABOUTME: Non-blocking, cooldown-suppressed, silent when the alternative is missing

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/advisory"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
)

var modernToolsCmd = &cobra.Command{
	Use:   "prefer-modern-tools",
	Short: "PreToolUse hook: suggest fd/rg when a Bash command uses find/grep",
	Long: `Purely advisory. Suggests fd for find and rg for grep, only when the
replacement binary is on PATH, at most once per minute per session.`,
	Run: func(cmd *cobra.Command, args []string) {
		runHook(cmd, advisory.Hook, hookio.EventPreToolUse, advisory.ModernTools)
	},
}

func init() {
	rootCmd.AddCommand(modernToolsCmd)
}
