// ABOUTME: events subcommand: summarize the JSONL event log per session
// ABOUTME: Dev-facing plain text; never wired into the host as a hook

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/eventlog"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Summarize mirrored hook invocations per session",
	Long: `Reads the JSONL event log (AGENT_HOOKS_EVENT_LOG) and prints one line
per session with invocation counts, denies, and advisories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !eventlog.Enabled() {
			return fmt.Errorf("event log disabled: set AGENT_HOOKS_EVENT_LOG to a directory")
		}

		summaries, err := eventlog.Summarize(cmd.Context())
		if err != nil {
			return fmt.Errorf("summarizing event log: %w", err)
		}
		if len(summaries) == 0 {
			cmd.Println("no sessions logged")
			return nil
		}

		for _, s := range summaries {
			hooks := make([]string, 0, len(s.ByHook))
			for hook, n := range s.ByHook {
				hooks = append(hooks, fmt.Sprintf("%s=%d", hook, n))
			}
			sort.Strings(hooks)
			cmd.Printf("%s  events=%d denies=%d advisories=%d  %s\n",
				s.SessionID, s.Events, s.Denies, s.Advisories, strings.Join(hooks, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
