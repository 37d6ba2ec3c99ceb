// ABOUTME: run subcommand: fail-open/fail-closed wrapper around an external hook
// ABOUTME: Always prints one JSON object and exits 0, whatever the child does

package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/eventlog"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/log"
	"github.com/mauromedda/agent-hooks-go/internal/runner"
)

var (
	runMode    string
	runEvent   string
	runTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run --mode open|closed [--event NAME] -- <command> [args...]",
	Short: "Wrap an external hook with a timeout and a fail-open or fail-closed default",
	Long: `Pipes stdin to the wrapped command, bounds it with a hard timeout, and
forwards its JSON decision. If the command is missing, crashes, times
out, or prints garbage, a static substitute decision is emitted instead:
a non-blocking warning in open mode, a deny in closed mode. The wrapper
always exits 0 so a broken hook can never wedge the host.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			log.Debug("run: could not read stdin: %v", err)
			input = nil
		}

		mode := runner.ModeOpen
		if runMode == string(runner.ModeClosed) {
			mode = runner.ModeClosed
		}

		res := runner.Run(cmd.Context(), mode, runEvent, args, input, runTimeout)
		cmd.Println(string(res.Output))

		session := sessionFromRaw(input)
		eventlog.Append("run:"+args[0], session, input, res.Output)
	},
}

// sessionFromRaw pulls the session id out of the raw event for log
// attribution; the wrapper itself doesn't interpret the payload.
func sessionFromRaw(raw []byte) string {
	ev, _, err := hookio.ReadEventBytes(raw)
	if err != nil {
		return ""
	}
	return ev.SessionID
}

func init() {
	runCmd.Flags().StringVar(&runMode, "mode", string(runner.ModeOpen), "fallback mode when the hook fails: open or closed")
	runCmd.Flags().StringVar(&runEvent, "event", hookio.EventPreToolUse, "lifecycle event name used in fallback envelopes")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", runner.DefaultTimeout, "hard timeout for the wrapped hook")
	rootCmd.AddCommand(runCmd)
}
