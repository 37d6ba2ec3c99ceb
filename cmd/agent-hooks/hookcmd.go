// ABOUTME: Shared hook-subcommand boundary: decode, decide, emit, mirror
// ABOUTME: The outermost fault barrier; hooks degrade per their fail mode, never crash

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/agent-hooks-go/internal/eventlog"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// runHook is the common body of every hook subcommand. It reads the
// event from stdin, runs fn, and prints the decision envelope. Parse
// errors are "no signal" (allow); panics inside fn degrade to the
// hook's fail-open default. The process therefore always emits one
// valid JSON object and exits 0. A crashing hook would be worse than a
// silently-wrong one, because it can wedge the host's tool loop.
func runHook(cmd *cobra.Command, hook, event string, fn func(hookio.Event) hookio.Decision) {
	var (
		raw      []byte
		session  string
		decision = hookio.Allow()
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("%s: internal fault, failing open: %v", hook, r)
				decision = hookio.Allow()
			}
		}()

		ev, rawIn, err := hookio.ReadEvent(cmd.InOrStdin())
		raw = rawIn
		session = ev.SessionID
		if err != nil {
			log.Debug("%s: unreadable event, passing through: %v", hook, err)
			return
		}
		decision = fn(ev)
	}()

	out := hookio.Emit(cmd.OutOrStdout(), event, decision)
	eventlog.Append(hook, session, raw, out)
}
