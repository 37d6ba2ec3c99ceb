// ABOUTME: Persistence glue: load guard state, transition, save, hand back a decision
// ABOUTME: Subagent transcripts and missing session ids pass through untouched

package guard

import (
	"github.com/mauromedda/agent-hooks-go/internal/classify"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/log"
	"github.com/mauromedda/agent-hooks-go/internal/state"
)

// HandleToolCall runs the guard for one PreToolUse event.
func HandleToolCall(ev hookio.Event, table classify.Table) hookio.Decision {
	// A subagent shares its parent's session id and state file. Running
	// the guard there would tell the subagent to delegate its own work.
	if classify.InSubagent(ev.TranscriptPath) {
		return hookio.Allow()
	}

	cat := table.Classify(ev.ToolName)
	if cat == classify.Neutral {
		return hookio.Allow()
	}

	s := state.Load(ev.SessionID, Hook, State{})
	next, decision := OnToolCall(s, cat)
	if next != s {
		if err := state.Save(ev.SessionID, Hook, next); err != nil {
			log.Warn("guard: could not persist state: %v", err)
		}
	}
	return decision
}

// HandleSubagentStart records a subagent-start lifecycle event.
// No decision is ever emitted for subagent bookkeeping.
func HandleSubagentStart(ev hookio.Event) hookio.Decision {
	updateSubagents(ev, OnSubagentStart)
	return hookio.Allow()
}

// HandleSubagentStop records a subagent-stop lifecycle event.
func HandleSubagentStop(ev hookio.Event) hookio.Decision {
	updateSubagents(ev, OnSubagentStop)
	return hookio.Allow()
}

func updateSubagents(ev hookio.Event, transition func(State) State) {
	if ev.SessionID == "" {
		return
	}
	s := state.Load(ev.SessionID, Hook, State{})
	next := transition(s)
	if next == s {
		return
	}
	if err := state.Save(ev.SessionID, Hook, next); err != nil {
		log.Warn("guard: could not persist subagent count: %v", err)
	}
}
