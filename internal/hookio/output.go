// ABOUTME: Decision envelopes: the JSON a hook prints to stdout for the host
// ABOUTME: Emit always produces one syntactically valid object, even on marshal failure

package hookio

import (
	"encoding/json"
	"fmt"
	"io"
)

// Action is the internal decision of a state machine.
type Action int

const (
	ActionAllow Action = iota
	ActionAdvise
	ActionDeny
)

// Decision is the internal (action, text) pair a hook computes. Text is
// the advisory context for ActionAdvise and the reason for ActionDeny.
type Decision struct {
	Action Action
	Text   string
}

// Allow is the silent no-op decision.
func Allow() Decision { return Decision{Action: ActionAllow} }

// Advise carries non-blocking context injected into the agent's view.
func Advise(text string) Decision { return Decision{Action: ActionAdvise, Text: text} }

// Deny blocks the action with a reason the agent is expected to act on.
func Deny(reason string) Decision { return Decision{Action: ActionDeny, Text: reason} }

// specificOutput is the hookSpecificOutput body used by tool-lifecycle
// events (PreToolUse and friends).
type specificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string `json:"permissionDecisionReason,omitempty"`
	AdditionalContext        string `json:"additionalContext,omitempty"`
}

type toolEnvelope struct {
	HookSpecificOutput specificOutput `json:"hookSpecificOutput"`
}

// stopEnvelope is the flat shape Stop events expect.
type stopEnvelope struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

const (
	// EventPreToolUse and EventStop tag decision envelopes with the
	// lifecycle point they answer.
	EventPreToolUse = "PreToolUse"
	EventStop       = "Stop"
)

// Marshal renders a decision into the host's envelope for the given
// lifecycle event. Allow is always the empty object.
func Marshal(event string, d Decision) ([]byte, error) {
	switch d.Action {
	case ActionAllow:
		return []byte("{}"), nil
	case ActionDeny:
		if event == EventStop {
			return json.Marshal(stopEnvelope{Decision: "block", Reason: d.Text})
		}
		return json.Marshal(toolEnvelope{specificOutput{
			HookEventName:            event,
			PermissionDecision:       "deny",
			PermissionDecisionReason: d.Text,
		}})
	case ActionAdvise:
		return json.Marshal(toolEnvelope{specificOutput{
			HookEventName:     event,
			AdditionalContext: d.Text,
		}})
	default:
		return nil, fmt.Errorf("unknown action %d", d.Action)
	}
}

// Emit writes the decision envelope to w and returns the bytes written.
// It cannot fail the hook: any marshal problem degrades to the allow
// envelope so a defect in advisory logic never blocks the user's work.
func Emit(w io.Writer, event string, d Decision) []byte {
	out, err := Marshal(event, d)
	if err != nil {
		out = []byte("{}")
	}
	fmt.Fprintln(w, string(out))
	return out
}
