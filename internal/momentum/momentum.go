// ABOUTME: Stop-momentum handshake: an ack token gates deliberate session stops
// ABOUTME: Every blocked stop persists a fresh token; only the latest one is valid

package momentum

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/log"
	"github.com/mauromedda/agent-hooks-go/internal/state"
)

// Hook is the state-record key for this machine.
const Hook = "stop-ack"

const tokenPrefix = "ACK-"

// State holds the pending ack token. The record exists only while a
// stop is being withheld.
type State struct {
	AckToken string `json:"ack_token"`
}

const defaultGuidance = `EXECUTION MOMENTUM CHECK: Before stopping, consider:
- Have you completed what the user actually asked for, or just a sub-task within a larger request?
- If you have a question, status update, or finding to share, prefer a structured consult over stopping; it gives the user a way to respond without treating this as a session boundary.
- If this is a genuine session end (user's request fully fulfilled, or an explicit checkpoint they asked for), you may stop deliberately.`

// Handle evaluates one Stop event.
func Handle(ev hookio.Event) hookio.Decision {
	// The host sets stop_hook_active when this exact stop attempt was
	// already intercepted once. Allowing unconditionally here is what
	// keeps the hook from blocking itself forever.
	if ev.StopHookActive {
		return hookio.Allow()
	}

	s := state.Load(ev.SessionID, Hook, State{})
	if s.AckToken != "" && strings.Contains(ev.LastAssistantMessage, s.AckToken) {
		state.Remove(ev.SessionID, Hook)
		return hookio.Allow()
	}

	// Block: issue a fresh token. A token from an earlier blocked stop
	// is superseded, not reused; the agent must acknowledge the message
	// it is actually seeing.
	token := NewToken()
	if err := state.Save(ev.SessionID, Hook, State{AckToken: token}); err != nil {
		log.Warn("momentum: could not persist ack token: %v", err)
	}

	return hookio.Deny(blockMessage(guidance(ev.Cwd), token))
}

// NewToken generates an ack token: a short fixed prefix plus a random
// suffix. Collisions within a session are immaterial since only the
// latest token is ever valid.
func NewToken() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return tokenPrefix + suffix
}

// guidance returns the project-local override body when present,
// otherwise the built-in default.
func guidance(cwd string) string {
	if body := strings.TrimSpace(config.ReadFileIfExists(config.GuidancePath(cwd))); body != "" {
		return body
	}
	return defaultGuidance
}

// blockMessage appends the token instruction after whichever guidance
// body is in use.
func blockMessage(guidance, token string) string {
	return guidance + "\n\nTo confirm this is a deliberate stop, include " + token + " in your next response."
}
