// ABOUTME: Lifecycle event input: the JSON payload the host pipes to a hook's stdin
// ABOUTME: Every field is optional; missing fields default to zero values

package hookio

import (
	"encoding/json"
	"fmt"
	"io"
)

// Event is the host's lifecycle event payload. The host is free to add
// fields per event type; unknown fields are ignored, missing fields
// default, and nothing here is assumed present.
type Event struct {
	SessionID      string          `json:"session_id"`
	TranscriptPath string          `json:"transcript_path"`
	Cwd            string          `json:"cwd"`
	HookEventName  string          `json:"hook_event_name"`
	ToolName       string          `json:"tool_name"`
	ToolInput      json.RawMessage `json:"tool_input"`

	// Stop events only.
	StopHookActive       bool   `json:"stop_hook_active"`
	LastAssistantMessage string `json:"last_assistant_message"`
}

// ReadEvent decodes one event from r and returns it along with the raw
// bytes (the observability sink mirrors inputs verbatim). A decode error
// is returned with the zero Event so callers can treat it as "no signal".
func ReadEvent(r io.Reader) (Event, []byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Event{}, nil, fmt.Errorf("reading event: %w", err)
	}
	return ReadEventBytes(raw)
}

// ReadEventBytes decodes one event from an already-read payload.
func ReadEventBytes(raw []byte) (Event, []byte, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return Event{}, raw, fmt.Errorf("parsing event: %w", err)
	}
	return ev, raw, nil
}

// BashCommand extracts tool_input.command for Bash tool events.
// Returns "" when the field is absent or the payload is not an object.
func (e Event) BashCommand() string {
	if len(e.ToolInput) == 0 {
		return ""
	}
	var ti struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(e.ToolInput, &ti); err != nil {
		return ""
	}
	return ti.Command
}
