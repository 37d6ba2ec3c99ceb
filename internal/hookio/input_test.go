// ABOUTME: Tests for event input decoding: defaults, malformed payloads, tool_input
// ABOUTME: Missing fields must never be an error, only malformed JSON is

package hookio

import (
	"strings"
	"testing"
)

func TestReadEvent_FullPayload(t *testing.T) {
	t.Parallel()

	in := `{
		"session_id": "abc",
		"transcript_path": "/tmp/t.jsonl",
		"cwd": "/proj",
		"hook_event_name": "PreToolUse",
		"tool_name": "Bash",
		"tool_input": {"command": "grep -r foo ."},
		"stop_hook_active": true,
		"last_assistant_message": "done"
	}`

	ev, raw, err := ReadEvent(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev.SessionID != "abc" || ev.ToolName != "Bash" || !ev.StopHookActive {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.BashCommand() != "grep -r foo ." {
		t.Errorf("BashCommand = %q", ev.BashCommand())
	}
	if len(raw) == 0 {
		t.Error("raw bytes should be preserved for the event log")
	}
}

func TestReadEvent_MissingFieldsDefault(t *testing.T) {
	t.Parallel()

	ev, _, err := ReadEvent(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev.SessionID != "" || ev.ToolName != "" || ev.StopHookActive {
		t.Errorf("expected zero event, got %+v", ev)
	}
	if ev.BashCommand() != "" {
		t.Errorf("BashCommand on empty tool_input = %q", ev.BashCommand())
	}
}

func TestReadEvent_MalformedIsError(t *testing.T) {
	t.Parallel()

	ev, _, err := ReadEvent(strings.NewReader(`{"session_id": `))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if ev.SessionID != "" {
		t.Errorf("malformed input must yield zero event, got %+v", ev)
	}
}

func TestBashCommand_NonObjectToolInput(t *testing.T) {
	t.Parallel()

	ev, _, err := ReadEvent(strings.NewReader(`{"tool_input": "raw string"}`))
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev.BashCommand() != "" {
		t.Errorf("BashCommand = %q, want empty for non-object tool_input", ev.BashCommand())
	}
}
