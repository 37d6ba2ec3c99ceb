// ABOUTME: Opt-in observability sink: one JSONL line per hook invocation
// ABOUTME: Append-only per-session files; every failure is swallowed by contract

package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Entry is one mirrored (input, output) pair.
type Entry struct {
	Version   int             `json:"v"`
	ID        string          `json:"id"`
	TS        string          `json:"ts"`
	Hook      string          `json:"hook"`
	SessionID string          `json:"session_id"`
	Input     json.RawMessage `json:"input,omitempty"`
	Output    json.RawMessage `json:"output,omitempty"`
}

// Enabled reports whether the sink is active. It is opt-in via
// AGENT_HOOKS_EVENT_LOG naming the log directory.
func Enabled() bool {
	return config.EventLogDir() != ""
}

// Append mirrors one invocation into the session's log file. It never
// returns an error: logging failures must not alter the primary
// decision, so they are logged to stderr at debug level and dropped.
func Append(hook, sessionID string, input, output []byte) {
	dir := config.EventLogDir()
	if dir == "" {
		return
	}
	if sessionID == "" {
		sessionID = "unknown"
	}

	entry := Entry{
		Version:   1,
		ID:        uuid.NewString(),
		TS:        time.Now().UTC().Format(time.RFC3339),
		Hook:      hook,
		SessionID: sessionID,
		Input:     normalizeRaw(input),
		Output:    normalizeRaw(output),
	}

	line, err := json.Marshal(entry)
	if err != nil {
		log.Debug("eventlog: marshal failed: %v", err)
		return
	}

	if err := config.EnsureDir(dir); err != nil {
		log.Debug("eventlog: could not create log dir: %v", err)
		return
	}

	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Debug("eventlog: could not open %s: %v", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		log.Debug("eventlog: write failed: %v", err)
	}
}

// normalizeRaw keeps only payloads that are themselves valid JSON, so a
// garbled hook input doesn't poison the JSONL stream. Invalid payloads
// are re-encoded as a JSON string.
func normalizeRaw(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nil
	}
	return json.RawMessage(quoted)
}
