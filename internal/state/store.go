// ABOUTME: File-backed per-session state store for hook state machines
// ABOUTME: Corrupt or missing records yield the caller's default; writes are atomic

package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// recordPath returns the state file for a (session, hook) pair.
// Layout: <state-dir>/<session>-<hook>.json
func recordPath(sessionID, hook string) string {
	return filepath.Join(config.StateDir(), sessionID+"-"+hook+".json")
}

// Load reads the persisted record for a (session, hook) pair. A missing,
// truncated, or otherwise unparseable record returns def untouched; a
// stateful hook must never fail because its scratch file went bad.
func Load[T any](sessionID, hook string, def T) T {
	data, err := os.ReadFile(recordPath(sessionID, hook))
	if err != nil {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Debug("state: corrupt record for %s/%s, using defaults: %v", sessionID, hook, err)
		return def
	}
	return v
}

// Save persists the record atomically: write a temp file in the state
// dir, then rename over the target. A crash mid-write leaves either the
// old record or an orphaned temp file, never a half-written record.
func Save(sessionID, hook string, v any) error {
	dir := config.StateDir()
	if err := config.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+hook+"-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp state file: %w", err)
	}

	if err := os.Rename(tmpName, recordPath(sessionID, hook)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// Remove deletes the record for a (session, hook) pair. Missing files
// are not an error.
func Remove(sessionID, hook string) {
	if err := os.Remove(recordPath(sessionID, hook)); err != nil && !os.IsNotExist(err) {
		log.Warn("state: could not remove %s/%s: %v", sessionID, hook, err)
	}
}
