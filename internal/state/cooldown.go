// ABOUTME: Time-windowed cooldown and once-per-session suppression primitives
// ABOUTME: Both are keyed (hook, session); a global record would leak across sessions

package state

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

func cooldownPath(sessionID, hook string) string {
	return filepath.Join(config.StateDir(), hook+"-cooldown-"+sessionID)
}

func shownPath(sessionID, hook string) string {
	return filepath.Join(config.StateDir(), hook+"-shown-"+sessionID)
}

// WithinCooldown reports whether fewer than window seconds have elapsed
// since RecordNow was last called for this (session, hook). Unreadable
// or garbled timestamps count as "not suppressed".
func WithinCooldown(sessionID, hook string, window time.Duration) bool {
	data, err := os.ReadFile(cooldownPath(sessionID, hook))
	if err != nil {
		return false
	}
	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return false
	}
	return time.Since(time.Unix(last, 0)) < window
}

// RecordNow stamps the cooldown for this (session, hook). Failures are
// logged and ignored; cooldown is best-effort suppression.
func RecordNow(sessionID, hook string) {
	dir := config.StateDir()
	if err := config.EnsureDir(dir); err != nil {
		log.Warn("state: could not create state dir for cooldown: %v", err)
		return
	}
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	if err := os.WriteFile(cooldownPath(sessionID, hook), []byte(ts), 0o600); err != nil {
		log.Warn("state: could not record cooldown: %v", err)
	}
}

// AlreadyShown reports whether MarkShown has been called for this
// (session, hook). Existence of the marker file is the whole signal.
func AlreadyShown(sessionID, hook string) bool {
	_, err := os.Stat(shownPath(sessionID, hook))
	return err == nil
}

// MarkShown arms the never-again-this-session flag.
func MarkShown(sessionID, hook string) {
	dir := config.StateDir()
	if err := config.EnsureDir(dir); err != nil {
		log.Warn("state: could not create state dir for marker: %v", err)
		return
	}
	if err := os.WriteFile(shownPath(sessionID, hook), nil, 0o600); err != nil {
		log.Warn("state: could not write shown marker: %v", err)
	}
}
