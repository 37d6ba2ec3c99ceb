// ABOUTME: Filesystem path resolution for hook state, event logs, and overrides
// ABOUTME: Every path honors an environment override so tests and hosts can redirect

package config

import (
	"os"
	"path/filepath"
)

// Environment overrides. Read at call time, not process start, so tests
// can redirect paths with t.Setenv.
const (
	EnvStateDir  = "AGENT_HOOKS_STATE_DIR"
	EnvEventLog  = "AGENT_HOOKS_EVENT_LOG"
	EnvToolTable = "AGENT_HOOKS_TOOL_TABLE"
)

const stateDirName = "hook-state"

// StateDir returns the root directory for per-session hook state.
// AGENT_HOOKS_STATE_DIR overrides; the default is ~/.claude/hook-state.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", stateDirName)
	}
	return filepath.Join(home, ".claude", stateDirName)
}

// EventLogDir returns the directory for the JSONL observability sink.
// Empty means the sink is disabled (it is opt-in).
func EventLogDir() string {
	return os.Getenv(EnvEventLog)
}

// ToolTablePath returns the classifier tool-table override file for a
// project, or "" if none applies. AGENT_HOOKS_TOOL_TABLE names an exact
// file; otherwise the project-local .claude/hook-tools.yaml is used.
func ToolTablePath(cwd string) string {
	if p := os.Getenv(EnvToolTable); p != "" {
		return p
	}
	if cwd == "" {
		return ""
	}
	return filepath.Join(cwd, ".claude", "hook-tools.yaml")
}

// GuidancePath returns the project-local momentum guidance override file.
func GuidancePath(cwd string) string {
	if cwd == "" {
		return ""
	}
	return filepath.Join(cwd, ".claude", "momentum-guide.md")
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700 since state files are keyed by private session identifiers.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}

// ReadFileIfExists returns the file contents, or "" when the file is
// missing or unreadable. Override files are best-effort by contract.
func ReadFileIfExists(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
