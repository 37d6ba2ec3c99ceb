// ABOUTME: Advisory hook suggesting fd/rg over find/grep in Bash commands
// ABOUTME: Exercises the per-session cooldown; silent when the replacement is absent

package advisory

import (
	"os/exec"
	"regexp"
	"time"

	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/state"
)

// Hook is the cooldown key for this advisory.
const Hook = "prefer-modern-tools"

// Cooldown suppresses repeat suggestions within a session. It is scoped
// per session: a global window would silence a conversation that never
// saw the first suggestion.
const Cooldown = 60 * time.Second

var (
	findPattern = regexp.MustCompile(`(^|[\s|;&(])find\b`)
	grepPattern = regexp.MustCompile(`(^|[\s|;&(])grep\b`)
	rgPattern   = regexp.MustCompile(`(^|[\s|;&(])rg\b`)
)

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// ModernTools evaluates one PreToolUse event and returns the advisory
// decision. Non-Bash tools, commands without find/grep, missing
// replacement binaries, and cooldown windows all yield silent allow.
func ModernTools(ev hookio.Event) hookio.Decision {
	if ev.ToolName != "Bash" {
		return hookio.Allow()
	}
	command := ev.BashCommand()
	if command == "" {
		return hookio.Allow()
	}

	suggestion := buildSuggestion(command)
	if suggestion == "" {
		return hookio.Allow()
	}

	// The first trigger in a session always shows; after that the
	// cooldown window applies.
	if state.AlreadyShown(ev.SessionID, Hook) && state.WithinCooldown(ev.SessionID, Hook, Cooldown) {
		return hookio.Allow()
	}
	state.MarkShown(ev.SessionID, Hook)
	state.RecordNow(ev.SessionID, Hook)
	return hookio.Advise(suggestion)
}

// buildSuggestion returns the advisory text for a command, or "" when
// nothing applies.
func buildSuggestion(command string) string {
	switch {
	case findPattern.MatchString(command) && available("fd"):
		return "Consider using fd instead of find: it is faster, respects " +
			".gitignore by default, and has simpler pattern syntax " +
			"(e.g. `fd '\\.py$'` instead of `find . -name '*.py'`)."
	case grepPattern.MatchString(command) && !rgPattern.MatchString(command) && available("rg"):
		return "Consider using rg (ripgrep) instead of grep: it is " +
			"significantly faster on large trees and respects .gitignore " +
			"by default (e.g. `rg pattern` instead of `grep -r pattern .`)."
	default:
		return ""
	}
}

func available(binary string) bool {
	_, err := lookPath(binary)
	return err == nil
}
