// ABOUTME: Tests for the fd/rg advisory and its cooldown interplay
// ABOUTME: Stubs binary lookup so host PATH contents don't affect results

package advisory

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/state"
)

func stubLookPath(t *testing.T, have ...string) {
	t.Helper()
	old := lookPath
	t.Cleanup(func() { lookPath = old })
	set := map[string]bool{}
	for _, b := range have {
		set[b] = true
	}
	lookPath = func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func bashEvent(session, command string) hookio.Event {
	ti, _ := json.Marshal(map[string]string{"command": command})
	return hookio.Event{SessionID: session, ToolName: "Bash", ToolInput: ti}
}

func TestModernTools_SuggestsRg(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "rg")

	d := ModernTools(bashEvent("sess-1", `grep -r "foo" .`))
	if d.Action != hookio.ActionAdvise {
		t.Fatalf("action = %v, want advise", d.Action)
	}
	if !strings.Contains(d.Text, "rg") {
		t.Errorf("text = %q", d.Text)
	}
}

func TestModernTools_SuggestsFd(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "fd")

	d := ModernTools(bashEvent("sess-1", `find . -name "*.py"`))
	if d.Action != hookio.ActionAdvise {
		t.Fatalf("action = %v, want advise", d.Action)
	}
}

func TestModernTools_SilentWhenToolAbsent(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t) // nothing installed

	if d := ModernTools(bashEvent("sess-1", "grep foo bar.txt")); d.Action != hookio.ActionAllow {
		t.Errorf("action = %v, want allow when rg is absent", d.Action)
	}
}

func TestModernTools_IgnoresRgCommands(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "rg")

	if d := ModernTools(bashEvent("sess-1", "rg foo | grep -v bar")); d.Action != hookio.ActionAllow {
		t.Errorf("action = %v, want allow when command already uses rg", d.Action)
	}
}

func TestModernTools_NonBashIsSilent(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "rg", "fd")

	ev := hookio.Event{SessionID: "sess-1", ToolName: "Read"}
	if d := ModernTools(ev); d.Action != hookio.ActionAllow {
		t.Errorf("action = %v, want allow for non-Bash tools", d.Action)
	}
}

func TestModernTools_FirstTriggerIgnoresCooldown(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "rg")

	// A leftover cooldown timestamp without the shown marker must not
	// suppress the first suggestion of the session.
	state.RecordNow("sess-1", Hook)
	if d := ModernTools(bashEvent("sess-1", "grep foo .")); d.Action != hookio.ActionAdvise {
		t.Errorf("action = %v, want advise on first trigger", d.Action)
	}
}

func TestModernTools_CooldownPerSession(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())
	stubLookPath(t, "rg")

	if d := ModernTools(bashEvent("sess-a", "grep foo .")); d.Action != hookio.ActionAdvise {
		t.Fatalf("first call: %v, want advise", d.Action)
	}
	if d := ModernTools(bashEvent("sess-a", "grep foo .")); d.Action != hookio.ActionAllow {
		t.Errorf("second call within cooldown: %v, want allow", d.Action)
	}
	// An unrelated session is not silenced by session a's cooldown.
	if d := ModernTools(bashEvent("sess-b", "grep foo .")); d.Action != hookio.ActionAdvise {
		t.Errorf("other session: %v, want advise", d.Action)
	}
}
