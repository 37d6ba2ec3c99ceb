// ABOUTME: Tests for the stop-momentum handshake cycle
// ABOUTME: Loop guard, token issuance, supersession on repeat denies, acknowledgment

package momentum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/state"
)

func stopEvent(session, lastMsg string) hookio.Event {
	return hookio.Event{
		SessionID:            session,
		HookEventName:        "Stop",
		LastAssistantMessage: lastMsg,
	}
}

func pendingToken(t *testing.T, session string) string {
	t.Helper()
	s := state.Load(session, Hook, State{})
	if s.AckToken == "" {
		t.Fatal("expected a pending ack token")
	}
	return s.AckToken
}

func TestLoopGuardAllows(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	ev := stopEvent("sess-1", "")
	ev.StopHookActive = true
	if d := Handle(ev); d.Action != hookio.ActionAllow {
		t.Errorf("stop_hook_active: action = %v, want allow", d.Action)
	}
}

func TestFirstStopBlocksWithToken(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	d := Handle(stopEvent("sess-1", "I think I'm done here."))
	if d.Action != hookio.ActionDeny {
		t.Fatalf("action = %v, want deny", d.Action)
	}

	token := pendingToken(t, "sess-1")
	if !strings.HasPrefix(token, "ACK-") || len(token) != 8 {
		t.Errorf("token = %q, want ACK- plus 4 chars", token)
	}
	if !strings.Contains(d.Text, token) {
		t.Errorf("deny reason must include the token, got %q", d.Text)
	}
}

func TestRepeatDenySupersedesToken(t *testing.T) {
	// Source behavior preserved: each blocked stop issues a fresh token
	// and only the latest persisted one is valid.
	t.Setenv(config.EnvStateDir, t.TempDir())

	Handle(stopEvent("sess-1", ""))
	first := pendingToken(t, "sess-1")

	d := Handle(stopEvent("sess-1", "still no ack"))
	if d.Action != hookio.ActionDeny {
		t.Fatalf("second stop: action = %v, want deny", d.Action)
	}
	second := pendingToken(t, "sess-1")
	if second == first {
		t.Fatal("second deny must regenerate the token")
	}

	// The stale token no longer acknowledges.
	if d := Handle(stopEvent("sess-1", "confirming with "+first)); d.Action != hookio.ActionDeny {
		t.Errorf("stale token: action = %v, want deny", d.Action)
	}
	// The latest one pending after that deny does.
	latest := pendingToken(t, "sess-1")
	if d := Handle(stopEvent("sess-1", "confirming with "+latest)); d.Action != hookio.ActionAllow {
		t.Errorf("latest token: action = %v, want allow", d.Action)
	}
}

func TestAcknowledgmentClearsState(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	Handle(stopEvent("sess-1", ""))
	token := pendingToken(t, "sess-1")

	if d := Handle(stopEvent("sess-1", "Deliberate stop. "+token)); d.Action != hookio.ActionAllow {
		t.Fatalf("ack: action = %v, want allow", d.Action)
	}
	if s := state.Load("sess-1", Hook, State{}); s.AckToken != "" {
		t.Errorf("token should be cleared after acknowledgment, got %q", s.AckToken)
	}

	// The next stop restarts the cycle with a fresh token.
	d := Handle(stopEvent("sess-1", ""))
	if d.Action != hookio.ActionDeny {
		t.Fatalf("restart: action = %v, want deny", d.Action)
	}
	if next := pendingToken(t, "sess-1"); next == token {
		t.Error("restarted cycle must not reuse the acknowledged token")
	}
}

func TestTokenIsolationAcrossSessions(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	Handle(stopEvent("sess-a", ""))
	tokenA := pendingToken(t, "sess-a")

	// Session b presenting session a's token still blocks.
	if d := Handle(stopEvent("sess-b", "ack "+tokenA)); d.Action != hookio.ActionDeny {
		t.Errorf("cross-session token: action = %v, want deny", d.Action)
	}
}

func TestGuidanceOverride(t *testing.T) {
	t.Setenv(config.EnvStateDir, t.TempDir())

	proj := t.TempDir()
	if err := os.MkdirAll(filepath.Join(proj, ".claude"), 0o755); err != nil {
		t.Fatal(err)
	}
	custom := "Project rule: finish the checklist before stopping."
	if err := os.WriteFile(filepath.Join(proj, ".claude", "momentum-guide.md"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := stopEvent("sess-1", "")
	ev.Cwd = proj
	d := Handle(ev)
	if d.Action != hookio.ActionDeny {
		t.Fatalf("action = %v, want deny", d.Action)
	}
	if !strings.Contains(d.Text, custom) {
		t.Errorf("deny reason should use the override guidance, got %q", d.Text)
	}
	if !strings.Contains(d.Text, "include ACK-") {
		t.Errorf("token instruction must follow the override body, got %q", d.Text)
	}
}

func TestNewTokenShape(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		tok := NewToken()
		if !strings.HasPrefix(tok, "ACK-") || len(tok) != 8 {
			t.Fatalf("token = %q, want ACK-XXXX", tok)
		}
		seen[tok] = true
	}
	if len(seen) < 2 {
		t.Error("tokens should vary between calls")
	}
}
