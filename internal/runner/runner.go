// ABOUTME: Fail-open/fail-closed wrapper around an external hook command
// ABOUTME: Pipes the event to the child's stdin, enforces a timeout, substitutes fallbacks

package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/mauromedda/agent-hooks-go/internal/hookio"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Mode selects the decision substituted when the wrapped hook fails.
type Mode string

const (
	// ModeOpen degrades a failed hook to a non-blocking warning. Use for
	// advisory hooks: a defect there must never block the user's work.
	ModeOpen Mode = "open"
	// ModeClosed degrades a failed hook to a deny. Use for safety-critical
	// hooks: an unknown state is treated as unsafe.
	ModeClosed Mode = "closed"
)

// DefaultTimeout bounds the wrapped hook, independent of the host's own
// hook timeout.
const DefaultTimeout = 10 * time.Second

// Result reports what the wrapper emitted and why.
type Result struct {
	Output   []byte
	FellBack bool
	Cause    string
}

// Run executes argv with input piped to stdin and returns the envelope
// to print. Child success with valid JSON on stdout forwards the child's
// decision; anything else (spawn failure, non-zero exit, timeout,
// garbage output) substitutes the mode's fallback. Run itself never
// returns an error: the wrapper's contract is "some valid JSON, always".
func Run(ctx context.Context, mode Mode, event string, argv []string, input []byte, timeout time.Duration) Result {
	if len(argv) == 0 {
		return fallback(mode, event, "no hook command given")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(input)
	setProcGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return fallback(mode, event, fmt.Sprintf("hook timed out after %v", timeout))
	}
	if runErr != nil {
		log.Debug("runner: %s failed: %v (stderr: %s)", argv[0], runErr, stderr.String())
		return fallback(mode, event, fmt.Sprintf("hook exited with error: %v", runErr))
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		// No output is a valid silent allow.
		return Result{Output: []byte("{}")}
	}
	if !json.Valid(out) {
		return fallback(mode, event, "hook produced invalid JSON")
	}
	return Result{Output: out}
}

// fallback builds the static substitute decision for a failed hook.
func fallback(mode Mode, event, cause string) Result {
	var d hookio.Decision
	if mode == ModeClosed {
		d = hookio.Deny("Hook failed closed: " + cause + ". Treating unknown state as unsafe; the action is blocked.")
	} else {
		d = hookio.Advise("Warning: hook failed open: " + cause + ".")
	}

	out, err := hookio.Marshal(event, d)
	if err != nil {
		out = []byte("{}")
	}
	return Result{Output: out, FellBack: true, Cause: cause}
}
