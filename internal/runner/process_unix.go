// ABOUTME: Process-group isolation for wrapped hooks on unix hosts
// ABOUTME: A timed-out hook dies together with everything it spawned

//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// setProcGroup places the child in its own process group. Wrapped hooks
// are often interpreter scripts that fork; a kill aimed only at the
// direct child would leave the real work running past the timeout.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup sends SIGKILL to the child's whole process group. A nil
// Process means the command never started and there is nothing to kill.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
