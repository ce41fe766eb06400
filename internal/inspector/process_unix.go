//go:build !windows

package inspector

import (
	"os/exec"
	"syscall"
)

// setProcAttr makes the child a session leader, so npx and the Inspector
// process it spawns form one process group that can be killed together.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// killProcessGroup signals the child's whole process group. ESRCH means the
// group is already gone, which is not a failure.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		return err
	}
	return nil
}
