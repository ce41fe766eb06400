//go:build windows

package inspector

import (
	"os/exec"
	"syscall"
)

// setProcAttr puts the child in its own process group. Windows has no Unix
// sessions; CREATE_NEW_PROCESS_GROUP is the closest analogue.
func setProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

// killProcessGroup kills the direct child. Grandchildren spawned by npx are
// not tracked individually on Windows.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && err.Error() != "os: process already finished" {
		return err
	}
	return nil
}
