//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// sysProcAttr returns nil: Windows has no process groups to detach from and
// the player window lives independently of the console.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// killProcess force-kills the player process. No group semantics on Windows.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
