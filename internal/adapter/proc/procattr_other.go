//go:build !linux

package proc

import "syscall"

// sysProcAttr returns process attributes that put the child in its own
// process group. Pdeathsig is unavailable off Linux.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
