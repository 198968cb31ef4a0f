package proc

import (
	"os"
	"os/exec"

	"xwayback/internal/domain"
)

// Runner spawns the session's child processes.
type Runner struct {
	logger domain.Logger
}

// NewRunner creates a process runner.
func NewRunner(logger domain.Logger) *Runner {
	return &Runner{logger: logger}
}

// Start launches path with args. The extra files are appended after
// stderr, so extra[0] becomes descriptor 3 in the child, extra[1]
// descriptor 4, and so on. A nil env inherits the launcher's
// environment. The child shares the launcher's stdio.
func (r *Runner) Start(path string, args []string, env []string, extra []*os.File) (wait func() int, signal func(os.Signal) error, err error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	cmd.ExtraFiles = extra
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return nil, nil, domain.Errorf(domain.Resource, "failed to launch %s: %w", path, err)
	}
	r.logger.Debug("process started", "path", path, "pid", cmd.Process.Pid)

	wait = func() int {
		if err := cmd.Wait(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				return exitErr.ExitCode()
			}
			r.logger.Error("wait failed", "path", path, "err", err)
			return 1
		}
		return 0
	}
	signal = func(sig os.Signal) error {
		return cmd.Process.Signal(sig)
	}
	return wait, signal, nil
}

var _ domain.ProcessRunner = (*Runner)(nil)
