package apps

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Launcher starts an application by executable path.
type Launcher interface {
	Launch(path string) (pid int, err error)
}

// ExecLauncher starts applications as child processes and reaps them in the
// background.
type ExecLauncher struct {
	Logger *zap.Logger
}

func (l *ExecLauncher) Launch(path string) (int, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", path, err)
	}
	pid := cmd.Process.Pid

	go func() {
		err := cmd.Wait()
		log.Debug("app exited", zap.String("path", path), zap.Int("pid", pid), zap.Error(err))
	}()

	return pid, nil
}
