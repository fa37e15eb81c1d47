package launch

import (
	"errors"
	"os/exec"

	"github.com/lvim-tech/lv2launch/pkg/utils"
)

// Launched describes a started host process.
type Launched struct {
	ID      string
	Command []string
	PID     int
}

// Spawner starts a host process without waiting for it.
type Spawner interface {
	Spawn(argv []string) (*Launched, error)
}

// DetachedSpawner starts processes in their own session with stdio on
// /dev/null. The child is reaped in the background and its exit status is
// dropped.
type DetachedSpawner struct {
	// reaped, when set, receives the Wait result. Used by tests.
	reaped func(cmd *exec.Cmd, err error)
}

// Spawn implements Spawner
func (s DetachedSpawner) Spawn(argv []string) (*Launched, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("empty command")
	}

	cmd, err := utils.StartDetachedProcess(argv[0], argv[1:]...)
	if err != nil {
		return nil, err
	}

	go func() {
		err := cmd.Wait()
		if s.reaped != nil {
			s.reaped(cmd, err)
		}
	}()

	return &Launched{
		Command: append([]string(nil), argv...),
		PID:     cmd.Process.Pid,
	}, nil
}
