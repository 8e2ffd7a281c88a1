package kitty

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/kittyfont/kittyfont/internal/logging"
)

// processName is the executable name kitty runs under.
const processName = "kitty"

// Reloader implements port.ConfigReloader by delivering SIGUSR1 to every
// running kitty process. Kitty re-reads kitty.conf on that signal.
type Reloader struct{}

// NewReloader creates a new kitty config reloader.
func NewReloader() *Reloader {
	return &Reloader{}
}

// IsAvailable returns true if the pgrep command is available on the system.
func (*Reloader) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("pgrep")
	return err == nil
}

// Reload implements port.ConfigReloader. No running kitty process is a
// successful no-op.
func (r *Reloader) Reload(ctx context.Context) error {
	log := logging.FromContext(ctx)

	pids, err := findPids(ctx)
	if err != nil {
		return err
	}
	if len(pids) == 0 {
		log.Debug().Msg("no running kitty process, skipping reload signal")
		return nil
	}

	var errs []error
	for _, pid := range pids {
		if err := unix.Kill(pid, unix.SIGUSR1); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug().Int("pid", pid).Msg("sent reload signal to kitty")
	}
	return errors.Join(errs...)
}

// findPids looks up running kitty process ids. A pgrep exit status of 1
// means no process matched, which is not an error.
func findPids(ctx context.Context) ([]int, error) {
	cmd := exec.CommandContext(ctx, "pgrep", "-x", processName)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, err
	}

	var pids []int
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pid, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}
