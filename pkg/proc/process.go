package proc

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// FindByName returns the first process whose executable name matches
// processName, or nil if no such process is running.
func FindByName(ctx context.Context, processName string) (*process.Process, error) {
	processes, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load all processes")
	}

	for _, p := range processes {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		if name == processName {
			return p, nil
		}
	}

	return nil, nil //nolint:nilnil
}
