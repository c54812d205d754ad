//go:build linux || darwin

// Package lockfile serializes workflow runs against a single install
// directory. The update workflow reads and conditionally rewrites the
// manifest and XML documents without any locking of its own, which is
// only safe while runs never overlap.
package lockfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const lockFileName = ".sdtdctl.lock"

type Lock struct {
	f *os.File
}

// Acquire takes an exclusive flock on a lock file inside dir. It blocks
// until the lock is available.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WithMessage(err, "failed to create lock directory")
	}

	f, err := os.OpenFile(filepath.Join(dir, lockFileName), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open lock file")
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()

		return nil, errors.WithMessage(err, "failed to lock install directory")
	}

	return &Lock{f: f}, nil
}

func (l *Lock) Release() error {
	if err := unix.Flock(int(l.f.Fd()), unix.LOCK_UN); err != nil {
		_ = l.f.Close()

		return errors.WithMessage(err, "failed to unlock install directory")
	}

	return l.f.Close()
}
