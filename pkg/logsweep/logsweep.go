// Package logsweep removes aged server log artifacts from the install
// directory.
package logsweep

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// LogFilePattern matches the log files the server writes into its
// working directory.
const LogFilePattern = "output_log_*"

// RetentionPeriod is how long log artifacts are kept. Files strictly
// older are deleted.
const RetentionPeriod = 30 * 24 * time.Hour

// Sweep deletes files in dir matching pattern whose modification time
// is strictly older than olderThan. The scan is non-recursive. A
// missing directory or zero matches is a normal no-op. Returns the
// number of deleted files.
func Sweep(dir string, pattern string, olderThan time.Duration) (int, error) {
	return sweepBefore(dir, pattern, time.Now().Add(-olderThan))
}

func sweepBefore(dir string, pattern string, cutoff time.Time) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0, errors.WithMessage(err, "invalid log file pattern")
	}

	deleted := 0

	for _, path := range matches {
		fi, err := os.Stat(path)
		if err != nil {
			log.Println(errors.WithMessagef(err, "failed to stat %s", path))

			continue
		}
		if fi.IsDir() {
			continue
		}

		if !fi.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(path); err != nil {
			log.Println(errors.WithMessagef(err, "failed to remove %s", path))

			continue
		}

		log.Printf("removed aged log %s\n", path)
		deleted++
	}

	return deleted, nil
}
