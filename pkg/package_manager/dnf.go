package packagemanager

import (
	"context"
	"log"
	"os/exec"

	"github.com/pkg/errors"
)

type dnf struct{}

// CheckForUpdates refreshes the dnf metadata cache.
func (dnf *dnf) CheckForUpdates(_ context.Context) error {
	cmd := exec.Command("dnf", "makecache", "--refresh")

	log.Println('\n', cmd.String())
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()

	return cmd.Run()
}

func (dnf *dnf) Install(_ context.Context, packs ...string) error {
	return dnf.run("install", packs)
}

func (dnf *dnf) Remove(_ context.Context, packs ...string) error {
	return dnf.run("remove", packs)
}

func (dnf *dnf) run(subcommand string, packs []string) error {
	args := []string{subcommand, "-y"}
	for _, pack := range packs {
		if pack == "" || pack == " " {
			continue
		}
		args = append(args, pack)
	}
	cmd := exec.Command("dnf", args...)

	log.Println('\n', cmd.String())
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()

	err := cmd.Run()
	if err != nil {
		return errors.WithMessagef(err, "dnf %s failed", subcommand)
	}

	return nil
}
