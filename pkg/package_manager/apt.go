package packagemanager

import (
	"context"
	"log"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

type apt struct{}

// CheckForUpdates runs an apt update to retrieve new packages available
// from the repositories.
func (apt *apt) CheckForUpdates(_ context.Context) error {
	cmd := exec.Command("apt-get", "update", "-q")

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "DEBIAN_FRONTEND=noninteractive")

	log.Println('\n', cmd.String())
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()

	return cmd.Run()
}

// Install installs a set of packages.
func (apt *apt) Install(_ context.Context, packs ...string) error {
	return apt.run("install", packs)
}

// Remove removes a set of packages.
func (apt *apt) Remove(_ context.Context, packs ...string) error {
	return apt.run("remove", packs)
}

func (apt *apt) run(subcommand string, packs []string) error {
	args := []string{subcommand, "-y"}
	for _, pack := range packs {
		if pack == "" || pack == " " {
			continue
		}
		args = append(args, pack)
	}
	cmd := exec.Command("apt-get", args...)

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "DEBIAN_FRONTEND=noninteractive")

	log.Println('\n', cmd.String())
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()

	return cmd.Run()
}

// multiarchAPT enables the i386 dpkg architecture before installing.
// SteamCMD and the 32-bit runtime libraries it needs are not installable
// on amd64 hosts until multiarch is enabled.
type multiarchAPT struct {
	apt *apt
}

func newMultiarchAPT(apt *apt) *multiarchAPT {
	return &multiarchAPT{apt: apt}
}

func (m *multiarchAPT) Install(ctx context.Context, packs ...string) error {
	cmd := exec.Command("dpkg", "--add-architecture", "i386")
	log.Println('\n', cmd.String())
	cmd.Stderr = log.Writer()
	cmd.Stdout = log.Writer()

	if err := cmd.Run(); err != nil {
		return errors.WithMessage(err, "failed to enable i386 architecture")
	}

	if err := m.apt.CheckForUpdates(ctx); err != nil {
		return errors.WithMessage(err, "failed to update package lists")
	}

	return m.apt.Install(ctx, packs...)
}

func (m *multiarchAPT) CheckForUpdates(ctx context.Context) error {
	return m.apt.CheckForUpdates(ctx)
}

func (m *multiarchAPT) Remove(ctx context.Context, packs ...string) error {
	return m.apt.Remove(ctx, packs...)
}
