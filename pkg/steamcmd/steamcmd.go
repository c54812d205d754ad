// Package steamcmd wraps the SteamCMD command line tool: locating or
// installing the tool itself, querying build identifiers, and running
// app updates into a target directory.
package steamcmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	packagemanager "github.com/sdtdops/sdtdctl/pkg/package_manager"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

var ErrNotInstalled = errors.New("steamcmd could not be located or installed")

// Runner abstracts SteamCMD invocations so workflow logic can be tested
// without shelling out.
type Runner interface {
	Run(ctx context.Context, args ...string) error
	Output(ctx context.Context, args ...string) (string, error)
}

// CLI runs a real steamcmd executable.
type CLI struct {
	execPath string
}

func NewCLI(execPath string) *CLI {
	return &CLI{execPath: execPath}
}

func (c *CLI) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, c.execPath, args...)
	cmd.Stdout = io.MultiWriter(os.Stdout, log.Writer())
	cmd.Stderr = io.MultiWriter(os.Stderr, log.Writer())
	log.Println(cmd.String())

	return cmd.Run()
}

func (c *CLI) Output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.execPath, args...)
	log.Println(cmd.String())

	out, err := cmd.CombinedOutput()

	return string(out), err
}

const symlinkPath = "/usr/local/bin/steamcmd"

// Ensure locates SteamCMD, installing it when absent. Strategies, in
// order: existing command or known path, distribution package, vendor
// tarball. After a fresh install the tool is run once with +quit so it
// materializes its own configuration.
func Ensure(ctx context.Context, pm packagemanager.PackageManager, dir string) (string, error) {
	if path, err := exec.LookPath("steamcmd"); err == nil {
		log.Printf("steamcmd found at %s\n", path)

		return path, nil
	}

	scriptPath := filepath.Join(dir, "steamcmd.sh")
	if utils.IsFileExists(scriptPath) {
		log.Printf("steamcmd found at %s\n", scriptPath)

		return scriptPath, nil
	}

	utils.Info("Installing steamcmd ...")

	err := pm.Install(ctx, packagemanager.SteamCMDPackage, packagemanager.Lib32GCCPackage, packagemanager.Lib32Stdc6Package)
	if err == nil {
		if path, lerr := exec.LookPath("steamcmd"); lerr == nil {
			return path, bootstrap(ctx, path)
		}
	} else {
		utils.Warn("package install failed, falling back to vendor tarball:", err)
	}

	path, err := installFromTarball(ctx, pm, dir)
	if err != nil {
		return "", err
	}

	return path, bootstrap(ctx, path)
}

func installFromTarball(ctx context.Context, pm packagemanager.PackageManager, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WithMessage(err, "failed to create steamcmd directory")
	}

	err := utils.Download(ctx, sdtd.SteamCMDTarballURL, dir)
	if err != nil {
		return "", errors.WithMessage(err, "failed to download steamcmd tarball")
	}

	// The tarball ships 32-bit binaries.
	err = pm.Install(ctx, packagemanager.Lib32GCCPackage, packagemanager.Lib32Stdc6Package)
	if err != nil {
		utils.Warn("failed to install 32-bit libraries:", err)
	}

	scriptPath := filepath.Join(dir, "steamcmd.sh")
	if !utils.IsFileExists(scriptPath) {
		return "", ErrNotInstalled
	}

	if err := os.Chmod(scriptPath, 0755); err != nil {
		return "", errors.WithMessage(err, "failed to make steamcmd.sh executable")
	}

	if err := os.Symlink(scriptPath, symlinkPath); err != nil && !errors.Is(err, os.ErrExist) {
		// The symlink is a convenience; the returned path still works.
		log.Println(errors.WithMessagef(err, "failed to create symlink %s", symlinkPath))
	}

	return scriptPath, nil
}

func bootstrap(ctx context.Context, execPath string) error {
	utils.Info("Bootstrapping steamcmd ...")

	err := NewCLI(execPath).Run(ctx, "+quit")
	if err != nil {
		return errors.WithMessage(err, "failed to bootstrap steamcmd")
	}

	return nil
}
