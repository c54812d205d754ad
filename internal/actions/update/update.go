// Package update implements the provisioning workflow: resolve the
// deployment configuration, make sure SteamCMD is present, fetch the
// server when a new build is available, and synchronize settings,
// admins, and log retention. The workflow is idempotent and runs as the
// service's pre-start hook.
package update

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/config"
	"github.com/sdtdops/sdtdctl/pkg/lockfile"
	"github.com/sdtdops/sdtdctl/pkg/logsweep"
	packagemanager "github.com/sdtdops/sdtdctl/pkg/package_manager"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/serverconfig"
	"github.com/sdtdops/sdtdctl/pkg/steamcmd"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return errors.WithMessage(err, "failed to load config")
	}

	return Run(ctx, cfg)
}

// Run executes the whole workflow against the real host: package
// manager, SteamCMD, and the documents under the install directory.
func Run(ctx context.Context, cfg config.Config) error {
	lock, err := lockfile.Acquire(cfg.InstallPath)
	if err != nil {
		return errors.WithMessage(err, "failed to lock install directory")
	}
	defer func() {
		if err := lock.Release(); err != nil {
			log.Println(err)
		}
	}()

	pm, err := packagemanager.Load(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to load package manager")
	}

	if err := pm.CheckForUpdates(ctx); err != nil {
		utils.Warn("failed to refresh package lists:", err)
	}

	execPath, err := steamcmd.Ensure(ctx, pm, cfg.SteamCMDPath)
	if err != nil {
		return errors.WithMessage(err, "steamcmd is unavailable")
	}

	return run(ctx, cfg, steamcmd.NewCLI(execPath))
}

// run is the part of the workflow behind the Runner seam: version gate,
// fetch, log sweep, and both document syncs.
func run(ctx context.Context, cfg config.Config, r steamcmd.Runner) error {
	installed, err := steamcmd.InstalledBuild(cfg.InstallPath, sdtd.SteamAppID)
	if err != nil {
		utils.Warn("failed to read installed build:", err)
	}

	latest, err := steamcmd.LatestBuild(ctx, r, sdtd.SteamAppID)
	if err != nil {
		utils.Warn("failed to query latest build, assuming update required:", err)
	}

	if steamcmd.NeedsUpdate(installed, latest) {
		utils.Infof("Updating server (installed build %q, latest %q) ...", installed, latest)

		if err := steamcmd.Update(ctx, r, cfg.InstallPath, sdtd.SteamAppID); err != nil {
			return errors.WithMessage(err, "failed to update server")
		}

		markEntryPointsExecutable(cfg.InstallPath)

		if build, err := steamcmd.InstalledBuild(cfg.InstallPath, sdtd.SteamAppID); err == nil && build != "" {
			utils.Info("Server updated to build", build)
		}
	} else {
		utils.Info("Server build", installed, "is up to date, skipping update")
	}

	deleted, err := logsweep.Sweep(cfg.InstallPath, logsweep.LogFilePattern, logsweep.RetentionPeriod)
	if err != nil {
		utils.Warn("log sweep failed:", err)
	} else if deleted > 0 {
		utils.Infof("Removed %d aged log file(s)", deleted)
	}

	syncAdmins(cfg)
	syncSettings(cfg)

	return nil
}

func syncAdmins(cfg config.Config) {
	ids := cfg.AdminIDs()
	if len(ids) == 0 {
		return
	}

	path := filepath.Join(cfg.InstallPath, sdtd.AdminConfigFileName)

	added, err := serverconfig.SyncAdmins(path, ids)
	switch {
	case errors.Is(err, serverconfig.ErrDocumentNotFound):
		utils.Warn("admin document not found, skipping admin sync (created on first server launch)")
	case err != nil:
		utils.Warn("failed to sync admins:", err)
	case added > 0:
		utils.Infof("Added %d admin(s)", added)
	}
}

func syncSettings(cfg config.Config) {
	path := filepath.Join(cfg.InstallPath, sdtd.ServerConfigFileName)

	err := serverconfig.SyncSettings(path, cfg.Settings)
	switch {
	case errors.Is(err, serverconfig.ErrDocumentNotFound):
		utils.Warn("settings document not found, skipping settings sync (created on first server launch)")
	case err != nil:
		utils.Warn("failed to sync settings:", err)
	}
}

func markEntryPointsExecutable(installPath string) {
	for _, name := range []string{sdtd.DefaultServerBinary, sdtd.DefaultStartScript} {
		path := filepath.Join(installPath, name)
		if !utils.IsFileExists(path) {
			continue
		}

		if err := os.Chmod(path, 0755); err != nil {
			utils.Warn("failed to mark", path, "executable:", err)
		}
	}
}
