// Package serviceinstall binds the game server to the host service
// manager: it renders a systemd unit with a pre-start hook running the
// update workflow, installs it, and enables the service.
package serviceinstall

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherclass/go-shellquote"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/config"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/service"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return errors.WithMessage(err, "failed to load config")
	}

	selfPath, err := os.Executable()
	if err != nil {
		return errors.WithMessage(err, "failed to locate sdtdctl binary")
	}

	unit, err := renderUnit(cfg, selfPath, cliCtx.String("config"))
	if err != nil {
		return err
	}

	utils.Info("Writing unit file to", sdtd.DefaultUnitFilePath, "...")

	if err := utils.WriteContentsToFile([]byte(unit), sdtd.DefaultUnitFilePath); err != nil {
		return errors.WithMessage(err, "failed to write unit file")
	}

	if err := service.DaemonReload(ctx); err != nil {
		return errors.WithMessage(err, "failed to reload service manager")
	}

	if err := service.Enable(ctx, sdtd.ServiceName); err != nil {
		return errors.WithMessage(err, "failed to enable service")
	}

	utils.Info("Service", sdtd.ServiceName, "installed. Start it with: sdtdctl server start")

	return nil
}

// renderUnit produces the systemd unit. Extra server arguments from the
// configuration are re-quoted so a malformed value fails here instead
// of at service start.
func renderUnit(cfg config.Config, selfPath string, configPath string) (string, error) {
	extraArgs, err := shellquote.Split(cfg.ExtraArgs)
	if err != nil {
		return "", errors.WithMessage(err, "failed to parse extra server arguments")
	}

	serverBinary := filepath.Join(cfg.InstallPath, sdtd.DefaultServerBinary)

	startCmd := fmt.Sprintf(
		"%s -configfile=%s -logfile /dev/stdout -quit -batchmode -nographics -dedicated",
		serverBinary, sdtd.ServerConfigFileName,
	)
	if len(extraArgs) > 0 {
		startCmd += " " + strings.Join(extraArgs, " ")
	}

	return fmt.Sprintf(`[Unit]
Description=7 Days to Die dedicated server
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
WorkingDirectory=%s
ExecStartPre=%s --non-interactive update --config %s
ExecStart=%s
Restart=on-failure
RestartSec=10
TimeoutStartSec=300
TimeoutStopSec=120

[Install]
WantedBy=multi-user.target
`, cfg.InstallPath, selfPath, configPath, startCmd), nil
}
