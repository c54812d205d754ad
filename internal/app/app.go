package app

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/internal/actions/configinit"
	"github.com/sdtdops/sdtdctl/internal/actions/configshow"
	"github.com/sdtdops/sdtdctl/internal/actions/selfupdate"
	"github.com/sdtdops/sdtdctl/internal/actions/server/logs"
	"github.com/sdtdops/sdtdctl/internal/actions/server/restart"
	"github.com/sdtdops/sdtdctl/internal/actions/server/start"
	"github.com/sdtdops/sdtdctl/internal/actions/server/status"
	"github.com/sdtdops/sdtdctl/internal/actions/server/stop"
	"github.com/sdtdops/sdtdctl/internal/actions/serviceinstall"
	"github.com/sdtdops/sdtdctl/internal/actions/update"
	contextInternal "github.com/sdtdops/sdtdctl/internal/context"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

//nolint:funlen
func Run(args []string) {
	if _, err := os.Stat(sdtd.DefaultLogPath); errors.Is(err, fs.ErrNotExist) {
		err := os.MkdirAll(sdtd.DefaultLogPath, 0755)
		if err != nil {
			log.Fatalf("Error creating log directory: %s", err)
		}
	}
	logname := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02_15-04-05"))
	logFile, err := os.OpenFile(sdtd.DefaultLogPath+"/"+logname, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	log.SetOutput(logFile)

	app := &cli.App{
		Name:    "sdtdctl",
		Usage:   "7 Days to Die dedicated server control",
		Version: sdtd.Version,
		Before: func(context *cli.Context) error {
			var err error
			context.Context, err = contextInternal.SetOSContext(context.Context)
			if err != nil {
				return err
			}

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "non-interactive",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:        "update",
				Aliases:     []string{"u"},
				Description: "Install or update the server and synchronize its configuration",
				Usage:       "Install or update the server and synchronize its configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: sdtd.DefaultConfigFilePath,
					},
				},
				Action: update.Handle,
			},
			{
				Name:        "config",
				Description: "Deployment configuration actions",
				Usage:       "Deployment configuration actions",
				Subcommands: []*cli.Command{
					{
						Name:        "init",
						Description: "Write a starter override config",
						Usage:       "Write a starter override config",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "config",
								Value: sdtd.DefaultConfigFilePath,
							},
						},
						Action: configinit.Handle,
					},
					{
						Name:        "show",
						Description: "Print the resolved configuration",
						Usage:       "Print the resolved configuration",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "config",
								Value: sdtd.DefaultConfigFilePath,
							},
						},
						Action: configshow.Handle,
					},
				},
			},
			{
				Name:        "service",
				Description: "Service manager binding actions",
				Usage:       "Service manager binding actions",
				Subcommands: []*cli.Command{
					{
						Name:        "install",
						Aliases:     []string{"i"},
						Description: "Install and enable the systemd unit",
						Usage:       "Install and enable the systemd unit",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "config",
								Value: sdtd.DefaultConfigFilePath,
							},
						},
						Action: serviceinstall.Handle,
					},
				},
			},
			{
				Name:        "server",
				Aliases:     []string{"s"},
				Description: "Server lifecycle actions",
				Usage:       "Server lifecycle actions",
				Subcommands: []*cli.Command{
					{
						Name:        "start",
						Description: "Start the server",
						Usage:       "Start the server",
						Action:      start.Handle,
					},
					{
						Name:        "stop",
						Description: "Stop the server",
						Usage:       "Stop the server",
						Action:      stop.Handle,
					},
					{
						Name:        "restart",
						Aliases:     []string{"r"},
						Description: "Restart the server",
						Usage:       "Restart the server",
						Action:      restart.Handle,
					},
					{
						Name:        "status",
						Description: "Show service and process status",
						Usage:       "Show service and process status",
						Action:      status.Handle,
					},
					{
						Name:        "logs",
						Description: "Show server logs",
						Usage:       "Show server logs",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "follow",
								Aliases: []string{"f"},
							},
						},
						Action: logs.Handle,
					},
				},
			},
			{
				Name:        "self-update",
				Description: "Update sdtdctl to the latest release",
				Usage:       "Update sdtdctl to the latest release",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: "force",
					},
				},
				Action: selfupdate.Handle,
			},
		},
	}

	err = app.Run(args)
	if err != nil {
		utils.Error(err)
		fmt.Println("See details in log file: " + sdtd.DefaultLogPath + "/" + logname)
		os.Exit(1)
	}
}
