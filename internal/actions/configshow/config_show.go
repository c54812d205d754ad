// Package configshow prints the fully resolved configuration, useful
// for checking what the update workflow will apply.
package configshow

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/config"
)

func Handle(cliCtx *cli.Context) error {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return errors.WithMessage(err, "failed to load config")
	}

	fmt.Println("Install path: ", cfg.InstallPath)
	fmt.Println("SteamCMD path:", cfg.SteamCMDPath)
	if cfg.Admins != "" {
		fmt.Println("Admins:       ", cfg.AdminIDs())
	}
	if cfg.ExtraArgs != "" {
		fmt.Println("Extra args:   ", cfg.ExtraArgs)
	}

	names := make([]string, 0, len(cfg.Settings))
	for name := range cfg.Settings {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Settings:")
	for _, name := range names {
		fmt.Printf("  %s = %s\n", name, cfg.Settings[name])
	}

	return nil
}
