// Package configinit writes a starter override config with a generated
// telnet password. It refuses to overwrite an existing file so repeated
// runs never rotate credentials behind the operator's back.
package configinit

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/config"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	path := cliCtx.String("config")

	if utils.IsFileExists(path) {
		utils.Warn("Config", path, "already exists, leaving it untouched")

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WithMessage(err, "failed to create config directory")
	}

	starter, err := config.Starter()
	if err != nil {
		return errors.WithMessage(err, "failed to build starter config")
	}

	if err := utils.WriteContentsToFile(starter, path); err != nil {
		return errors.WithMessage(err, "failed to write config")
	}

	utils.Info("Wrote starter config to", path)

	return nil
}
