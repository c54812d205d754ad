package logs

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	args := []string{"-u", sdtd.ServiceName, "--no-pager"}
	if cliCtx.Bool("follow") {
		args = append(args, "-f")
	}

	err := utils.ExecCommand("journalctl", args...)
	if err != nil {
		return errors.WithMessage(err, "failed to read server logs")
	}

	return nil
}
