package restart

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/service"
)

func Handle(cliCtx *cli.Context) error {
	fmt.Println("Restart server")

	err := service.Restart(cliCtx.Context, sdtd.ServiceName)
	if err != nil {
		return errors.WithMessage(err, "failed to restart server")
	}

	return nil
}
