package status

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/sdtdops/sdtdctl/pkg/proc"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/service"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	err := service.Status(ctx, sdtd.ServiceName)
	if errors.Is(err, service.ErrInactiveService) {
		utils.Warn("Service", sdtd.ServiceName, "is inactive")
	} else if err != nil {
		return errors.WithMessage(err, "failed to get service status")
	}

	p, err := proc.FindByName(ctx, sdtd.DefaultServerBinary)
	if err != nil {
		return errors.WithMessage(err, "failed to look up server process")
	}
	if p == nil {
		fmt.Println("Server process is not running")

		return nil
	}

	fmt.Println("Server process PID:", p.Pid)

	if created, err := p.CreateTimeWithContext(ctx); err == nil {
		uptime := time.Since(time.UnixMilli(created)).Round(time.Second)
		fmt.Println("Uptime:", uptime)
	}

	return nil
}
