package context

import (
	"context"

	osinfo "github.com/sdtdops/sdtdctl/pkg/os_info"
)

type contextKey int

const (
	osInfoKey contextKey = iota
)

func OSInfoFromContext(ctx context.Context) osinfo.Info {
	info, _ := ctx.Value(osInfoKey).(osinfo.Info)

	return info
}

func SetOSContext(ctx context.Context) (context.Context, error) {
	info, err := osinfo.GetOSInfo()
	if err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, osInfoKey, info), nil
}
