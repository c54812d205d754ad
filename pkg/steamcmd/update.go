package steamcmd

import (
	"context"

	"github.com/pkg/errors"
)

// Update installs or validates appID into installPath using an
// anonymous login. A non-zero exit is returned to the caller; the
// server must not be started against a partially updated install.
func Update(ctx context.Context, r Runner, installPath string, appID string) error {
	err := r.Run(ctx,
		"+force_install_dir", installPath,
		"+login", "anonymous",
		"+app_update", appID, "validate",
		"+quit",
	)
	if err != nil {
		return errors.WithMessagef(err, "app update failed for app %s", appID)
	}

	return nil
}
