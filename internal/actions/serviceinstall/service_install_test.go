package serviceinstall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdtdops/sdtdctl/pkg/config"
)

func Test_renderUnit(t *testing.T) {
	cfg := config.Config{
		InstallPath: "/opt/sdtd/server",
		ExtraArgs:   `-crashreport "full"`,
	}

	unit, err := renderUnit(cfg, "/usr/local/bin/sdtdctl", "/etc/sdtdctl/config.yaml")

	require.NoError(t, err)
	assert.Contains(t, unit, "WorkingDirectory=/opt/sdtd/server")
	assert.Contains(t, unit, "ExecStartPre=/usr/local/bin/sdtdctl --non-interactive update --config /etc/sdtdctl/config.yaml")
	assert.Contains(t, unit, "ExecStart=/opt/sdtd/server/7DaysToDieServer.x86_64 -configfile=serverconfig.xml")
	assert.Contains(t, unit, "-crashreport full")
	assert.Contains(t, unit, "Restart=on-failure")
	assert.Contains(t, unit, "TimeoutStartSec=300")
	assert.Contains(t, unit, "TimeoutStopSec=120")
}

func Test_renderUnit_badExtraArgs(t *testing.T) {
	cfg := config.Config{
		InstallPath: "/opt/sdtd/server",
		ExtraArgs:   `"unterminated`,
	}

	_, err := renderUnit(cfg, "/usr/local/bin/sdtdctl", "/etc/sdtdctl/config.yaml")

	assert.Error(t, err)
}
