package update

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdtdops/sdtdctl/pkg/config"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
)

const testAppInfo = `"294420"
{
	"branches"
	{
		"public"
		{
			"buildid"		"14150420"
		}
	}
}
`

const testManifest = `"AppState"
{
	"appid"		"294420"
	"buildid"		"14150420"
}
`

const testSettingsDoc = `<?xml version="1.0"?>
<ServerSettings>
	<property name="ServerName" value="Default"/>
	<property name="TelnetEnabled" value="false"/>
	<property name="TelnetPort" value="25003"/>
</ServerSettings>
`

const testAdminDoc = `<?xml version="1.0"?>
<adminTools>
	<users>
		<user platform="Steam" userid="76561198000000001" permission_level="0"/>
	</users>
</adminTools>
`

// fakeRunner satisfies steamcmd.Runner without shelling out. An app
// update writes the manifest the way SteamCMD would.
type fakeRunner struct {
	installPath string
	appInfo     string
	appInfoErr  error
	updateCalls int
}

func (f *fakeRunner) Run(_ context.Context, args ...string) error {
	if !strings.Contains(strings.Join(args, " "), "+app_update") {
		return nil
	}

	f.updateCalls++

	manifestDir := filepath.Join(f.installPath, "steamapps")
	if err := os.MkdirAll(manifestDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(manifestDir, "appmanifest_294420.acf"), []byte(testManifest), 0644)
}

func (f *fakeRunner) Output(_ context.Context, _ ...string) (string, error) {
	return f.appInfo, f.appInfoErr
}

func testConfig(installPath string) config.Config {
	return config.Config{
		InstallPath: installPath,
		Settings:    map[string]string{"ServerName": "Test Server"},
	}
}

func TestRun_freshInstall(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{installPath: dir, appInfo: testAppInfo}

	err := run(context.Background(), testConfig(dir), r)

	require.NoError(t, err)
	assert.Equal(t, 1, r.updateCalls)
	assert.FileExists(t, filepath.Join(dir, "steamapps", "appmanifest_294420.acf"))
}

func TestRun_upToDateSkipsUpdate(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{installPath: dir, appInfo: testAppInfo}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "steamapps"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "steamapps", "appmanifest_294420.acf"),
		[]byte(testManifest),
		0644,
	))
	settingsPath := filepath.Join(dir, sdtd.ServerConfigFileName)
	require.NoError(t, os.WriteFile(settingsPath, []byte(testSettingsDoc), 0644))

	err := run(context.Background(), testConfig(dir), r)

	require.NoError(t, err)
	assert.Equal(t, 0, r.updateCalls)

	// Documents are still synced when the fetch is skipped.
	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="ServerName" value="Test Server"`)
	assert.Contains(t, string(data), `name="TelnetEnabled" value="true"`)
}

func TestRun_queryFailureForcesUpdate(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{installPath: dir, appInfoErr: assert.AnError}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "steamapps"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "steamapps", "appmanifest_294420.acf"),
		[]byte(testManifest),
		0644,
	))

	err := run(context.Background(), testConfig(dir), r)

	require.NoError(t, err)
	assert.Equal(t, 1, r.updateCalls)
}

func TestRun_adminSync(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRunner{installPath: dir, appInfo: testAppInfo}

	adminPath := filepath.Join(dir, sdtd.AdminConfigFileName)
	require.NoError(t, os.WriteFile(adminPath, []byte(testAdminDoc), 0644))

	cfg := testConfig(dir)
	cfg.Admins = "76561198000000001 76561198000000002"

	err := run(context.Background(), cfg, r)

	require.NoError(t, err)

	data, err := os.ReadFile(adminPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<user "))
	assert.Contains(t, string(data), `userid="76561198000000002"`)
}
