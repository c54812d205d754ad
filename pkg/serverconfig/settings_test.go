package serverconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsDocument = `<?xml version="1.0"?>
<ServerSettings>
	<property name="ServerName" value="My Game Host"/>
	<property name="ServerPort" value="26900"/>
	<property name="ServerMaxPlayerCount" value="8"/>
	<property name="TelnetEnabled" value="false"/>
	<property name="TelnetPort" value="25003"/>
</ServerSettings>
`

func writeSettingsDoc(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "serverconfig.xml")
	require.NoError(t, os.WriteFile(path, []byte(settingsDocument), 0644))

	return path
}

func TestSyncSettings(t *testing.T) {
	path := writeSettingsDoc(t)

	err := SyncSettings(path, map[string]string{
		"ServerName":           "Night Owls",
		"ServerMaxPlayerCount": "16",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `name="ServerName" value="Night Owls"`)
	assert.Contains(t, string(data), `name="ServerMaxPlayerCount" value="16"`)
	assert.Contains(t, string(data), `name="ServerPort" value="26900"`)
}

func TestSyncSettings_forcedTelnetValues(t *testing.T) {
	path := writeSettingsDoc(t)

	err := SyncSettings(path, map[string]string{
		"TelnetEnabled": "false",
		"TelnetPort":    "9999",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `name="TelnetEnabled" value="true"`)
	assert.Contains(t, string(data), `name="TelnetPort" value="8081"`)
}

func TestSyncSettings_idempotent(t *testing.T) {
	path := writeSettingsDoc(t)
	settings := map[string]string{"ServerName": "Night Owls"}

	require.NoError(t, SyncSettings(path, settings))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, SyncSettings(path, settings))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSyncSettings_unknownPropertyIsAtomic(t *testing.T) {
	path := writeSettingsDoc(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = SyncSettings(path, map[string]string{
		"ServerName": "Night Owls",
		"NoSuchProp": "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchProp")

	after, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, before, after)
}

func TestSyncSettings_missingDocumentSkips(t *testing.T) {
	err := SyncSettings(filepath.Join(t.TempDir(), "serverconfig.xml"), map[string]string{"ServerName": "x"})

	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestSyncSettings_backupWrittenOnChange(t *testing.T) {
	path := writeSettingsDoc(t)

	require.NoError(t, SyncSettings(path, map[string]string{"ServerName": "Night Owls"}))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, settingsDocument, string(backup))
}
