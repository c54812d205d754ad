package steamcmd

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appInfoOutput = `"294420"
{
	"common"
	{
		"name"		"7 Days to Die Dedicated Server"
	}
	"depots"
	{
		"branches"
		{
			"public"
			{
				"buildid"		"14150420"
				"timeupdated"		"1714496523"
			}
			"latest_experimental"
			{
				"buildid"		"14198811"
			}
		}
	}
}
`

const appManifest = `"AppState"
{
	"appid"		"294420"
	"name"		"7 Days to Die Dedicated Server"
	"StateFlags"		"4"
	"buildid"		"14150420"
	"LastOwner"		"0"
}
`

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name      string
		installed string
		latest    string
		want      bool
	}{
		{name: "equal", installed: "14150420", latest: "14150420", want: false},
		{name: "unequal", installed: "14150420", latest: "14198811", want: true},
		{name: "installed_empty", installed: "", latest: "14198811", want: true},
		{name: "latest_empty", installed: "14150420", latest: "", want: true},
		{name: "both_empty", installed: "", latest: "", want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NeedsUpdate(test.installed, test.latest))
		})
	}
}

func Test_parsePublicBuildID(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "public_branch",
			out:  appInfoOutput,
			want: "14150420",
		},
		{
			name: "no_public_branch_falls_back_to_first",
			out:  `"branches" { "beta" { "buildid"  "123" } }`,
			want: "123",
		},
		{
			name: "no_buildid",
			out:  "Steam>quit",
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, parsePublicBuildID(test.out))
		})
	}
}

func Test_parsePublicBuildID_fallbackIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	out := `"buildid"  "14150420"  "branches" { "public" { "timeupdated" "1714496523" } }`
	id := parsePublicBuildID(out)

	assert.Equal(t, "14150420", id)
	assert.Empty(t, buf.String())
}

func TestInstalledBuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "steamapps"), 0755))
	manifestPath := filepath.Join(dir, "steamapps", "appmanifest_294420.acf")
	require.NoError(t, os.WriteFile(manifestPath, []byte(appManifest), 0644))

	id, err := InstalledBuild(dir, "294420")

	require.NoError(t, err)
	assert.Equal(t, "14150420", id)
}

func TestInstalledBuild_manifestWithoutBuildID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "steamapps"), 0755))
	manifestPath := filepath.Join(dir, "steamapps", "appmanifest_294420.acf")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`"AppState" {}`), 0644))

	id, err := InstalledBuild(dir, "294420")

	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestInstalledBuild_missingManifest(t *testing.T) {
	id, err := InstalledBuild(t.TempDir(), "294420")

	require.NoError(t, err)
	assert.Equal(t, "", id)
}
