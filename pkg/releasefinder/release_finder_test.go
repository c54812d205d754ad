package releasefinder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releasesJSON = `[
	{
		"tag_name": "v0.3.0",
		"assets": [
			{"name": "sdtdctl-linux-amd64", "browser_download_url": "https://example.com/v0.3.0/sdtdctl-linux-amd64"},
			{"name": "sdtdctl-linux-arm64", "browser_download_url": "https://example.com/v0.3.0/sdtdctl-linux-arm64"}
		]
	},
	{
		"tag_name": "v0.2.0",
		"assets": [
			{"name": "sdtdctl-linux-amd64", "browser_download_url": "https://example.com/v0.2.0/sdtdctl-linux-amd64"}
		]
	}
]`

func Test_findRelease(t *testing.T) {
	r, err := findRelease(strings.NewReader(releasesJSON), "linux", "amd64")

	require.NoError(t, err)
	assert.Equal(t, "v0.3.0", r.Tag)
	assert.Equal(t, "https://example.com/v0.3.0/sdtdctl-linux-amd64", r.URL)
}

func Test_findRelease_notFound(t *testing.T) {
	_, err := findRelease(strings.NewReader(releasesJSON), "linux", "riscv64")

	var nfe NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "riscv64", nfe.Arch)
}
