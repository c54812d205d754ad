package steamcmd

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var buildIDRe = regexp.MustCompile(`"buildid"\s+"(\d+)"`)

// InstalledBuild reads the build identifier from the app manifest
// SteamCMD writes after an install. A missing manifest yields an empty
// identifier, which the gate treats as "update required".
func InstalledBuild(installPath string, appID string) (string, error) {
	manifestPath := filepath.Join(installPath, "steamapps", "appmanifest_"+appID+".acf")

	data, err := os.ReadFile(manifestPath)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.WithMessagef(err, "failed to read manifest %s", manifestPath)
	}

	id := parseBuildID(string(data))
	if id == "" {
		log.Printf("no buildid field in manifest %s\n", manifestPath)
	}

	return id, nil
}

// LatestBuild queries SteamCMD for the latest available build of appID
// on the public branch.
func LatestBuild(ctx context.Context, r Runner, appID string) (string, error) {
	out, err := r.Output(ctx,
		"+login", "anonymous",
		"+app_info_update", "1",
		"+app_info_print", appID,
		"+quit",
	)
	if err != nil {
		return "", errors.WithMessage(err, "app info query failed")
	}

	id := parsePublicBuildID(out)
	if id == "" {
		return "", errors.New("no buildid in app info output")
	}

	return id, nil
}

// NeedsUpdate reports whether a fetch is required. Only two known and
// equal identifiers allow the update to be skipped; anything unknown
// resolves to the safe default.
func NeedsUpdate(installed string, latest string) bool {
	if installed == "" || latest == "" {
		return true
	}

	return installed != latest
}

// parsePublicBuildID extracts the public branch buildid from app_info
// output, falling back to the first buildid anywhere in the block.
func parsePublicBuildID(out string) string {
	if i := strings.Index(out, `"public"`); i >= 0 {
		if id := parseBuildID(out[i:]); id != "" {
			return id
		}
	}

	return parseBuildID(out)
}

func parseBuildID(s string) string {
	matches := buildIDRe.FindStringSubmatch(s)
	if len(matches) != 2 {
		return ""
	}

	return matches[1]
}
