package osinfo

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/matishsiao/goInfo"
	"github.com/pkg/errors"
)

type Info struct {
	Kernel               string
	Distribution         string
	DistributionVersion  string
	DistributionCodename string
	Platform             string
	Hostname             string
	CPUs                 int
}

func (i Info) String() string {
	return fmt.Sprintf(
		"Kernel: %s\nDistribution: %s %s (%s)\nPlatform: %s\nHostname: %s\nCPUs: %d",
		i.Kernel,
		i.Distribution, i.DistributionVersion, i.DistributionCodename,
		i.Platform,
		i.Hostname,
		i.CPUs,
	)
}

func GetOSInfo() (Info, error) {
	gi, err := goInfo.GetInfo()
	if err != nil {
		return Info{}, errors.WithMessage(err, "failed to get host info")
	}

	result := Info{
		Kernel:   gi.Kernel,
		Platform: gi.Platform,
		Hostname: gi.Hostname,
		CPUs:     gi.CPUs,
	}

	if result.Platform == "" || result.Platform == "unknown" {
		result.Platform = runtime.GOARCH
	}

	switch result.Platform {
	case "x86_64":
		result.Platform = "amd64"
	case "i686", "i386":
		result.Platform = "386"
	case "aarch64":
		result.Platform = "arm64"
	}

	if gi.OS != "GNU/Linux" {
		result.Distribution = strings.ToLower(gi.OS)
		result.DistributionVersion = gi.Kernel

		return result, nil
	}

	dist, err := detectLinuxDist()
	if err != nil {
		return result, err
	}
	result.Distribution = dist.name
	result.DistributionVersion = dist.version
	result.DistributionCodename = dist.codename

	return result, nil
}

type distInfo struct {
	name     string
	version  string
	codename string
}

func detectLinuxDist() (distInfo, error) {
	const etcOsRelease = "/etc/os-release"

	data, err := os.ReadFile(etcOsRelease)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return distInfo{}, errors.New("unknown linux distribution: no /etc/os-release")
	}
	if err != nil {
		return distInfo{}, errors.WithMessage(err, "failed to read os-release")
	}

	result := distInfo{
		name:     extractField(data, "ID"),
		version:  extractField(data, "VERSION_ID"),
		codename: extractField(data, "VERSION_CODENAME"),
	}

	if result.name == "" {
		return distInfo{}, errors.New("unknown linux distribution")
	}

	result.name = cleanupValue(result.name)
	result.version = cleanupValue(result.version)
	result.codename = cleanupValue(result.codename)

	return result, nil
}

func cleanupValue(v string) string {
	v = strings.ReplaceAll(v, " ", "")
	v = strings.Trim(v, "\"")

	return strings.ToLower(v)
}

func extractField(data []byte, key string) string {
	regex := regexp.MustCompile(fmt.Sprintf(`(?m)^%s=([^\s]+)`, key))
	matches := regex.FindStringSubmatch(string(data))
	if len(matches) == 2 {
		return matches[1]
	}

	return ""
}
