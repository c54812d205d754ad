package packagemanager

import (
	"context"

	contextInternal "github.com/sdtdops/sdtdctl/internal/context"
)

// Package names used by the SteamCMD install strategies.
const (
	SteamCMDPackage   = "steamcmd"
	Lib32GCCPackage   = "lib32gcc-s1"
	Lib32Stdc6Package = "lib32stdc++6"
)

const (
	DistributionDebian = "debian"
	DistributionUbuntu = "ubuntu"
	DistributionCentOS = "centos"
	DistributionFedora = "fedora"
	DistributionRocky  = "rocky"
)

type PackageManager interface {
	Install(ctx context.Context, packs ...string) error
	CheckForUpdates(ctx context.Context) error
	Remove(ctx context.Context, packs ...string) error
}

//nolint:ireturn,nolintlint
func Load(ctx context.Context) (PackageManager, error) {
	osInfo := contextInternal.OSInfoFromContext(ctx)

	switch osInfo.Distribution {
	case DistributionDebian, DistributionUbuntu:
		// SteamCMD needs the i386 architecture enabled; try plain apt
		// first and fall back to enabling multiarch.
		return newFallbackPackageManager(&apt{}, newMultiarchAPT(&apt{})), nil
	case DistributionCentOS, DistributionFedora, DistributionRocky:
		return &dnf{}, nil
	}

	return nil, NewErrUnsupportedDistribution(osInfo.Distribution)
}
