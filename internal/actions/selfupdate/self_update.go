package selfupdate

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/minio/selfupdate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/mod/semver"

	"github.com/sdtdops/sdtdctl/pkg/releasefinder"
	"github.com/sdtdops/sdtdctl/pkg/sdtd"
	"github.com/sdtdops/sdtdctl/pkg/utils"
)

const releasesAPI = "https://api.github.com/repos/sdtdops/sdtdctl/releases"

func Handle(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	fmt.Println("Checking for new versions ...")

	release, err := findRelease(ctx)
	if err != nil {
		return errors.WithMessage(err, "failed to find release")
	}

	fmt.Println("Latest version is", release.Tag)
	fmt.Println("Your version is", sdtd.Version)

	if isDevelopVersion() && !cliCtx.Bool("force") {
		fmt.Println("You use a development version. Specify the --force flag to update anyway.")

		return nil
	}

	if !isUpdateAvailable(release) {
		fmt.Println("No updates available")

		return nil
	}

	fmt.Println("Update available")
	fmt.Printf("Downloading from %s \n", release.URL)

	f, err := os.CreateTemp("", "sdtdctl")
	if err != nil {
		return errors.WithMessage(err, "failed to create temp file")
	}
	defer func() {
		err := f.Close()
		if err != nil {
			fmt.Println("Failed to close temp file")

			return
		}
		err = os.Remove(f.Name())
		if err != nil {
			fmt.Println("Failed to remove temp file")
		}
	}()

	err = utils.DownloadFile(ctx, release.URL, f.Name())
	if err != nil {
		return errors.WithMessage(err, "failed to download")
	}

	_, err = f.Seek(0, 0)
	if err != nil {
		return errors.WithMessage(err, "failed to seek temp file")
	}

	fmt.Println("Applying ...")

	err = selfupdate.Apply(f, selfupdate.Options{})
	if err != nil {
		return errors.WithMessage(err, "failed to update")
	}

	fmt.Println("Updated successfully")

	return nil
}

func isDevelopVersion() bool {
	return len(sdtd.Version) >= 3 && sdtd.Version[0:3] == "dev"
}

func isUpdateAvailable(release *releasefinder.Release) bool {
	return semver.Compare(release.Tag, sdtd.Version) == +1
}

func findRelease(ctx context.Context) (*releasefinder.Release, error) {
	release, err := releasefinder.Find(ctx, releasesAPI, runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to find release")
	}

	return release, nil
}
