// Package releasefinder locates downloadable release assets on the
// GitHub releases API.
package releasefinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Release struct {
	URL string
	Tag string
}

type NotFoundError struct {
	OS   string
	Arch string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("failed to find release for %s (arch: %s)", e.OS, e.Arch)
}

type release struct {
	TagName string  `json:"tag_name"` //nolint:tagliatelle
	Assets  []asset `json:"assets"`
}

type asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"` //nolint:tagliatelle
}

// Find returns the newest release asset built for the given OS and
// architecture from the releases API endpoint.
func Find(ctx context.Context, api string, os string, arch string) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to build releases request")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get releases")
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			log.Println(err)
		}
	}(resp.Body)

	return findRelease(resp.Body, os, arch)
}

func findRelease(reader io.Reader, os string, arch string) (*Release, error) {
	var rs []release
	if err := json.NewDecoder(reader).Decode(&rs); err != nil {
		return nil, errors.WithMessage(err, "failed to decode releases")
	}

	for _, r := range rs {
		for _, a := range r.Assets {
			if strings.Contains(a.Name, os+"-"+arch) {
				return &Release{
					URL: a.BrowserDownloadURL,
					Tag: r.TagName,
				}, nil
			}
		}
	}

	return nil, NotFoundError{OS: os, Arch: arch}
}
