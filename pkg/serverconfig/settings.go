// Package serverconfig synchronizes deployment configuration into the
// XML documents owned by the game server. Both documents are created by
// the server on first launch; synchronization against a missing
// document is skipped, not failed.
package serverconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/sdtdops/sdtdctl/pkg/utils"
)

var ErrDocumentNotFound = errors.New("document not found")

// Settings forced on every run regardless of the resolved
// configuration. Remote administration over telnet must stay reachable
// even when an override disables it.
var forcedSettings = map[string]string{
	"TelnetEnabled": "true",
	"TelnetPort":    "8081",
}

// SyncSettings applies the resolved settings to the serverconfig.xml
// document at path. Application is atomic: every edit is staged on the
// parsed document and the file is rewritten once, only when all
// properties resolved and at least one value changed. Unknown property
// names are aggregated into a single error and nothing is written.
func SyncSettings(path string, settings map[string]string) error {
	if !utils.IsFileExists(path) {
		return ErrDocumentNotFound
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return errors.WithMessagef(err, "failed to parse %s", path)
	}

	merged := make(map[string]string, len(settings)+len(forcedSettings))
	for name, value := range settings {
		merged[name] = value
	}
	for name, value := range forcedSettings {
		merged[name] = value
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs error
	changed := 0

	for _, name := range names {
		prop := doc.FindElement(fmt.Sprintf("//property[@name='%s']", name))
		if prop == nil {
			errs = multierr.Append(errs, errors.Errorf("property %q not found in %s", name, path))

			continue
		}

		if prop.SelectAttrValue("value", "") == merged[name] {
			continue
		}

		prop.CreateAttr("value", merged[name])
		changed++
	}

	if errs != nil {
		return errs
	}

	if changed == 0 {
		return nil
	}

	if err := utils.Copy(path, path+".bak"); err != nil {
		return errors.WithMessage(err, "failed to back up settings document")
	}

	return writeDocument(doc, path)
}

// writeDocument persists doc via a temp file and rename so a failed
// write never leaves a truncated document behind.
func writeDocument(doc *etree.Document, path string) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return errors.WithMessage(err, "failed to create temp file")
	}

	if _, err = doc.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return errors.WithMessage(err, "failed to write document")
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return errors.WithMessage(err, "failed to close temp file")
	}

	if err = os.Chmod(tmp.Name(), mode); err != nil {
		_ = os.Remove(tmp.Name())

		return errors.WithMessage(err, "failed to chmod temp file")
	}

	return os.Rename(tmp.Name(), path)
}
