package config

import (
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/sdtdops/sdtdctl/pkg/sdtd"
)

// Config is the resolved deployment configuration. It is built once at
// startup and passed explicitly; nothing reads configuration state from
// globals after that.
type Config struct {
	InstallPath  string
	SteamCMDPath string

	// Settings maps serverconfig.xml property names to values.
	Settings map[string]string

	// Admins is a whitespace-separated list of Steam user identifiers.
	Admins string

	// ExtraArgs is appended verbatim to the server start command.
	ExtraArgs string
}

type overrideFile struct {
	InstallPath  string            `yaml:"install_path"`
	SteamCMDPath string            `yaml:"steamcmd_path"`
	Admins       string            `yaml:"admins"`
	ExtraArgs    string            `yaml:"extra_args"`
	Settings     map[string]string `yaml:"settings"`
}

// Defaults is the base settings table. Every property listed here is
// synchronized into serverconfig.xml on each workflow run.
func Defaults() map[string]string {
	return map[string]string{
		"ServerName":           "sdtdctl Server",
		"ServerDescription":    "A 7 Days to Die server managed by sdtdctl",
		"ServerPort":           "26900",
		"ServerVisibility":     "2",
		"ServerPassword":       "",
		"ServerMaxPlayerCount": "8",
		"GameName":             "World1",
		"GameDifficulty":       "2",
		"GameWorld":            "RWG",
		"WorldGenSeed":         "",
		"WorldGenSize":         "6144",
		"DayNightLength":       "60",
		"LootRespawnDays":      "7",
		"AirDropFrequency":     "72",
		"PlayerKillingMode":    "3",
		"EACEnabled":           "true",
		"TelnetPassword":       "",
		"BloodMoonFrequency":   "7",
	}
}

// Resolve merges the base table with an optional override table. A key
// present in the override wins even when its value is empty, so an
// override can clear a base value.
func Resolve(base map[string]string, override map[string]string) map[string]string {
	resolved := make(map[string]string, len(base)+len(override))

	for k, v := range base {
		resolved[k] = v
	}
	for k, v := range override {
		resolved[k] = v
	}

	return resolved
}

// Load builds the resolved configuration from the built-in defaults and
// the override file at path. An absent override file is not an error:
// the configuration degrades to base-only.
func Load(path string) (Config, error) {
	cfg := Config{
		InstallPath:  sdtd.DefaultInstallPath,
		SteamCMDPath: sdtd.DefaultSteamCMDPath,
	}

	var override overrideFile

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("override config %s not found, using defaults\n", path)
	case err != nil:
		return Config{}, errors.WithMessagef(err, "failed to read config %s", path)
	default:
		if err := yaml.Unmarshal(data, &override); err != nil {
			return Config{}, errors.WithMessagef(err, "failed to parse config %s", path)
		}
	}

	cfg.InstallPath = lo.CoalesceOrEmpty(override.InstallPath, cfg.InstallPath)
	cfg.SteamCMDPath = lo.CoalesceOrEmpty(override.SteamCMDPath, cfg.SteamCMDPath)
	cfg.Admins = override.Admins
	cfg.ExtraArgs = override.ExtraArgs
	cfg.Settings = Resolve(Defaults(), override.Settings)

	return cfg, nil
}

// AdminIDs splits the configured admin list into unique identifiers.
// Identifiers are not validated; they are passed through as given.
func (c Config) AdminIDs() []string {
	return lo.Uniq(strings.Fields(c.Admins))
}
