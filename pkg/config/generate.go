package config

import (
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sethvargo/go-password/password"
)

var telnetPasswordGenerator = lo.Must(password.NewGenerator(&password.GeneratorInput{
	Symbols: "",
}))

const telnetPasswordLength = 16

// GenerateTelnetPassword produces a random password for the server's
// telnet administration interface.
func GenerateTelnetPassword() (string, error) {
	pass, err := telnetPasswordGenerator.Generate(telnetPasswordLength, 0, 0, false, false)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate password")
	}

	return pass, nil
}

// Starter renders a starter override file with a generated telnet
// password, suitable for writing to the default config path on first
// setup.
func Starter() ([]byte, error) {
	pass, err := GenerateTelnetPassword()
	if err != nil {
		return nil, err
	}

	o := overrideFile{
		InstallPath:  "",
		SteamCMDPath: "",
		Admins:       "",
		ExtraArgs:    "",
		Settings: map[string]string{
			"ServerName":     "sdtdctl Server",
			"TelnetPassword": pass,
		},
	}

	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}

	return data, nil
}
