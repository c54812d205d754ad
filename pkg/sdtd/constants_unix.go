//go:build linux || darwin

package sdtd

// Server.

const DefaultInstallPath = "/opt/sdtd/server"
const DefaultServerBinary = "7DaysToDieServer.x86_64"
const DefaultStartScript = "startserver.sh"
const ServerConfigFileName = "serverconfig.xml"
const AdminConfigFileName = "serveradmin.xml"

// Steam.

const SteamAppID = "294420"
const DefaultSteamCMDPath = "/opt/steamcmd"
const SteamCMDTarballURL = "https://steamcdn-a.akamaihd.net/client/installer/steamcmd_linux.tar.gz"

// Host.

const DefaultConfigFilePath = "/etc/sdtdctl/config.yaml"
const DefaultLogPath = "/var/log/sdtdctl"
const ServiceName = "sdtd-server"
const DefaultUnitFilePath = "/etc/systemd/system/sdtd-server.service"
