package env

import "runtime/debug"

func GetBuildVersion() (versionInfo VersionInfo) {
	versionInfo.BuildVersion = BuildVersion
	versionInfo.Commit = Commit

	if versionInfo.BuildVersion == "" {
		versionInfo.BuildVersion = "dev"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			versionInfo.BuildVersion = info.Main.Version
		}
	}
	if versionInfo.Commit == "" {
		versionInfo.Commit = "unknown"
	}
	return
}
