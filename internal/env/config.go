package env

var Config struct {
	Region         string
	Profile        string
	OperationsFile string
}

type VersionInfo struct {
	BuildVersion string
	Commit       string
}

// Set at link time with -ldflags "-X awsdeleter/internal/env.BuildVersion=...".
var BuildVersion string
var Commit string
