package app

import "strings"

// Built-in defaults applied after profile merging. Command-line flags
// and profile fields both override these.
const (
	DefaultRequirements = "requirements.txt"
	DefaultDownloadDir  = "./downloaded_packages"
	DefaultZipName      = "app_packages.zip"
)

func valueOrDefault(value string, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
