// FILE: appconf/discovery.go
package appconf

import (
	"os"
	"path/filepath"
	"sort"
)

// Default environment variables that override the programmatic location and
// environments directory.
const (
	LocationEnvVar = "APPCONF_CONFDIR"
	EnvDirEnvVar   = "APPCONF_ENVDIR"
)

// DiscoveryOptions configures config file discovery for an application
// location and environment.
type DiscoveryOptions struct {
	// Location is the configuration root directory. Empty means the
	// application runs without config files, which is valid.
	Location string

	// Environment selects the environment-specific config file,
	// e.g. "development" looks for <EnvDir>/development.<ext>.
	Environment string

	// EnvDir is the directory holding per-environment config files.
	// Defaults to <Location>/environments.
	EnvDir string

	// Extensions to consider. Defaults to the loader's supported set.
	Extensions []string

	// LocationEnvVar and EnvDirEnvVar name environment variables that
	// override Location and EnvDir respectively. Set to "-" to disable.
	LocationEnvVar string
	EnvDirEnvVar   string
}

// DefaultDiscoveryOptions returns discovery options for the given location
// and environment with the standard override variables enabled.
func DefaultDiscoveryOptions(location, environment string) DiscoveryOptions {
	return DiscoveryOptions{
		Location:       location,
		Environment:    environment,
		LocationEnvVar: LocationEnvVar,
		EnvDirEnvVar:   EnvDirEnvVar,
	}
}

// location returns the effective config root after env var overrides.
func (o DiscoveryOptions) location() string {
	if o.LocationEnvVar != "" && o.LocationEnvVar != "-" {
		if dir := os.Getenv(o.LocationEnvVar); dir != "" {
			return dir
		}
	}
	return o.Location
}

// envDir returns the effective environments directory after env var
// overrides. Empty when no location is configured.
func (o DiscoveryOptions) envDir() string {
	if o.EnvDirEnvVar != "" && o.EnvDirEnvVar != "-" {
		if dir := os.Getenv(o.EnvDirEnvVar); dir != "" {
			return dir
		}
	}
	if o.EnvDir != "" {
		return o.EnvDir
	}
	if loc := o.location(); loc != "" {
		return filepath.Join(loc, "environments")
	}
	return ""
}

// Resolve returns the sorted, deduplicated list of existing readable config
// files for the options. For each extension two candidates are considered:
// <location>/config.<ext> and <envdir>/<environment>.<ext>. Missing or
// unreadable candidates are skipped; optional config is not an error.
func (o DiscoveryOptions) Resolve() []string {
	loc := o.location()
	if loc == "" {
		return nil
	}

	exts := o.Extensions
	if len(exts) == 0 {
		exts = SupportedExtensions()
	}

	envDir := o.envDir()

	var candidates []string
	for _, ext := range exts {
		candidates = append(candidates, filepath.Join(loc, "config."+ext))
		if o.Environment != "" && envDir != "" {
			candidates = append(candidates, filepath.Join(envDir, o.Environment+"."+ext))
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, path := range candidates {
		if seen[path] {
			continue
		}
		seen[path] = true

		if isReadableFile(path) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files
}

// isReadableFile reports whether path is a regular file the process can open.
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()

	return true
}
