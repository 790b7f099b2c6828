// Package settings loads optional operator defaults for the generator.
//
// Settings are read from .supastack.ini in the working directory, falling
// back to $HOME/.supastack/config.ini. A missing file is not an error: the
// built-in defaults apply. The file carries only operational knobs; nothing
// secret is ever read from it.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Settings holds the operator-tunable defaults.
type Settings struct {
	// [ports] section.
	SeedMin        int
	SeedMax        int
	MaxScan        int
	ProbeTimeoutMS int

	// [dashboard] section.
	DashboardUsername string

	// [templates] section.
	VectorTemplate string
}

// Defaults returns the built-in settings used when no file is present.
func Defaults() *Settings {
	return &Settings{
		SeedMin:           3000,
		SeedMax:           9000,
		MaxScan:           512,
		ProbeTimeoutMS:    2000,
		DashboardUsername: "supabase",
	}
}

// searchPaths returns the default lookup chain for the settings file.
func searchPaths() []string {
	paths := []string{".supastack.ini"}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".supastack", "config.ini"))
	}
	return paths
}

// Load reads settings from path, or from the default lookup chain when path
// is empty. An explicit path must load; a missing default path is skipped.
func Load(path string) (*Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		for _, candidate := range searchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return s, nil
		}
	}

	f, err := ini.Load(path)
	if err != nil {
		if !explicit {
			return s, nil
		}
		return nil, fmt.Errorf("load settings %s: %w", path, err)
	}

	ports := f.Section("ports")
	s.SeedMin = ports.Key("seed_min").MustInt(s.SeedMin)
	s.SeedMax = ports.Key("seed_max").MustInt(s.SeedMax)
	s.MaxScan = ports.Key("max_scan").MustInt(s.MaxScan)
	s.ProbeTimeoutMS = ports.Key("probe_timeout_ms").MustInt(s.ProbeTimeoutMS)

	s.DashboardUsername = f.Section("dashboard").Key("username").MustString(s.DashboardUsername)
	s.VectorTemplate = f.Section("templates").Key("vector").MustString(s.VectorTemplate)

	if s.SeedMin < 1 || s.SeedMax > 65535 || s.SeedMin > s.SeedMax {
		return nil, fmt.Errorf("settings %s: seed range [%d, %d] is not a valid port range", path, s.SeedMin, s.SeedMax)
	}
	if s.MaxScan < 1 {
		return nil, fmt.Errorf("settings %s: max_scan must be positive, got %d", path, s.MaxScan)
	}

	return s, nil
}
