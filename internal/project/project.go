// Package project builds the immutable configuration threaded through
// every artifact renderer.
//
// A Config is constructed exactly once per invocation, after the origin
// decision and port allocation, and is never mutated afterwards. The
// generated files on disk are its only persisted form.
package project

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/supastack-dev/supastack/internal/netport"
)

// namePattern restricts project names to characters that are valid in
// Docker container, volume and network identifiers. The name prefixes
// every container name and becomes the Compose network name, so an
// unsafe name would corrupt every artifact at once.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// maxNameLen caps the project name length.
const maxNameLen = 50

// InvalidNameError reports a project name outside the allow-list.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("project name %q must start with [a-z0-9], contain only [a-z0-9_-] and be at most %d characters",
		e.Name, maxNameLen)
}

// DeriveName extracts the project name from the final path segment of the
// requested project directory and validates it against the allow-list.
func DeriveName(dir string) (string, error) {
	name := filepath.Base(filepath.Clean(dir))
	if len(name) > maxNameLen || !namePattern.MatchString(name) {
		return "", &InvalidNameError{Name: name}
	}
	return name, nil
}

// Config is the single source of truth for every rendered artifact. Every
// artifact that names a peer service derives that name from Name, so the
// file set stays internally consistent.
type Config struct {
	// Name is the project name, derived from the final segment of Dir.
	Name string

	// Dir is the requested project directory path.
	Dir string

	// Origin is the CORS origin policy shared by every gateway route.
	Origin Origin

	// Ports holds the resolved base port and six service ports.
	Ports *netport.Allocation

	// Secrets holds every credential embedded in the artifacts.
	Secrets Secrets
}

// New derives and validates the project name from dir and assembles the
// config. The dashboard username lands in the secret record; the dashboard
// password defaults to the project name, matching upstream self-host
// behavior.
func New(dir string, origin Origin, ports *netport.Allocation, dashboardUser string) (*Config, error) {
	name, err := DeriveName(dir)
	if err != nil {
		return nil, err
	}
	return &Config{
		Name:    name,
		Dir:     dir,
		Origin:  origin,
		Ports:   ports,
		Secrets: NewSecrets(name, dashboardUser),
	}, nil
}
