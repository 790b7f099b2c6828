package prompt

import (
	"strings"

	"github.com/supastack-dev/supastack/internal/logging"
	"github.com/supastack-dev/supastack/internal/project"
)

// DecideOrigin resolves the CORS origin policy. A localhost deployment gets
// the wildcard origin; anything else is asked for an explicit protocol and
// domain. This is the only interactive branch in the whole generator.
func DecideOrigin(a Asker) project.Origin {
	answer := strings.ToUpper(strings.TrimSpace(a.Ask("Is this setup for localhost? (Y/N):", "Y", "N")))
	if answer == "Y" {
		logging.Info("Defaulting to protocol: http")
		logging.Info("Using domain: localhost")
		logging.Info("Configuring CORS to allow all origins (*)")
		return project.Localhost()
	}

	protocol := strings.TrimSpace(a.Ask("Enter the protocol for your domain (http or https):", "http", "https"))
	domain := strings.TrimSpace(a.Ask("Enter your domain (e.g., example.com):"))
	return project.Custom(protocol, domain)
}
