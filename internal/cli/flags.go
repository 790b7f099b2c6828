// Package cli provides flag binding and validation for the supastack CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Options collects every CLI flag value. Zero values mean "not set";
// origin and base port fall back to the interactive prompt and a random
// seed respectively.
type Options struct {
	BasePort       int
	Localhost      bool
	Protocol       string
	Domain         string
	VectorTemplate string
	ConfigFile     string
	Verbose        bool
}

// BindFlags registers all CLI flags on the given cobra command.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, opts *Options) {
	flags := cmd.Flags()

	flags.IntVar(&opts.BasePort, "base-port", 0, "Base port for the service port windows (random when omitted)")

	// Origin selection; omitting all three triggers the interactive prompt.
	flags.BoolVar(&opts.Localhost, "localhost", false, "Localhost deployment: allow all CORS origins")
	flags.StringVar(&opts.Protocol, "protocol", "", "Origin protocol for a non-localhost deployment: http or https")
	flags.StringVar(&opts.Domain, "domain", "", "Origin domain for a non-localhost deployment (e.g. example.com)")

	flags.StringVar(&opts.VectorTemplate, "vector-template", "", "Path to a custom log pipeline template")
	flags.StringVar(&opts.ConfigFile, "config", "", "Path to a settings file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug output")
}

// ValidateFlags checks for invalid flag values and combinations after
// parsing.
func ValidateFlags(opts *Options) error {
	if opts.BasePort != 0 && (opts.BasePort < 1 || opts.BasePort > 65535) {
		return fmt.Errorf("--base-port must be between 1 and 65535, got %d", opts.BasePort)
	}
	if (opts.Protocol == "") != (opts.Domain == "") {
		return fmt.Errorf("--protocol and --domain must be given together")
	}
	if opts.Protocol != "" && opts.Protocol != "http" && opts.Protocol != "https" {
		return fmt.Errorf("--protocol must be http or https, got %q", opts.Protocol)
	}
	if opts.Localhost && opts.Domain != "" {
		return fmt.Errorf("--localhost and --domain are mutually exclusive")
	}
	return nil
}

// HasOrigin reports whether the flags fully determine the CORS origin,
// making the interactive prompt unnecessary.
func (o *Options) HasOrigin() bool {
	return o.Localhost || (o.Protocol != "" && o.Domain != "")
}
