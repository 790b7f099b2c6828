package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/supastack-dev/supastack/internal/cli"
	"github.com/supastack-dev/supastack/internal/exitcode"
	"github.com/supastack-dev/supastack/internal/logging"
	"github.com/supastack-dev/supastack/internal/materialize"
	"github.com/supastack-dev/supastack/internal/netport"
	"github.com/supastack-dev/supastack/internal/project"
	"github.com/supastack-dev/supastack/internal/prompt"
	"github.com/supastack-dev/supastack/internal/render"
	"github.com/supastack-dev/supastack/internal/settings"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	opts := &cli.Options{}

	rootCmd := &cobra.Command{
		Use:     "supastack <project-path>",
		Short:   "Generate a self-hosted Supabase deployment with conflict-free ports",
		Long:    "supastack materializes a complete self-hosted Supabase project directory:\nCompose manifest, environment file, gateway and log pipeline configs,\ndatabase init scripts and fresh credentials, with every service port\nprobed for availability before it is assigned.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(opts); err != nil {
				return err
			}
			return run(args[0], opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, opts)

	if err := rootCmd.Execute(); err != nil {
		logging.Error("%v", err)
		os.Exit(codeFor(err))
	}
}

// codeFor maps an error to the CLI exit code.
func codeFor(err error) int {
	var exists *materialize.AlreadyExistsError
	if errors.As(err, &exists) {
		return exitcode.AlreadyExists
	}
	var exhausted *netport.ExhaustedError
	if errors.As(err, &exhausted) {
		return exitcode.PortExhausted
	}
	var write *materialize.WriteError
	if errors.As(err, &write) {
		return exitcode.WriteFailed
	}
	return exitcode.Error
}

func run(dir string, opts *cli.Options) error {
	logging.SetVerbose(opts.Verbose)

	st, err := settings.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	// Validate the project name before prompting or probing; a bad name
	// should fail in milliseconds.
	name, err := project.DeriveName(dir)
	if err != nil {
		return err
	}
	logging.Debug("Project name: %s", name)

	origin := decideOrigin(opts)

	alloc, err := allocatePorts(opts.BasePort, st)
	if err != nil {
		return err
	}

	cfg, err := project.New(dir, origin, alloc, st.DashboardUsername)
	if err != nil {
		return err
	}

	vectorPath, explicit := vectorTemplatePath(opts, st)
	artifacts, err := render.All(cfg, render.LoadVectorTemplate(vectorPath, explicit))
	if err != nil {
		return err
	}

	written, err := materialize.Materialize(dir, artifacts)
	if err != nil {
		return err
	}
	for _, path := range written {
		logging.Debug("Wrote %s", path)
	}

	logging.Success("Project %s generated with %d files", cfg.Name, len(written))
	fmt.Println()
	fmt.Println("Port configuration:")
	for _, sp := range alloc.Ordered() {
		fmt.Printf("  %-11s %d\n", sp.Service, sp.Port)
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", dir)
	fmt.Println("  docker compose up -d")
	fmt.Printf("  open http://localhost:%d for the dashboard\n", alloc.Studio)
	return nil
}

// decideOrigin resolves the CORS origin from flags, falling back to the
// interactive prompt when the flags leave it open.
func decideOrigin(opts *cli.Options) project.Origin {
	if opts.Localhost {
		logging.Info("Configuring CORS to allow all origins (*)")
		return project.Localhost()
	}
	if opts.HasOrigin() {
		return project.Custom(opts.Protocol, opts.Domain)
	}
	return prompt.DecideOrigin(&prompt.Terminal{})
}

func allocatePorts(basePort int, st *settings.Settings) (*netport.Allocation, error) {
	al := netport.NewAllocator()
	al.SeedMin = st.SeedMin
	al.SeedMax = st.SeedMax
	al.MaxScan = st.MaxScan
	al.Timeout = time.Duration(st.ProbeTimeoutMS) * time.Millisecond

	alloc, err := al.Allocate(basePort)
	if err != nil {
		return nil, err
	}
	logging.Info("Using base port: %d", alloc.BasePort)
	return alloc, nil
}

// vectorTemplatePath resolves where the log pipeline template comes from:
// the flag wins, then the settings file, then a vector.yml next to the
// invocation if one happens to exist. The second return reports whether
// the operator named the path explicitly.
func vectorTemplatePath(opts *cli.Options, st *settings.Settings) (string, bool) {
	if opts.VectorTemplate != "" {
		return opts.VectorTemplate, true
	}
	if st.VectorTemplate != "" {
		return st.VectorTemplate, true
	}
	return "vector.yml", false
}
