package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/restkit/config"
)

const (
	serviceName = "restkit"
	envPrefix   = "RESTKIT"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "restkit [command] [flags]",
		Short: "Typed REST client demo",
		Long: `restkit exercises a typed REST client against a demo echo server.

Examples:
  # Run the demo server on :8080
  restkit serve

  # Run the client scenarios against an in-process server
  restkit demo

  # Run the client scenarios against a running server
  RESTKIT_CLIENT_BASE_URL=http://localhost:8080 restkit demo`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file (default: restkit.yml search paths)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads, defaults and validates the configuration.
func loadConfig(opts *rootOptions) (*Config, error) {
	loaderOpts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if opts.configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}
	if opts.envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(opts.envFile))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, loaderOpts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
