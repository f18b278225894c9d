package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/paramstore/cmd/pstore/commands"
	"github.com/systmms/paramstore/internal/config"
	"github.com/systmms/paramstore/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile string
		noColor    bool
	)

	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "pstore",
		Short: "Manage grouped AWS SSM Parameter Store entries",
		Long: `pstore reads and writes AWS Systems Manager Parameter Store entries
under a hierarchical group prefix, with name validation and strict
create/update semantics.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Path = configFile
			cfg.Logger = logging.New(cfg.FlagDebug, noColor)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&cfg.FlagRegion, "region", "", "AWS region")
	rootCmd.PersistentFlags().StringVar(&cfg.FlagProfile, "profile", "", "Shared AWS config profile")
	rootCmd.PersistentFlags().StringVar(&cfg.FlagGroup, "group", "", "Parameter group prefix, e.g. /myapp/staging")
	rootCmd.PersistentFlags().BoolVar(&cfg.FlagNoClean, "no-clean", false, "Do not clean parameter names into pathlike form")
	rootCmd.PersistentFlags().BoolVar(&cfg.FlagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		commands.NewGetCommand(cfg),
		commands.NewCreateCommand(cfg),
		commands.NewUpdateCommand(cfg),
		commands.NewUpsertCommand(cfg),
		commands.NewListCommand(cfg),
	)

	return rootCmd.Execute()
}
