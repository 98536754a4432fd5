package main

import (
	"fmt"

	"github.com/aatumaykin/agesweep/internal/config"
	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/aatumaykin/agesweep/internal/messages"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Validate agesweep configuration.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Long:  `Validate the configuration file and check for errors.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			configPath := constants.DefaultConfigPath
			if len(args) > 0 {
				configPath = args[0]
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), messages.FormatConfigLoadError(err))
				return err
			}

			if errs := cfg.Validate(); len(errs) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), messages.FormatValidationErrors(errs))
				return fmt.Errorf("%d validation error(s) in %s", len(errs), configPath)
			}

			fmt.Fprintln(cmd.OutOrStdout(), constants.MsgConfigValid)
			return nil
		},
	})

	return configCmd
}
