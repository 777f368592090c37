package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/jaskcalc/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file:                  %s\n", config.Path())
			fmt.Fprintf(out, "database.path:                %s\n", cfg.Database.Path)
			fmt.Fprintf(out, "history.enabled:              %t\n", cfg.History.Enabled)
			fmt.Fprintf(out, "history.keep:                 %d\n", cfg.History.Keep)
			fmt.Fprintf(out, "history.limit:                %d\n", cfg.History.Limit)
			fmt.Fprintf(out, "display.precision:            %d\n", cfg.Display.Precision)
			fmt.Fprintf(out, "display.max_result_len:       %d\n", cfg.Display.MaxResultLen)
			fmt.Fprintf(out, "display.infinity_placeholder: %s\n", cfg.Display.InfinityPlaceholder)
			fmt.Fprintf(out, "log.path:                     %s\n", cfg.Log.Path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
