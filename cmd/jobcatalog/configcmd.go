package main

import (
	"fmt"
	"strings"

	"jobcatalog/internal/config"

	"github.com/spf13/cobra"
)

func newCmdConfig(o *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Check or edit the configuration file.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "validate",
		Short:        "Validate the configuration file.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			out := &printer{w: cmd.OutOrStdout()}
			_, res := config.NormalizeAndValidate(cfg)
			for _, w := range res.Warnings {
				out.line("warning: %s", w)
			}
			out.line("%s: ok", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:          "set KEY VALUE",
		Short:        "Set one key and save the file, keeping the old one as .bak.",
		Long:         "Set one key and save the file, keeping the old one as .bak.\n\nKeys:\n  " + strings.Join(config.SettableKeys(), "\n  "),
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := o.configPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.SaveAtomic(path, cfg); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	})

	return cmd
}
