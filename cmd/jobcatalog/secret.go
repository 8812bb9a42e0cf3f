package main

import (
	"fmt"

	"jobcatalog/internal/secrets"

	"github.com/spf13/cobra"
)

func newCmdSecret(o *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the listings API key in the OS keychain.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "set KEY",
		Short:        "Store the listings API key.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := secrets.SetAPIKey(o.cfg.Source.Remote.KeyringAccount, args[0]); err != nil {
				return fmt.Errorf("keyring set: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "api key saved")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:          "delete",
		Short:        "Remove the listings API key.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := secrets.DeleteAPIKey(o.cfg.Source.Remote.KeyringAccount); err != nil {
				return fmt.Errorf("keyring delete: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "api key deleted")
			return nil
		},
	})

	return cmd
}
