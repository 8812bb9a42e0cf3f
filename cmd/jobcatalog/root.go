package main

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	o := DefaultGlobalOptions()
	cmd := &cobra.Command{
		Use:   "jobcatalog [flags] COMMAND",
		Short: "jobcatalog answers questions about a cached set of job listings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	o.Bind(cmd.PersistentFlags())

	cmd.AddCommand(newCmdLocation(o))
	cmd.AddCommand(newCmdJunior(o))
	cmd.AddCommand(newCmdCaptions(o))
	cmd.AddCommand(newCmdWords(o))
	cmd.AddCommand(newCmdLongest(o))
	cmd.AddCommand(newCmdSearch(o))
	cmd.AddCommand(newCmdCompanies(o))
	cmd.AddCommand(newCmdMenu(o))
	cmd.AddCommand(newCmdPage(o))
	cmd.AddCommand(newCmdPrefix(o))
	cmd.AddCommand(newCmdNotify(o))
	cmd.AddCommand(newCmdDates(o))
	cmd.AddCommand(newCmdRefresh(o))
	cmd.AddCommand(newCmdSecret(o))
	cmd.AddCommand(newCmdConfig(o))

	return cmd
}
