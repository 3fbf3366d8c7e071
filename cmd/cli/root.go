package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nagoyameshi",
		Short:         "NAGOYAMESHI restaurant discovery service",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newAdminCommand(),
	)
	return root
}
