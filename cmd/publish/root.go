package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "publish",
		Short:         "Drive a document through the publication workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newStepsCommand())

	return rootCmd
}
