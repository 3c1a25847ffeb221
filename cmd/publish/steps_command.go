package main

import (
	"github.com/publab/publication-service/internal/workflow"
	"github.com/spf13/cobra"
)

func newStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the workflow steps in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range workflow.StepNames() {
				cmd.Println(name)
			}
			return nil
		},
	}
}
