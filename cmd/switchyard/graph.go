package main

import (
	"fmt"

	"github.com/aretw0/switchyard/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [definition]",
		Short: "Export the machine as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart (graph TD) of the transition table, one labelled edge per rule.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadMachine(cmd, args)
			if err != nil {
				return err
			}
			spec, err := f.Build()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(spec, nil))
			return nil
		},
	}
}
