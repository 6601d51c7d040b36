package main

import (
	"fmt"

	"github.com/aretw0/switchyard/internal/cli"
	"github.com/aretw0/switchyard/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [definition]",
		Short: "Print the transition table",
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

			md := tui.DescribeMarkdown(spec, f.Labels)
			raw, _ := cmd.Flags().GetBool("raw")
			if raw || !cli.IsTerminal(cmd.OutOrStdout()) {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			rendered, err := tui.NewRenderer()(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
	return cmd
}
