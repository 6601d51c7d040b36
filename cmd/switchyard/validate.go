package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [definition]",
		Short: "Check a definition for consistency",
		Long:  `Reports a missing initial state, rules targeting undeclared states and terminal states with outgoing rules.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadMachine(cmd, args)
			if err != nil {
				return err
			}
			if _, err := f.Build(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Definition is valid! ✅")

			if export, _ := cmd.Flags().GetBool("export"); export {
				data, err := f.Marshal()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			}
			return nil
		},
	}
	cmd.Flags().Bool("export", false, "Print the normalized definition as YAML")
	return cmd
}
