package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchyard"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of switchyard",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "switchyard version %s\n", strings.TrimSpace(switchyard.Version))
		},
	}
}
