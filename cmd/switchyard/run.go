package main

import (
	"context"
	"fmt"

	"github.com/aretw0/switchyard"
	"github.com/aretw0/switchyard/internal/cli"
	"github.com/aretw0/switchyard/internal/presentation/tui"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [definition]",
		Short: "Drive a machine interactively",
		Long:  `Prints the current state and its rules, and applies the trigger picked by index or name until a terminal state is reached.`,
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
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cli.IsTerminal(out) {
				tui.PrintBanner(out, switchyard.Version)
			}

			sigCtx := cli.NewSignalContext(context.Background())
			defer sigCtx.Cancel()

			m := fsm.NewMachine(spec, fsm.WithLogger(logger))
			r := &cli.Runner{
				Input:  cmd.InOrStdin(),
				Output: out,
				Label:  f.Label,
				Logger: logger,
			}
			if err := r.Run(sigCtx, m); err != nil {
				if sigCtx.Signal() != nil {
					fmt.Fprintf(out, "\n>>> Interrupted at %s.\n", f.Label(string(m.Current())))
					return nil
				}
				return err
			}
			return nil
		},
	}
	return cmd
}
