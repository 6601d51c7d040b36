package main

import (
	"fmt"

	"github.com/aretw0/switchyard/pkg/game"
	"github.com/spf13/cobra"
)

func newGoblinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goblins",
		Short: "Play out the goblin modifier scenario",
		Long:  `Brings goblins and optionally a goblin king into play and prints the statistics every creature resolves through the query broker.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			withKing, _ := cmd.Flags().GetBool("king")
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}

			g := game.New()
			goblins := make([]*game.Goblin, 0, count+1)
			for i := range count {
				goblins = append(goblins, game.NewGoblin(g, fmt.Sprintf("goblin-%d", i+1)))
			}
			if withKing {
				goblins = append(goblins, game.NewGoblinKing(g, "king"))
			}

			out := cmd.OutOrStdout()
			for _, gob := range goblins {
				fmt.Fprintln(out, gob)
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 3, "Number of ordinary goblins")
	cmd.Flags().Bool("king", false, "Add a goblin king")
	return cmd
}
