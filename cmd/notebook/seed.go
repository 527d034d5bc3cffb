package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/core"
)

// demoNotes are the notes written by the seed command.
var demoNotes = []core.Record{
	core.NewRecord("Books to Read", "Gang of Four, Clean Architecture", "books"),
	core.NewRecord("Hiking Trails", "Coal Creek, Davidson Mesa", "places"),
	core.NewRecord("Restaurants", "Parma in Boulder", "places", "food"),
	core.NewRecord("Cooking Class", "Class at Sur la Table, get free cast iron", "food"),
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add a handful of demo notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(false)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer nb.Close()

		ctx := context.Background()
		for _, n := range demoNotes {
			if err := nb.Add(ctx, n.Title, n.Content, n.Tags...); err != nil {
				fatal("Failed to add note", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d demo notes added.\n", len(demoNotes))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
