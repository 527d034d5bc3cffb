package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <query>",
	Short: "Re-run a search every time the store changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer nb.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		results, errc, err := nb.Watch(ctx, args[0])
		if err != nil {
			fatal("Failed to watch notebook", err)
		}

		for out := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "--- %q ---\n%s", args[0], out)
			if len(out) > 0 && out[len(out)-1] != '\n' {
				fmt.Fprintln(cmd.OutOrStdout())
			}
		}
		if err := <-errc; err != nil {
			fatal("Watch stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
