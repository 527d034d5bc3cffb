package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by title, content or tag",
	Long: `Print every note whose title or content contains the query,
or that carries a tag equal to the query. Matching is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer nb.Close()

		out, err := nb.Search(context.Background(), args[0])
		if err != nil {
			fatal("Search failed", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
