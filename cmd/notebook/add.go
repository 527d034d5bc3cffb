package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle   string
	addContent string
	addTags    []string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long:  `Append a new note. Duplicate titles are allowed.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(false)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		defer nb.Close()

		if err := nb.Add(context.Background(), addTitle, addContent, addTags...); err != nil {
			fatal("Failed to add note", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' added.\n", addTitle)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "Tag (repeatable)")
	addCmd.MarkFlagRequired("title")
}
