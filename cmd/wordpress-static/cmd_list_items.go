/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/darobbins85/wordpress-static/wxr"
)

var listItemsUsage = strings.TrimSpace(`
Print the pages, posts and attachments in an export
`)

var listItemsCmd = &cobra.Command{
	Use:   "items",
	Short: listItemsUsage,
	Long: `
Parses the export and prints an inventory without writing any files.  Useful to check what a
'generate' run would produce, and which items would be skipped as drafts.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ExportPath == "" {
			return fmt.Errorf("No WordPress export file given.  Use --export or set it in your config file.")
		}

		exportFile, err := homedir.Expand(ExportPath)
		if err != nil {
			return fmt.Errorf("list items: couldn't expand homedir: %w", err)
		}

		export, err := wxr.ParseFile(exportFile)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}

		fmt.Printf("%s (%s)\n\n", export.Site.Title, export.Site.URL)

		fmt.Printf("pages (%d, %d published):\n", len(export.Pages), countPublished(export.Pages))
		printItems(export.Pages)

		fmt.Printf("posts (%d, %d published):\n", len(export.Posts), countPublished(export.Posts))
		printItems(export.Posts)

		fmt.Printf("attachments (%d):\n", len(export.Attachments))
		for _, att := range export.Attachments {
			filename := att.Filename
			if filename == "" {
				filename = "(no filename, will be skipped)"
			}
			fmt.Printf("  - %s\n", filename)
		}

		return nil
	},
}

func printItems(items []wxr.ContentItem) {
	for _, item := range items {
		fmt.Printf("  - %s: %s [%s]\n", item.Slug, item.Title, item.Status)
	}
}

func init() {
	listCmd.AddCommand(listItemsCmd)
}
