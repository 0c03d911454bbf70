/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/darobbins85/wordpress-static/internal/termfmt"
	"github.com/darobbins85/wordpress-static/sitegen"
	"github.com/darobbins85/wordpress-static/wxr"
)

var generateUsage = strings.TrimSpace(`
Parse a WordPress WXR export and build the static site
`)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: generateUsage,
	Long: `
Reads the WXR export given with --export and writes a static HTML rendition of every published
page and post into the store directory, along with the index page, stylesheet, and the JSON
artifacts (site-data.json, attachments.json) that the download command consumes.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

var (
	WriteMarkdown bool
	PruneStale    bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&WriteMarkdown, "write-markdown", false, "also write a Markdown mirror of every rendered item")
	generateCmd.Flags().BoolVar(&PruneStale, "prune", false, "delete generated HTML files this run didn't produce")
}

func runGenerate() error {
	if ExportPath == "" {
		return fmt.Errorf("No WordPress export file given.  Use --export or set it in your config file.")
	}

	exportFile, err := homedir.Expand(ExportPath)
	if err != nil {
		return fmt.Errorf("generate: couldn't expand homedir: %w", err)
	}

	storePath, err := homedir.Expand(LocalStore)
	if err != nil {
		return fmt.Errorf("generate: couldn't expand homedir: %w", err)
	}

	log.Printf("Parsing WordPress export %s...\n", exportFile)
	export, err := wxr.ParseFile(exportFile)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Printf("Found:\n")
	fmt.Printf("  - %d pages (%d published)\n", len(export.Pages), countPublished(export.Pages))
	fmt.Printf("  - %d posts (%d published)\n", len(export.Posts), countPublished(export.Posts))
	fmt.Printf("  - %d attachments\n", len(export.Attachments))

	renderer := &sitegen.Renderer{
		StorePath:     storePath,
		WriteMarkdown: WriteMarkdown,
		Prune:         PruneStale,
		Logger:        log.Default(),
	}

	summary, err := renderer.RenderSite(export)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Printf("%s\n", termfmt.Fg(termfmt.Green).V(fmt.Sprintf("✓ Static site created in '%s/'", storePath)))
	fmt.Printf("  - %d pages\n", summary.PublishedPages)
	fmt.Printf("  - %d posts\n", summary.PublishedPosts)
	fmt.Printf("  - %d attachments to download\n", summary.Attachments)
	if PruneStale {
		fmt.Printf("  - %d stale files pruned\n", len(summary.Pruned))
	}

	return nil
}

func countPublished(items []wxr.ContentItem) int {
	count := 0
	for _, item := range items {
		if item.Status == "publish" {
			count++
		}
	}
	return count
}
