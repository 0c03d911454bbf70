/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/darobbins85/wordpress-static/htmlfix"
	"github.com/darobbins85/wordpress-static/internal/termfmt"
)

var cleanUsage = strings.TrimSpace(`
Strip WordPress and plugin script/link tags from the generated HTML
`)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: cleanUsage,
	Long: `
A static export can't serve the Elementor runtime, Gift Up checkout, or the wp-includes bundles
WordPress pages reference; leaving the tags in place just produces console errors.  This pass
removes them from every HTML file under the store.  Files with no matches are left untouched.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := homedir.Expand(LocalStore)
		if err != nil {
			return fmt.Errorf("clean: couldn't expand homedir: %w", err)
		}

		fmt.Printf("Removing WordPress dependencies under %s...\n", storePath)

		changed, err := htmlfix.CleanTree(storePath)
		if err != nil {
			return fmt.Errorf("clean: %w", err)
		}

		for _, file := range changed {
			fmt.Printf("✓ Cleaned: %s\n", file)
		}
		fmt.Printf("%s\n", termfmt.Fg(termfmt.Green).V(fmt.Sprintf("✓ Done! Cleaned %d files", len(changed))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
