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

var relativizeUsage = strings.TrimSpace(`
Convert root-relative URLs into path-relative ones
`)

var relativizeCmd = &cobra.Command{
	Use:   "relativize",
	Short: relativizeUsage,
	Long: `
Rewrites href/src/url() references that start with "/" into ../-style relative paths based on how
deep each file sits, so the site works both on a local server and when hosted under a subpath
(e.g. GitHub Pages).  External URLs, mailto:, tel: and fragment links are left alone.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := homedir.Expand(LocalStore)
		if err != nil {
			return fmt.Errorf("relativize: couldn't expand homedir: %w", err)
		}

		fmt.Printf("Converting absolute URLs to relative URLs under %s...\n", storePath)

		changed, err := htmlfix.RelativizeTree(storePath)
		if err != nil {
			return fmt.Errorf("relativize: %w", err)
		}

		for _, file := range changed {
			fmt.Printf("✓ Fixed: %s\n", file)
		}
		fmt.Printf("%s\n", termfmt.Fg(termfmt.Green).V(fmt.Sprintf("✓ Done! Fixed %d files", len(changed))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(relativizeCmd)
}
