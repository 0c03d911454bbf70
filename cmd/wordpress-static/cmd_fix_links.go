/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/darobbins85/wordpress-static/htmlfix"
	"github.com/darobbins85/wordpress-static/internal/termfmt"
	"github.com/darobbins85/wordpress-static/wxr"
)

var fixLinksUsage = strings.TrimSpace(`
Rewrite absolute links to the old WordPress home page
`)

var fixLinksCmd = &cobra.Command{
	Use:   "fix-links",
	Short: fixLinksUsage,
	Long: `
Exported pages often link back to the old WordPress domain.  This pass rewrites
href="https://www.<domain>/" into a relative home link.  When --domain isn't given, the domain is
taken from the site URL recorded in site-data.json.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFixLinks()
	},
}

var Domain string

func init() {
	rootCmd.AddCommand(fixLinksCmd)

	fixLinksCmd.Flags().StringVar(&Domain, "domain", "", "the old WordPress domain, e.g. example.com")
}

func runFixLinks() error {
	storePath, err := homedir.Expand(LocalStore)
	if err != nil {
		return fmt.Errorf("fix-links: couldn't expand homedir: %w", err)
	}

	domain := Domain
	if domain == "" {
		domain, err = domainFromSiteData(storePath)
		if err != nil {
			return fmt.Errorf("fix-links: no --domain given and couldn't derive one: %w", err)
		}
		debugLog("Derived domain %s from site-data.json\n", domain)
	}

	fmt.Printf("Fixing hardcoded links to %s...\n", domain)

	changed, err := htmlfix.FixHomeLinksTree(storePath, domain)
	if err != nil {
		return fmt.Errorf("fix-links: %w", err)
	}

	for _, file := range changed {
		fmt.Printf("✓ %s\n", file)
	}
	fmt.Printf("%s\n", termfmt.Fg(termfmt.Green).V(fmt.Sprintf("✓ Fixed %d files", len(changed))))

	return nil
}

func domainFromSiteData(storePath string) (string, error) {
	siteDataFile := filepath.Join(storePath, "site-data.json")
	export, err := readSiteData(siteDataFile)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(export.Site.URL)
	if err != nil {
		return "", fmt.Errorf("site URL %q in %s is unparseable: %w", export.Site.URL, siteDataFile, err)
	}

	host := strings.TrimPrefix(u.Host, "www.")
	if host == "" {
		return "", fmt.Errorf("site URL %q in %s has no host", export.Site.URL, siteDataFile)
	}

	return host, nil
}

func readSiteData(path string) (*wxr.Export, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", path, err)
	}

	var export wxr.Export
	if err := json.Unmarshal(source, &export); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
	}

	return &export, nil
}
