/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Commands to list items",
	Long: `
Commands in this namespace are to help you explore what's inside a WordPress export before
generating anything.
`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
