/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"

	"github.com/darobbins85/wordpress-static/internal/termfmt"
	"github.com/darobbins85/wordpress-static/media"
)

var downloadUsage = strings.TrimSpace(`
Download the media attachments listed in attachments.json
`)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: downloadUsage,
	Long: `
Fetches every attachment recorded by 'generate' into <store>/assets/images/.  Files that already
exist are skipped, so an interrupted run can simply be repeated.  Failures don't stop the batch;
they end up in <store>/failed-downloads.json.
`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		debugLog("  AlwaysDownload: %v\n", AlwaysDownload)
		return runDownload(cmd)
	},
}

var (
	AlwaysDownload bool
	WithVCR        bool
	Workers        int
	Timeout        time.Duration
	UserAgent      string
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().BoolVarP(&AlwaysDownload, "always-download", "f", false, "always download attachments, skipping the existing-file check")
	downloadCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
	downloadCmd.Flags().IntVar(&Workers, "workers", 1, "number of concurrent downloads")
	downloadCmd.Flags().DurationVar(&Timeout, "timeout", 30*time.Second, "per-request timeout")
	downloadCmd.Flags().StringVar(&UserAgent, "user-agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36", "User-Agent header, some hosts refuse unknown clients")
}

func runDownload(cmd *cobra.Command) error {
	storePath, err := homedir.Expand(LocalStore)
	if err != nil {
		return fmt.Errorf("download: couldn't expand homedir: %w", err)
	}

	attachmentsFile := filepath.Join(storePath, "attachments.json")
	if _, err := os.Stat(attachmentsFile); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("download: %s not found, run 'wordpress-static generate' first", attachmentsFile)
	}

	attachments, err := media.LoadAttachments(attachmentsFile)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	client := &http.Client{}

	if WithVCR {
		// set up VCR recordings.
		opts := &recorder.Options{
			CassetteName:       "fixtures/wordpress-media",
			Mode:               recorder.ModeReplayWithNewEpisodes,
			SkipRequestLatency: true,
			RealTransport:      http.DefaultTransport,
		}
		r, err := recorder.NewWithOptions(opts)
		if err != nil {
			return fmt.Errorf("download: couldn't set up go-vcr recording: %w", err)
		}

		defer r.Stop() // Make sure recorder is stopped once done with it

		// Add a hook which removes Cookie headers from all requests
		hook := func(i *cassette.Interaction) error {
			delete(i.Request.Headers, "Cookie")
			return nil
		}
		r.AddHook(hook, recorder.AfterCaptureHook)
		r.SetReplayableInteractions(true)

		client = r.GetDefaultClient()
	}

	fmt.Printf("Downloading %d attachments...\n", len(attachments))

	downloader := &media.Downloader{
		StorePath:      storePath,
		Workers:        Workers,
		Timeout:        Timeout,
		UserAgent:      UserAgent,
		AlwaysDownload: AlwaysDownload,
		Client:         client,
	}

	report, err := downloader.Run(cmd.Context(), attachments)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Downloaded: %d/%d\n", report.Downloaded(), report.Requested)
	if report.Incomplete > 0 {
		fmt.Printf("Skipped %d entries without a URL or filename.\n", report.Incomplete)
	}

	if len(report.Failures) > 0 {
		fmt.Printf("Failed: %d\n", len(report.Failures))
		fmt.Printf("\nFailed downloads:\n")
		for i, failure := range report.Failures {
			if i == 10 {
				break
			}
			fmt.Printf("  - %s: %s\n", failure.Filename, failure.Error)
		}

		reportPath, err := report.WriteFailureReport(storePath)
		if err != nil {
			return fmt.Errorf("download: %w", err)
		}
		fmt.Printf("\nFull list of failures saved to: %s\n", reportPath)
	}

	if report.Downloaded() > 0 {
		fmt.Printf("%s\n", termfmt.Fg(termfmt.Green).V("✓ Download complete!"))
		fmt.Printf("\nMedia files saved to: %s\n", filepath.Join(storePath, "assets", "images"))
	}

	return nil
}
