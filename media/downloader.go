// Package media fetches the attachments recorded in attachments.json
// into the site's assets tree.  Per-file failures never abort the
// batch; they're aggregated into a failure report instead, because
// partial success is the steady state for large media sets.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/darobbins85/wordpress-static/wxr"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 30 * time.Second

type Downloader struct {
	// Root of the site tree; files land in <StorePath>/assets/images.
	StorePath string

	// Concurrent fetches.  1 keeps the original serial behavior.
	Workers int

	// Per-request timeout; zero means 30s.
	Timeout time.Duration

	// Sent as the User-Agent header; some hosts refuse the Go default.
	UserAgent string

	// Re-fetch files whose destination already exists.
	AlwaysDownload bool

	// Substitutable for VCR or tests.
	Client *http.Client

	mu             sync.Mutex
	fetched        int
	alreadyPresent int
	failures       []FailedDownload
}

// FailedDownload is one entry of failed-downloads.json.
type FailedDownload struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Error    string `json:"error"`
}

type Report struct {
	Requested      int
	Fetched        int
	AlreadyPresent int
	Incomplete     int
	Failures       []FailedDownload
}

// Downloaded counts everything that's on disk after the run, which is
// how progress has always been reported: fetched plus already-present.
func (rep *Report) Downloaded() int {
	return rep.Fetched + rep.AlreadyPresent
}

// LoadAttachments reads an attachments.json file.
func LoadAttachments(path string) ([]wxr.Attachment, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("media: couldn't read %s: %w", path, err)
	}

	var attachments []wxr.Attachment
	if err := json.Unmarshal(source, &attachments); err != nil {
		return nil, fmt.Errorf("media: couldn't parse %s: %w", path, err)
	}

	return attachments, nil
}

// Run fetches every attachment with a usable URL and filename.
// Duplicate filenames collapse to a single fetch; entries missing
// either field are counted as incomplete and skipped.
func (d *Downloader) Run(ctx context.Context, attachments []wxr.Attachment) (*Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	imagesDir := filepath.Join(d.StorePath, "assets", "images")
	if err := os.MkdirAll(imagesDir, 0750); err != nil {
		return nil, fmt.Errorf("media: couldn't create directory %s: %w", imagesDir, err)
	}

	incomplete := 0
	unique := make(map[string]wxr.Attachment)
	for _, att := range attachments {
		if att.URL == "" || att.Filename == "" {
			incomplete++
			continue
		}
		unique[att.Filename] = att
	}

	jobs := maps.Values(unique)
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Filename < jobs[j].Filename })

	queue := make(chan wxr.Attachment, len(jobs))
	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("attachments:",
				decor.WC{C: decor.DindentRight | decor.DextraSpace}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d) "),
			decor.NewPercentage("%d"),
			decor.Spinner([]string{" /", " -", " \\", " |"}),
		),
	)

	workers := d.Workers
	if workers < 1 {
		workers = 1
	}

	grp, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		grp.Go(func() error {
			for {
				select {
				case att, ok := <-queue:
					if !ok {
						return nil
					}
					d.fetchOne(gctx, att, imagesDir)
					bar.Increment()

				case <-gctx.Done():
					return context.Cause(gctx)
				}
			}
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("media: download run aborted: %w", err)
	}

	// wait for our bar to complete and flush
	p.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	return &Report{
		Requested:      len(attachments),
		Fetched:        d.fetched,
		AlreadyPresent: d.alreadyPresent,
		Incomplete:     incomplete,
		Failures:       d.failures,
	}, nil
}

func (d *Downloader) fetchOne(ctx context.Context, att wxr.Attachment, imagesDir string) {
	destination := filepath.Join(imagesDir, att.Filename)

	if !d.AlwaysDownload {
		if _, err := os.Stat(destination); err == nil {
			d.mu.Lock()
			d.alreadyPresent++
			d.mu.Unlock()
			return
		}
	}

	data, err := d.fetch(ctx, att.URL)
	if err != nil {
		d.recordFailure(att, err)
		return
	}

	if err := os.WriteFile(destination, data, 0644); err != nil {
		d.recordFailure(att, err)
		return
	}

	d.mu.Lock()
	d.fetched++
	d.mu.Unlock()
}

func (d *Downloader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (d *Downloader) recordFailure(att wxr.Attachment, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures = append(d.failures, FailedDownload{
		Filename: att.Filename,
		URL:      att.URL,
		Error:    err.Error(),
	})
}

// WriteFailureReport writes failed-downloads.json under storePath when
// there were failures.  Returns the path written, or "" when the run
// was clean.
func (rep *Report) WriteFailureReport(storePath string) (string, error) {
	if len(rep.Failures) == 0 {
		return "", nil
	}

	reportPath := filepath.Join(storePath, "failed-downloads.json")
	f, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("media: couldn't create %s: %w", reportPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rep.Failures); err != nil {
		return "", fmt.Errorf("media: couldn't serialise %s: %w", reportPath, err)
	}

	return reportPath, nil
}
