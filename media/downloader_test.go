package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darobbins85/wordpress-static/wxr"
)

func mediaServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	})
	mux.HandleFunc("/missing.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRunFetchesAndReports(t *testing.T) {
	server := mediaServer(t)
	store := t.TempDir()

	imagesDir := filepath.Join(store, "assets", "images")
	require.NoError(t, os.MkdirAll(imagesDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "exists.png"), []byte("old"), 0644))

	attachments := []wxr.Attachment{
		{Title: "ok", URL: server.URL + "/ok.png", Filename: "ok.png"},
		{Title: "present", URL: server.URL + "/exists.png", Filename: "exists.png"},
		{Title: "broken", URL: server.URL + "/missing.png", Filename: "missing.png"},
		{Title: "no filename", URL: server.URL + "/whatever"},
	}

	d := &Downloader{StorePath: store, Client: server.Client()}
	report, err := d.Run(context.Background(), attachments)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Requested)
	assert.Equal(t, 1, report.Fetched)
	assert.Equal(t, 1, report.AlreadyPresent)
	assert.Equal(t, 1, report.Incomplete)
	assert.Equal(t, 2, report.Downloaded())

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "missing.png", report.Failures[0].Filename)
	assert.Contains(t, report.Failures[0].Error, "404")

	fetched, err := os.ReadFile(filepath.Join(imagesDir, "ok.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(fetched))

	// the already-present file was not re-fetched
	existing, err := os.ReadFile(filepath.Join(imagesDir, "exists.png"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(existing))
}

func TestRunAlwaysDownloadOverwrites(t *testing.T) {
	server := mediaServer(t)
	store := t.TempDir()

	imagesDir := filepath.Join(store, "assets", "images")
	require.NoError(t, os.MkdirAll(imagesDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "ok.png"), []byte("stale"), 0644))

	d := &Downloader{StorePath: store, Client: server.Client(), AlwaysDownload: true}
	report, err := d.Run(context.Background(), []wxr.Attachment{
		{URL: server.URL + "/ok.png", Filename: "ok.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Fetched)
	assert.Equal(t, 0, report.AlreadyPresent)

	content, err := os.ReadFile(filepath.Join(imagesDir, "ok.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestRunCollapsesDuplicateFilenames(t *testing.T) {
	server := mediaServer(t)
	store := t.TempDir()

	d := &Downloader{StorePath: store, Client: server.Client(), Workers: 4}
	report, err := d.Run(context.Background(), []wxr.Attachment{
		{URL: server.URL + "/ok.png", Filename: "ok.png"},
		{URL: server.URL + "/ok.png", Filename: "ok.png"},
		{URL: server.URL + "/ok.png", Filename: "ok.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Requested)
	assert.Equal(t, 1, report.Fetched)
}

func TestWriteFailureReport(t *testing.T) {
	store := t.TempDir()

	clean := &Report{}
	path, err := clean.WriteFailureReport(store)
	require.NoError(t, err)
	assert.Empty(t, path, "a clean run writes no report")

	report := &Report{Failures: []FailedDownload{
		{Filename: "missing.png", URL: "https://example.com/missing.png", Error: "unexpected status: 404 Not Found"},
	}}
	path, err = report.WriteFailureReport(store)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store, "failed-downloads.json"), path)

	source, err := os.ReadFile(path)
	require.NoError(t, err)

	var reread []FailedDownload
	require.NoError(t, json.Unmarshal(source, &reread))
	assert.Equal(t, report.Failures, reread)
}

func TestLoadAttachments(t *testing.T) {
	store := t.TempDir()
	path := filepath.Join(store, "attachments.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {
    "title": "photo",
    "url": "https://example.com/photo.jpg",
    "filename": "photo.jpg"
  }
]`), 0644))

	attachments, err := LoadAttachments(path)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "photo.jpg", attachments[0].Filename)

	_, err = LoadAttachments(filepath.Join(store, "nope.json"))
	assert.Error(t, err)
}
