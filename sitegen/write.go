package sitegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

func (r *Renderer) writeIntoStore(relative string, contents []byte) error {
	abs := filepath.Join(r.StorePath, filepath.FromSlash(relative))
	directory := filepath.Dir(abs)

	// there's probably a nicer way to express 0750 but meh
	if err := os.MkdirAll(directory, 0750); err != nil {
		return fmt.Errorf("sitegen: couldn't create directory %s: %w", directory, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("sitegen: couldn't create file %s: %w", abs, err)
	}

	defer f.Close()
	if _, err := f.Write(contents); err != nil {
		return fmt.Errorf("sitegen: couldn't write to file %s: %w", abs, err)
	}

	if path.Ext(relative) == ".html" {
		r.freshFiles[relative] = true
	}

	return nil
}

// writeJSON mirrors the original artifacts: two-space indent, and HTML
// inside string values left unescaped so the files stay greppable.
func writeJSON(absPath string, v any) error {
	f, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("sitegen: couldn't create file %s: %w", absPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("sitegen: couldn't serialise %s: %w", absPath, err)
	}

	return nil
}
