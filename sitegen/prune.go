package sitegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darobbins85/wordpress-static/htmlfix"
)

// pruneStaleHTML deletes generated pages that this run didn't write,
// e.g. items that were unpublished or renamed since the last export.
// Only pages/ and posts/ are pruned; everything else in the store is
// left alone.
func (r *Renderer) pruneStaleHTML() ([]string, error) {
	pruned := []string{}

	for _, subdir := range []string{"pages", "posts"} {
		files, err := htmlfix.ListHTMLFiles(filepath.Join(r.StorePath, subdir))
		if err != nil {
			return nil, fmt.Errorf("sitegen: couldn't list HTML in %s: %w", subdir, err)
		}

		for _, file := range files {
			relative, err := filepath.Rel(r.StorePath, file)
			if err != nil {
				return nil, fmt.Errorf("sitegen: couldn't compute relative path of %s: %w", file, err)
			}
			relative = filepath.ToSlash(relative)

			if r.freshFiles[relative] {
				continue
			}

			if r.Logger != nil {
				r.Logger.Printf("Pruning: %s\n", relative)
			}
			if err := os.Remove(file); err != nil {
				return nil, fmt.Errorf("sitegen: failed to delete %s: %w", file, err)
			}
			pruned = append(pruned, relative)
		}
	}

	return pruned, nil
}
