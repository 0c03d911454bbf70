// Package htmlfix post-processes the generated HTML tree: stripping
// WordPress plugin script/link tags, rewriting root-relative URLs into
// path-relative ones, and repairing hardcoded home links.  Every pass
// rewrites a file only when its content actually changed.
package htmlfix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListHTMLFiles returns absolute pathnames of all *.html under inFolder.
// A missing folder is not an error, just an empty result.
func ListHTMLFiles(inFolder string) ([]string, error) {
	if _, err := os.Stat(inFolder); err == nil {
		// path/to/whatever exists
	} else if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	} else {
		return []string{}, fmt.Errorf("htmlfix: error opening %s for file tree walk: %w", inFolder, err)
	}

	filenames := []string{}

	err := filepath.Walk(inFolder,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("htmlfix: error during file tree walk: %w", err)
			}
			if !info.IsDir() && strings.HasSuffix(path, ".html") {
				filenames = append(filenames, path)
			}
			return nil
		})
	if err != nil {
		return []string{}, fmt.Errorf("htmlfix: error initialising file tree walk: %w", err)
	}

	return filenames, nil
}

// RewriteFunc takes a file's path relative to the tree root (slash
// separated) and its content, and returns the replacement content.
type RewriteFunc func(relativePath string, content string) string

// RewriteTree applies fn to every HTML file under root and writes back
// only the files whose content changed.  Returns the relative paths of
// the rewritten files.
func RewriteTree(root string, fn RewriteFunc) ([]string, error) {
	files, err := ListHTMLFiles(root)
	if err != nil {
		return nil, err
	}

	changed := []string{}
	for _, file := range files {
		relative, err := filepath.Rel(root, file)
		if err != nil {
			return nil, fmt.Errorf("htmlfix: couldn't compute relative path of %s: %w", file, err)
		}
		relative = filepath.ToSlash(relative)

		source, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("htmlfix: couldn't read file %s: %w", file, err)
		}

		content := fn(relative, string(source))
		if content == string(source) {
			continue
		}

		if err := os.WriteFile(file, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("htmlfix: couldn't write file %s: %w", file, err)
		}
		changed = append(changed, relative)
	}

	return changed, nil
}

// depthOf counts how many directories below the tree root a file sits.
func depthOf(relativePath string) int {
	return strings.Count(relativePath, "/")
}
