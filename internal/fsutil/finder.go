// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. A root that is itself a matching file is returned
// as-is. It returns a slice of their full paths in lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Filter selects files by slash-separated glob patterns relative to the root
// they were found under. An empty include list matches everything; excludes
// always win.
type Filter struct {
	Includes []string
	Excludes []string
}

// Validate reports every malformed pattern at once.
func (f Filter) Validate() error {
	var bad []string
	for _, p := range append(append([]string{}, f.Includes...), f.Excludes...) {
		if !doublestar.ValidatePattern(p) {
			bad = append(bad, p)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid file patterns:\n- %s", strings.Join(bad, "\n- "))
	}
	return nil
}

// Matches reports whether the relative path passes the filter.
func (f Filter) Matches(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range f.Excludes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return false
		}
	}
	if len(f.Includes) == 0 {
		return true
	}
	for _, p := range f.Includes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// CollectFiles walks every root and returns the regular files passing the
// filter, sorted and de-duplicated. Roots that do not exist are skipped, the
// same way a source directory declared but never created yields no files.
func CollectFiles(roots []string, filter Filter) ([]string, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !filter.Matches(rel) {
				return nil
			}
			if _, dup := seen[path]; !dup {
				seen[path] = struct{}{}
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
