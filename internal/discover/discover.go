// Package discover selects the catalog files a run operates on.
//
// Selection sources are additive: explicit paths, a per-language glob
// pair, and the git staging area. With no source at all, every .po file
// under the working directory is selected. Paths under the configured
// exclusion prefixes are never selected.
package discover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options describes the selection sources for one run.
type Options struct {
	// Paths are explicit catalog files given on the command line.
	Paths []string

	// Lang selects catalogs for one language code via the glob pair
	// **/*.<lang>.po and **/<lang>.po.
	Lang string

	// Cached selects catalogs staged for commit in the enclosing git
	// working tree.
	Cached bool

	// ExcludePrefixes are slash-terminated path prefixes to skip.
	ExcludePrefixes []string
}

// Files resolves the selection into a sorted, de-duplicated file list.
// An empty result is not an error.
func Files(opts Options) ([]string, error) {
	var selected []string
	selected = append(selected, opts.Paths...)

	if opts.Lang != "" {
		for _, pattern := range []string{"**/*." + opts.Lang + ".po", "**/" + opts.Lang + ".po"} {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, err
			}
			selected = append(selected, matches...)
		}
	}

	if opts.Cached {
		staged, err := stagedCatalogs(opts.ExcludePrefixes)
		if err != nil {
			return nil, err
		}
		selected = append(selected, staged...)
	}

	if len(opts.Paths) == 0 && opts.Lang == "" && !opts.Cached {
		matches, err := doublestar.FilepathGlob("**/*.po")
		if err != nil {
			return nil, err
		}
		selected = matches
	}

	seen := make(map[string]struct{}, len(selected))
	var files []string
	for _, p := range selected {
		if excluded(p, opts.ExcludePrefixes) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

// excluded matches path against the exclusion prefixes. Absolute paths
// are compared relative to the working directory when they fall under it.
func excluded(path string, prefixes []string) bool {
	p := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, path); err == nil && !strings.HasPrefix(rel, "..") {
				p = filepath.ToSlash(rel)
			}
		}
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
