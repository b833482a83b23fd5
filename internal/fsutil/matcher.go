package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vk/schemagen/internal/options"
)

// Matcher expands include and exclude patterns against a base directory.
type Matcher interface {
	Match(baseDir string, includes, excludes []string) ([]string, error)
}

// GlobMatcher matches slash-separated paths relative to the base directory
// with doublestar patterns, so `**` spans directories.
type GlobMatcher struct{}

// NewGlobMatcher returns a GlobMatcher.
func NewGlobMatcher() *GlobMatcher {
	return &GlobMatcher{}
}

// Match returns the sorted, de-duplicated relative paths of the regular files
// below baseDir that match at least one include and no exclude. Includes that
// are http or https locators are not matched; they are appended verbatim, in
// declaration order and without repeats, after the sorted file names.
func (m *GlobMatcher) Match(baseDir string, includes, excludes []string) ([]string, error) {
	var patterns, remote []string
	for _, inc := range includes {
		if options.IsRemoteLocator(inc) {
			remote = append(remote, inc)
			continue
		}
		patterns = append(patterns, normalizePattern(inc))
	}
	var skip []string
	for _, exc := range excludes {
		skip = append(skip, normalizePattern(exc))
	}
	for _, p := range append(slices.Clone(patterns), skip...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid file pattern %q", p)
		}
	}

	var files []string
	if len(patterns) > 0 {
		var err error
		files, err = walk(baseDir, patterns, skip)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", baseDir, err)
		}
	}

	slices.Sort(files)
	files = slices.Compact(files)
	for _, r := range remote {
		if !slices.Contains(files, r) {
			files = append(files, r)
		}
	}
	return files, nil
}

// walk collects the regular files below baseDir that match. Symlinks are
// followed: a link to a file is matched under its own name, a link to a
// directory is descended into. A directory reached again through a link is
// not walked twice, which stops link cycles.
func walk(baseDir string, includes, excludes []string) ([]string, error) {
	fsys := os.DirFS(baseDir)
	visited := make(map[string]bool)
	var files []string

	var walkTree func(root string) error
	walkTree = func(root string) error {
		real, err := filepath.EvalSymlinks(filepath.Join(baseDir, filepath.FromSlash(root)))
		if err != nil {
			return err
		}
		if visited[real] {
			return nil
		}
		visited[real] = true

		return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type()&fs.ModeSymlink != 0 {
				info, err := fs.Stat(fsys, path)
				if err != nil {
					// Dangling link.
					return nil
				}
				if info.IsDir() {
					return walkTree(path)
				}
				if !info.Mode().IsRegular() {
					return nil
				}
			} else if !d.Type().IsRegular() {
				return nil
			}
			if matchAny(includes, path) && !matchAny(excludes, path) {
				files = append(files, path)
			}
			return nil
		})
	}

	if err := walkTree("."); err != nil {
		return nil, err
	}
	return files, nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, path) {
			return true
		}
	}
	return false
}

// normalizePattern turns a pattern into the slash-separated form used for
// matching. A trailing slash matches everything below the directory, as it
// does for Ant-style scanners.
func normalizePattern(p string) string {
	p = filepath.ToSlash(p)
	for len(p) > 2 && p[:2] == "./" {
		p = p[2:]
	}
	if len(p) > 0 && p[len(p)-1] == '/' {
		p += "**"
	}
	return p
}
