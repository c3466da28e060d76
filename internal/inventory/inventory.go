// Package inventory lists the files of a target project tree that live
// under conventionally recognized source directories. The resulting
// relative paths feed glob-typed parameter defaults and copyright header
// generation.
package inventory

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atheneum-dev/forge/internal/debug"
)

// RecognizedSrcDirs are the top-level directories scanned for source files.
var RecognizedSrcDirs = []string{"src", "include", "test", "app"}

// Collect returns the relative paths of all entries under root's recognized
// source directories, sorted ascending. Directories themselves are included,
// matching the recursive listing the glob defaults are matched against.
// A missing root yields an empty inventory, not an error.
func Collect(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if !recognized(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	debug.Debug("[inventory] Collected %d entries under %s", len(files), root)
	return files, nil
}

// recognized reports whether a relative path sits inside one of the
// recognized source directories.
func recognized(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, dir := range RecognizedSrcDirs {
		if rel == dir || strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}
