package scaffold

import (
	"path/filepath"
	"strings"
)

// ResolvedPath is the result of splitting a manifest path pattern into a
// literal prefix and an optional glob suffix.
type ResolvedPath struct {
	// Path is the literal prefix joined onto the base directory.
	Path string
	// Glob is the glob suffix, empty when the pattern had no wildcard.
	Glob string
}

// HasGlob reports whether the pattern carried a glob suffix.
func (r ResolvedPath) HasGlob() bool {
	return r.Glob != ""
}

// SplitPattern splits a manifest path pattern against a base directory.
// Leading segments without wildcard characters extend the literal path;
// the first wildcard segment and everything after it, literal or not,
// joins the glob suffix. Pure string manipulation, no I/O.
func SplitPattern(baseDir, pattern string) ResolvedPath {
	result := baseDir
	inGlob := false
	var globs []string
	for _, piece := range strings.Split(pattern, "/") {
		if strings.ContainsAny(piece, "*?[") {
			inGlob = true
		}
		if inGlob {
			globs = append(globs, piece)
		} else if piece != "" {
			result = filepath.Join(result, piece)
		}
	}
	return ResolvedPath{Path: result, Glob: strings.Join(globs, "/")}
}
