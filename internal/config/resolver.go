package config

import (
	"path"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atheneum-dev/forge/internal/manifest"
)

// GlobFile describes one inventory file matched by a glob-typed default.
type GlobFile struct {
	// Path is the inventory-relative path.
	Path string `toml:"path"`
	// Name is the final path component.
	Name string `toml:"name"`
	// CodePath is Path with a leading "include/" segment stripped, the
	// form used in #include directives.
	CodePath string `toml:"code_path"`
}

// DeriveDefault computes the effective default for one parameter.
//
// A string default may be a "parameter:<name>" reference, substituted by
// the referenced parameter's raw default. Substitution is exactly one hop;
// chains of references are not followed. A "current_year()" token resolves
// to the current local calendar year.
//
// For str:glob parameters with a non-nil inventory, the (possibly
// substituted) default is treated as a glob pattern and expanded to a
// []GlobFile sorted by path. Without an inventory the raw pattern string
// is returned unchanged.
//
// Returns nil for an undeclared key.
func DeriveDefault(specs map[string]manifest.ParameterSpec, key string, inv []string) (interface{}, error) {
	spec, ok := specs[key]
	if !ok {
		return nil, nil
	}

	d := spec.Default
	if s, isStr := d.(string); isStr {
		if strings.HasPrefix(s, "parameter:") {
			target := strings.TrimPrefix(s, "parameter:")
			ref, declared := specs[target]
			if !declared {
				return nil, NewUnresolvedReferenceError(key, target)
			}
			d = ref.Default
		}
		if s, isStr = d.(string); isStr && s == "current_year()" {
			d = time.Now().Year()
		}
	}

	if spec.Type == manifest.ParamTypeGlob && inv != nil {
		pattern, isStr := d.(string)
		if !isStr {
			return d, nil
		}
		return expandGlobDefault(pattern, inv), nil
	}

	return d, nil
}

// expandGlobDefault matches pattern against every inventory path and
// builds the descriptor list, sorted by path so re-runs are reproducible.
func expandGlobDefault(pattern string, inv []string) []GlobFile {
	matched := make([]GlobFile, 0)
	for _, p := range inv {
		if !globMatch(pattern, p) {
			continue
		}
		matched = append(matched, GlobFile{
			Path:     p,
			Name:     path.Base(p),
			CodePath: strings.TrimPrefix(p, "include/"),
		})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Path < matched[j].Path })
	return matched
}

// globMatch matches a path against a glob pattern. A relative pattern
// with fewer segments than the path also matches right-anchored, so
// "*.cpp" matches "src/main.cpp".
func globMatch(pattern, p string) bool {
	if ok, err := doublestar.Match(pattern, p); err == nil && ok {
		return true
	}
	if strings.Contains(pattern, "**") {
		return false
	}
	psegs := strings.Split(pattern, "/")
	segs := strings.Split(p, "/")
	if len(psegs) >= len(segs) {
		return false
	}
	tail := strings.Join(segs[len(segs)-len(psegs):], "/")
	ok, err := doublestar.Match(pattern, tail)
	return err == nil && ok
}
