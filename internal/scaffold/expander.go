package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// FileTask is one concrete resolved source/destination pair produced by
// expanding a directive. Tasks are recomputed fresh on every run.
type FileTask struct {
	// FromPath is the concrete source path.
	FromPath string
	// ToPath is the concrete destination path.
	ToPath string
	// Onetime prevents regeneration once the destination exists.
	Onetime bool
	// AddCopyright requests a copyright header on the destination.
	AddCopyright bool
}

// Expand turns manifest directives into the ordered task list for one
// generation pass. Destination directories are created eagerly here, not
// deferred to reconciliation. Directives gated by a falsy 'if' parameter
// are dropped.
func Expand(sourceDir, targetDir string, directives []manifest.FileDirective, cfg config.Configuration) ([]FileTask, error) {
	var tasks []FileTask
	for _, d := range directives {
		if skipByGate(d, cfg) {
			debug.Debug("[scaffold] SKIPPING %s, gate parameter %q is falsy", d.From, d.If)
			continue
		}

		to := SplitPattern(targetDir, d.To)
		if to.HasGlob() {
			return nil, NewError(FatalConfig, d.To,
				"glob not allowed in 'to' path; path must be directory or file", nil)
		}

		if err := ensureDestinationDir(to.Path); err != nil {
			return nil, NewError(IOFailed, to.Path, "failed to create destination directory", err)
		}

		from := SplitPattern(sourceDir, d.From)
		if !from.HasGlob() {
			task, err := literalTask(d, from.Path, to.Path)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
			continue
		}

		expanded, err := globTasks(d, from, to.Path)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, expanded...)
	}
	return tasks, nil
}

// skipByGate reports whether a directive's 'if' parameter is present in
// the configuration and falsy.
func skipByGate(d manifest.FileDirective, cfg config.Configuration) bool {
	if d.If == "" || cfg == nil {
		return false
	}
	v, ok := cfg[d.If]
	if !ok {
		return false
	}
	return isFalsy(v)
}

func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case nil:
		return true
	default:
		return false
	}
}

// literalTask builds the single task for a glob-free 'from'. An existing
// source directory maps onto the destination path itself; a file (or a
// not-yet-validated path) lands under the destination directory with the
// directive's oname or its own base name.
func literalTask(d manifest.FileDirective, fromPath, toPath string) (FileTask, error) {
	info, err := os.Stat(fromPath)
	if err == nil && info.IsDir() {
		return FileTask{
			FromPath:     fromPath,
			ToPath:       toPath,
			Onetime:      d.Onetime,
			AddCopyright: d.AddCopyright,
		}, nil
	}

	name := d.Oname
	if name == "" {
		name = filepath.Base(fromPath)
	}
	return FileTask{
		FromPath:     fromPath,
		ToPath:       filepath.Join(toPath, name),
		Onetime:      d.Onetime,
		AddCopyright: d.AddCopyright,
	}, nil
}

// globTasks emits one task per non-directory glob match, preserving each
// match's base name at the destination.
func globTasks(d manifest.FileDirective, from ResolvedPath, toPath string) ([]FileTask, error) {
	if err := os.MkdirAll(toPath, 0755); err != nil {
		return nil, NewError(IOFailed, toPath, "failed to create destination directory", err)
	}

	// A missing source root simply matches nothing.
	if _, err := os.Stat(from.Path); os.IsNotExist(err) {
		return nil, nil
	}

	fsys := os.DirFS(from.Path)
	matches, err := doublestar.Glob(fsys, from.Glob)
	if err != nil {
		return nil, NewError(FatalConfig, d.From, "invalid glob pattern", err)
	}

	var tasks []FileTask
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, NewError(IOFailed, filepath.Join(from.Path, m), "failed to stat glob match", err)
		}
		if info.IsDir() {
			continue
		}
		tasks = append(tasks, FileTask{
			FromPath:     filepath.Join(from.Path, m),
			ToPath:       filepath.Join(toPath, filepath.Base(m)),
			Onetime:      d.Onetime,
			AddCopyright: d.AddCopyright,
		})
	}
	return tasks, nil
}

// ensureDestinationDir creates the destination's containing directory:
// the path itself when it already is a directory, its parent otherwise.
func ensureDestinationDir(toPath string) error {
	if info, err := os.Stat(toPath); err == nil && info.IsDir() {
		return os.MkdirAll(toPath, 0755)
	}
	return os.MkdirAll(filepath.Dir(toPath), 0755)
}
