// Package scaffold materializes and re-synchronizes a target directory
// tree from a manifest's static and templated file lists. It expands
// directives into concrete file tasks, then reconciles each task against
// the destination, merging diverged files instead of clobbering them.
package scaffold

import (
	"os"
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// Options configures one generation pass.
type Options struct {
	// SourceDir is the project-type data directory holding manifest sources.
	SourceDir string
	// TargetDir is the project directory being generated or updated.
	TargetDir string
	// Manifest is the loaded manifest.
	Manifest *manifest.Manifest
	// Config is the resolved configuration used as render bindings.
	Config config.Configuration
	// DoNotUpdate pins destination paths against reconciliation. Derived
	// from the forge.toml skip list, read-only during generation.
	DoNotUpdate map[string]bool
	// DryRun reports actions without touching the filesystem.
	DryRun bool
}

// Result collects the per-file outcomes of a generation pass.
type Result struct {
	// Lines are the formatted status records, in processing order.
	Lines []string
	// Counts tallies outcomes by status.
	Counts map[Status]int
}

func (r *Result) record(s Status, toPath string) {
	r.Lines = append(r.Lines, FormatStatus(s, toPath))
	r.Counts[s]++
}

// Generate runs one pass over the manifest's static and template lists,
// strictly in manifest order. Tasks whose destination is pinned are left
// untouched. The run is not transactional: a fatal per-file error stops
// processing but earlier writes stay on disk.
func Generate(opts Options) (*Result, error) {
	result := &Result{Counts: make(map[Status]int)}

	if !opts.DryRun {
		if _, err := os.Stat(opts.SourceDir); os.IsNotExist(err) {
			return nil, NewError(MissingSource, opts.SourceDir, "source directory does not exist", err)
		}
		if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
			return nil, NewError(IOFailed, opts.TargetDir, "failed to create target directory", err)
		}
	}

	debug.DebugSection("[scaffold] Generation pass")
	debug.DebugValue("[scaffold] SourceDir", opts.SourceDir)
	debug.DebugValue("[scaffold] TargetDir", opts.TargetDir)
	debug.DebugValue("[scaffold] DryRun", opts.DryRun)

	// Static files copy byte for byte: no render bindings.
	if err := runPass(opts, opts.Manifest.Static, nil, result); err != nil {
		return nil, err
	}
	// Template files render through the configuration.
	if err := runPass(opts, opts.Manifest.Template, opts.Config, result); err != nil {
		return nil, err
	}

	debug.Debug("[scaffold] Pass complete: %d records", len(result.Lines))
	return result, nil
}

// runPass expands one directive list and reconciles every task.
func runPass(opts Options, directives []manifest.FileDirective, bindings config.Configuration, result *Result) error {
	tasks, err := Expand(opts.SourceDir, opts.TargetDir, directives, opts.Config)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if opts.DoNotUpdate[filepath.Clean(task.ToPath)] {
			debug.Debug("[scaffold] Pinned, not updating: %s", task.ToPath)
			continue
		}
		strategy := opts.Manifest.StrategyForExtension(filepath.Base(task.FromPath))
		status, err := Reconcile(task.FromPath, task.ToPath, strategy, bindings, task.Onetime, opts.DryRun)
		if err != nil {
			return err
		}
		result.record(status, task.ToPath)
	}
	return nil
}
