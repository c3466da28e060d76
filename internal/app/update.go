package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/inventory"
	"github.com/atheneum-dev/forge/internal/manifest"
	"github.com/atheneum-dev/forge/internal/project"
	"github.com/atheneum-dev/forge/internal/scaffold"
)

// UpdateOptions configures re-synchronization of an existing project.
type UpdateOptions struct {
	// TargetDir is the project directory holding forge.toml.
	TargetDir string
	// DataDir is the root holding per-type template trees.
	DataDir string
	// InitSubmodules vendors dependency submodules after generation.
	InitSubmodules bool
	// DryRun reports planned actions without touching the filesystem.
	DryRun bool
	// Prompt supplies values for required parameters missing from
	// forge.toml. Prompted answers are used for this run only.
	Prompt PromptFunc
}

// UpdateResult reports what an update pass did.
type UpdateResult struct {
	// Type is the detected project type.
	Type project.Type
	// Lines are the per-file status records, in processing order.
	Lines []string
	// Counts tallies outcomes by status.
	Counts map[scaffold.Status]int
}

// UpdateProject re-synchronizes an existing project against its template
// tree: diverged files are merged, missing ones recreated, and paths
// listed under skip in forge.toml left untouched.
func UpdateProject(ctx context.Context, opts UpdateOptions) (*UpdateResult, error) {
	typ := project.TypeOf(opts.TargetDir)
	if typ == project.TypeNone {
		return nil, NewAppError(InvalidProjectType,
			fmt.Sprintf("%s has no forge.toml with a recognized project_type", opts.TargetDir), nil)
	}
	pc, err := loadProjectContext(opts.DataDir, typ)
	if err != nil {
		return nil, err
	}

	pf, err := config.LoadProjectFile(filepath.Join(opts.TargetDir, manifest.ConfigFile))
	if err != nil {
		return nil, NewAppError(ConfigFailed, "failed to load configuration file", err)
	}
	inv, err := inventory.Collect(opts.TargetDir)
	if err != nil {
		return nil, NewAppError(ConfigFailed, "failed to inventory project directory", err)
	}

	if err := promptMissingRequired(pc.manifest.Parameters, pf.Values, opts.Prompt); err != nil {
		return nil, err
	}
	merged, err := resolveConfiguration(pc, typ, pf.Values, inv)
	if err != nil {
		return nil, err
	}

	genResult, err := scaffold.Generate(scaffold.Options{
		SourceDir:   pc.sourceDir,
		TargetDir:   opts.TargetDir,
		Manifest:    generationManifest(pc, merged),
		Config:      merged,
		DoNotUpdate: pf.SkipSet(opts.TargetDir),
		DryRun:      opts.DryRun,
	})
	if err != nil {
		return nil, NewAppError(GenerateFailed, "generation pass failed", err)
	}

	result := &UpdateResult{Type: typ, Lines: genResult.Lines, Counts: genResult.Counts}

	if opts.InitSubmodules && !opts.DryRun && pc.variant.Vendored {
		batches := project.VendorBatch(opts.TargetDir, pf.Deps, false)
		if err := project.Run(ctx, batches); err != nil {
			return result, NewAppError(CommandsFailed, "submodule setup failed", err)
		}
	}
	return result, nil
}
