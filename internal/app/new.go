package app

import (
	"context"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/inventory"
	"github.com/atheneum-dev/forge/internal/project"
	"github.com/atheneum-dev/forge/internal/scaffold"
)

// NewOptions configures project creation.
type NewOptions struct {
	// TargetDir is the directory to create the project in.
	TargetDir string
	// ProjectName names the new project.
	ProjectName string
	// Type selects the project variant.
	Type project.Type
	// DataDir is the root holding per-type template trees.
	DataDir string
	// Force overwrites an existing forge.toml.
	Force bool
	// GitInit initializes a git repository and installs hooks afterwards.
	GitInit bool
	// DryRun reports planned actions without writing files or running
	// commands. The configuration file is still scaffolded.
	DryRun bool
	// Prompt supplies values for required parameters beyond the project
	// name. Nil leaves them as placeholder lines in forge.toml.
	Prompt PromptFunc
}

// NewResult reports what project creation did.
type NewResult struct {
	// ConfigPath is the scaffolded forge.toml location.
	ConfigPath string
	// Lines are the per-file status records from the generation pass.
	Lines []string
	// Counts tallies generation outcomes by status.
	Counts map[scaffold.Status]int
	// HooksRan reports whether post-generation command batches executed.
	HooksRan bool
}

// NewProject scaffolds forge.toml for a fresh project, generates the
// file tree, and optionally initializes git, vendored submodules, and
// pre-commit hooks.
func NewProject(ctx context.Context, opts NewOptions) (*NewResult, error) {
	pc, err := loadProjectContext(opts.DataDir, opts.Type)
	if err != nil {
		return nil, err
	}

	configPath, err := InitConfig(InitConfigOptions{
		TargetDir:   opts.TargetDir,
		ProjectName: opts.ProjectName,
		Type:        opts.Type,
		DataDir:     opts.DataDir,
		Force:       opts.Force,
		Prompt:      opts.Prompt,
	})
	if err != nil {
		return nil, err
	}
	inv, err := inventory.Collect(opts.TargetDir)
	if err != nil {
		return nil, NewAppError(ConfigFailed, "failed to inventory project directory", err)
	}

	// Read the scaffolded file back so generation sees exactly what the
	// user would after editing nothing.
	pf, err := config.LoadProjectFile(configPath)
	if err != nil {
		return nil, NewAppError(ConfigFailed,
			"scaffolded configuration has unresolved required parameters, fill them in and run update", err)
	}
	merged, err := resolveConfiguration(pc, opts.Type, pf.Values, inv)
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

	result := &NewResult{
		ConfigPath: configPath,
		Lines:      genResult.Lines,
		Counts:     genResult.Counts,
	}

	if opts.GitInit && !opts.DryRun {
		batches := project.GitInitBatch(opts.TargetDir)
		if pc.variant.Vendored {
			batches = append(batches, project.VendorBatch(opts.TargetDir, pf.Deps, false)...)
		}
		batches = append(batches, project.PreCommitBatch(opts.TargetDir, pc.variant)...)
		if err := project.Run(ctx, batches); err != nil {
			return result, NewAppError(CommandsFailed, "post-generation command failed", err)
		}
		result.HooksRan = len(batches) > 0
	}
	return result, nil
}
