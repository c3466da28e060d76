package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/inventory"
	"github.com/atheneum-dev/forge/internal/manifest"
	"github.com/atheneum-dev/forge/internal/project"
)

// InitConfigOptions configures standalone forge.toml scaffolding.
type InitConfigOptions struct {
	// TargetDir is the directory to place forge.toml in.
	TargetDir string
	// ProjectName names the project.
	ProjectName string
	// Type selects the project variant.
	Type project.Type
	// DataDir is the root holding per-type template trees.
	DataDir string
	// Force overwrites an existing forge.toml.
	Force bool
	// Prompt supplies values for required parameters beyond the project
	// name. Nil leaves them as placeholder lines.
	Prompt PromptFunc
}

// InitConfig scaffolds forge.toml for a project without generating any
// files, so the configuration can be reviewed and edited first.
func InitConfig(opts InitConfigOptions) (string, error) {
	pc, err := loadProjectContext(opts.DataDir, opts.Type)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
		return "", NewAppError(ConfigFailed, "failed to create project directory", err)
	}
	configPath := filepath.Join(opts.TargetDir, manifest.ConfigFile)
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return "", NewAppError(ConfigExists,
			fmt.Sprintf("%s already exists, use --force to overwrite", configPath), nil)
	}

	inv, err := inventory.Collect(opts.TargetDir)
	if err != nil {
		return "", NewAppError(ConfigFailed, "failed to inventory project directory", err)
	}

	values := config.Configuration{
		"project_name":        opts.ProjectName,
		config.KeyProjectType: string(opts.Type),
	}
	if err := promptMissingRequired(pc.manifest.Parameters, values, opts.Prompt); err != nil {
		return "", err
	}

	starter, err := config.Starter(pc.manifest, values, inv)
	if err != nil {
		return "", NewAppError(ConfigFailed, "failed to scaffold configuration file", err)
	}
	if err := config.WriteProjectFile(configPath, starter); err != nil {
		return "", NewAppError(ConfigFailed, "failed to write configuration file", err)
	}
	return configPath, nil
}
