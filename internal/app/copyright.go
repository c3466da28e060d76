package app

import (
	"fmt"
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/copyright"
	"github.com/atheneum-dev/forge/internal/inventory"
	"github.com/atheneum-dev/forge/internal/manifest"
	"github.com/atheneum-dev/forge/internal/project"
)

// CopyrightOptions configures a copyright header refresh.
type CopyrightOptions struct {
	// TargetDir is the project directory holding forge.toml.
	TargetDir string
	// DataDir is the root holding per-type template trees.
	DataDir string
}

// RefreshCopyright rewrites the copyright header in every recognized
// source file under the target, using the header template declared in
// the manifest's copyright task.
func RefreshCopyright(opts CopyrightOptions) error {
	typ := project.TypeOf(opts.TargetDir)
	if typ == project.TypeNone {
		return NewAppError(InvalidProjectType,
			fmt.Sprintf("%s has no forge.toml with a recognized project_type", opts.TargetDir), nil)
	}
	pc, err := loadProjectContext(opts.DataDir, typ)
	if err != nil {
		return err
	}
	if pc.manifest.Tasks.Copyright.Copy == "" {
		return NewAppError(CopyrightFailed,
			fmt.Sprintf("the %s manifest declares no copyright header template", typ), nil)
	}

	pf, err := config.LoadProjectFile(filepath.Join(opts.TargetDir, manifest.ConfigFile))
	if err != nil {
		return NewAppError(ConfigFailed, "failed to load configuration file", err)
	}
	inv, err := inventory.Collect(opts.TargetDir)
	if err != nil {
		return NewAppError(ConfigFailed, "failed to inventory project directory", err)
	}
	merged, err := resolveConfiguration(pc, typ, pf.Values, inv)
	if err != nil {
		return err
	}

	if err := copyright.Apply(opts.TargetDir, inv, pc.manifest.Tasks.Copyright.Copy, merged); err != nil {
		return NewAppError(CopyrightFailed, "failed to refresh copyright headers", err)
	}
	return nil
}
