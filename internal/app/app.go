// Package app implements the forge workflows: creating a project from a
// template tree, re-synchronizing an existing project, and refreshing
// copyright headers. Workflows wire the manifest, configuration,
// inventory, scaffold, and project packages together; the CLI layer only
// parses flags and prints results.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
	"github.com/atheneum-dev/forge/internal/project"
)

// PromptFunc supplies a value for a required parameter that is missing
// from the configuration. Nil means missing parameters are an error.
type PromptFunc func(name string, spec manifest.ParameterSpec) (interface{}, error)

// projectContext is what every workflow needs loaded: the variant, its
// template tree, and the manifest.
type projectContext struct {
	variant   project.Variant
	sourceDir string
	manifest  *manifest.Manifest
}

// loadProjectContext resolves a project type against the data root and
// loads its manifest.
func loadProjectContext(dataDir string, typ project.Type) (*projectContext, error) {
	variant, err := project.VariantFor(typ)
	if err != nil {
		return nil, NewAppError(InvalidProjectType, "cannot resolve project type", err)
	}
	sourceDir := filepath.Join(dataDir, variant.SourceSubdir)
	if info, err := os.Stat(sourceDir); err != nil || !info.IsDir() {
		return nil, NewAppError(SourceMissing,
			fmt.Sprintf("template data directory %s does not exist", sourceDir), err)
	}
	m, err := manifest.Load(filepath.Join(sourceDir, manifest.ManifestFile))
	if err != nil {
		return nil, NewAppError(SourceMissing, "failed to load manifest", err)
	}
	debug.Debug("[app] Loaded %s manifest from %s", typ, sourceDir)
	return &projectContext{variant: variant, sourceDir: sourceDir, manifest: m}, nil
}

// promptMissingRequired fills values with prompted answers for every
// non-private parameter that has no default and no value yet. Parameter
// names are visited in sorted order so prompting is deterministic.
func promptMissingRequired(specs map[string]manifest.ParameterSpec, values config.Configuration, prompt PromptFunc) error {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := specs[name]
		if spec.Private || spec.HasDefault() {
			continue
		}
		if _, have := values[name]; have {
			continue
		}
		if prompt == nil {
			continue
		}
		v, err := prompt(name, spec)
		if err != nil {
			return NewAppError(ConfigFailed,
				fmt.Sprintf("no value supplied for required parameter %q", name), err)
		}
		values[name] = v
	}
	return nil
}

// generationManifest returns the manifest used for a generation pass,
// with the variant's extra static directives prepended.
func generationManifest(pc *projectContext, cfg config.Configuration) *manifest.Manifest {
	if pc.variant.ExtraStatic == nil {
		return pc.manifest
	}
	extra := pc.variant.ExtraStatic(cfg)
	if len(extra) == 0 {
		return pc.manifest
	}
	m := *pc.manifest
	m.Static = append(append([]manifest.FileDirective{}, extra...), pc.manifest.Static...)
	return &m
}

// resolveConfiguration merges user values with manifest defaults against
// the target's file inventory and re-tags the project type so templates
// can reference it.
func resolveConfiguration(pc *projectContext, typ project.Type, userValues config.Configuration, inv []string) (config.Configuration, error) {
	merged, err := config.Merge(userValues, pc.manifest.Parameters, inv)
	if err != nil {
		return nil, NewAppError(ConfigFailed, "error while processing config file", err)
	}
	merged[config.KeyProjectType] = string(typ)
	return merged, nil
}
