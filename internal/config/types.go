package config

import (
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/manifest"
)

// Reserved forge.toml keys handled by the file loader rather than the
// parameter merge.
const (
	// KeyProjectType stores the project type tag in forge.toml.
	KeyProjectType = "project_type"
	// KeySkip stores the list of destination paths pinned against updates.
	KeySkip = "skip"
	// KeyDeps stores the vendored dependency records.
	KeyDeps = "deps"
)

// RecognizedKeys are user config keys tolerated without a matching
// parameter spec; anything else undeclared triggers a warning.
var RecognizedKeys = map[string]bool{
	"project_name": true,
	"deps":         true,
}

// Configuration is the resolved parameter map handed to the template
// engine as render bindings. Computed once per run, immutable during
// generation.
type Configuration map[string]interface{}

// ProjectFile is the typed view of a target's forge.toml: the project
// type tag, the pinned-path list, the vendored dependencies, and the
// user-supplied parameter values.
type ProjectFile struct {
	// ProjectType is the project type tag ("cpp", "python").
	ProjectType string
	// Skip lists target-relative paths excluded from reconciliation.
	Skip []string
	// Deps lists vendored dependency records.
	Deps []manifest.DependencyRecord
	// Values holds the remaining user-supplied parameter values.
	Values Configuration
}

// SkipSet resolves the Skip entries against targetDir, producing the
// do-not-update set consulted on every reconciliation pass. Derived once,
// read-only during generation.
func (p *ProjectFile) SkipSet(targetDir string) map[string]bool {
	set := make(map[string]bool, len(p.Skip))
	for _, rel := range p.Skip {
		set[filepath.Clean(filepath.Join(targetDir, rel))] = true
	}
	return set
}
