package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// LoadProjectFile reads a target's forge.toml into its typed view.
// Reserved keys (project_type, skip, deps) are split out; everything else
// is a user-supplied parameter value.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewFileError(NotFound, path, "configuration file not found", err)
		}
		return nil, NewFileError(Invalid, path, "failed to read configuration file", err)
	}
	return ParseProjectFile(data, path)
}

// ParseProjectFile decodes forge.toml data. The path is used for error
// reporting only.
func ParseProjectFile(data []byte, path string) (*ProjectFile, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, NewFileError(Invalid, path,
			"incorrect configuration file detected, check for invalid key-value pairs", err)
	}

	var reserved struct {
		ProjectType string                      `toml:"project_type"`
		Skip        []string                    `toml:"skip"`
		Deps        []manifest.DependencyRecord `toml:"deps"`
	}
	if err := toml.Unmarshal(data, &reserved); err != nil {
		return nil, NewFileError(Invalid, path, "invalid reserved key in configuration file", err)
	}

	values := make(Configuration, len(raw))
	for k, v := range raw {
		if k == KeyProjectType || k == KeySkip {
			continue
		}
		// deps stays in the values so templates can iterate it.
		values[k] = v
	}

	pf := &ProjectFile{
		ProjectType: reserved.ProjectType,
		Skip:        reserved.Skip,
		Deps:        reserved.Deps,
		Values:      values,
	}
	debug.Debug("[config] Loaded %s: project_type=%q, values=%d, skip=%d, deps=%d",
		path, pf.ProjectType, len(pf.Values), len(pf.Skip), len(pf.Deps))
	return pf, nil
}

// WriteProjectFile writes forge.toml content to path.
func WriteProjectFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return NewFileError(Invalid, path, "failed to write configuration file", err)
	}
	return nil
}
