// Package project models the supported project kinds and the external
// command batches run after generation (git init, vendored submodules,
// pre-commit hooks).
package project

import (
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// Type tags the kind of project a template tree produces.
type Type string

const (
	TypeNone   Type = "none"
	TypeCPP    Type = "cpp"
	TypePython Type = "python"
)

// Variant describes how one project type customizes generation.
type Variant struct {
	// Type is the tag stored in forge.toml.
	Type Type
	// SourceSubdir names the template tree under the data root.
	SourceSubdir string
	// ExtraStatic returns extra directives derived from the resolved
	// configuration, prepended to the manifest's static pass. The python
	// variant uses this to scaffold a package directory named after the
	// project.
	ExtraStatic func(cfg config.Configuration) []manifest.FileDirective
	// PreCommitCmds installs the pre-commit tool for this project kind.
	PreCommitCmds []string
	// Vendored reports whether dependencies are vendored as git submodules.
	Vendored bool
}

var variants = map[Type]Variant{
	TypeCPP: {
		Type:          TypeCPP,
		SourceSubdir:  "cpp",
		PreCommitCmds: []string{"uvx pre-commit install"},
		Vendored:      true,
	},
	TypePython: {
		Type:         TypePython,
		SourceSubdir: "python",
		ExtraStatic: func(cfg config.Configuration) []manifest.FileDirective {
			name, _ := cfg["project_name"].(string)
			if name == "" {
				return nil
			}
			return []manifest.FileDirective{{From: "", To: name}}
		},
		// uv run syncs the venv first, so pre-commit gets installed.
		PreCommitCmds: []string{"uv run pre-commit install"},
	},
}

// VariantFor resolves a project type tag to its variant record.
func VariantFor(t Type) (Variant, error) {
	v, ok := variants[t]
	if !ok {
		return Variant{}, NewUnknownTypeError(string(t))
	}
	return v, nil
}

// ParseType maps a tag string to a known Type, defaulting to TypeNone.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeCPP:
		return TypeCPP
	case TypePython:
		return TypePython
	}
	return TypeNone
}

// TypeOf reads the project type tag from the target's forge.toml. A
// missing file or an unknown tag yields TypeNone.
func TypeOf(projectDir string) Type {
	pf, err := config.LoadProjectFile(filepath.Join(projectDir, manifest.ConfigFile))
	if err != nil {
		return TypeNone
	}
	return ParseType(pf.ProjectType)
}
