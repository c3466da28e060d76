package manifest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/atheneum-dev/forge/internal/debug"
)

// Load reads and validates a manifest from the specified TOML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewErrorWithCause(NotFound, path, "manifest file not found", err)
		}
		return nil, NewErrorWithCause(Invalid, path, "failed to read manifest file", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates manifest TOML data. The path is used for
// error reporting only. Unknown keys are rejected so shape mistakes fail
// at load time instead of deep inside generation.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, NewErrorWithCause(Invalid, path, "invalid TOML syntax", err)
	}

	if err := validate(&m, path); err != nil {
		return nil, err
	}

	debug.Debug("[manifest] Loaded manifest: static=%d, template=%d, parameters=%d, strategies=%d, deps=%d",
		len(m.Static), len(m.Template), len(m.Parameters), len(m.UpdateStrategies), len(m.Deps))
	return &m, nil
}

// validate checks cross-field manifest invariants.
func validate(m *Manifest, path string) error {
	for name, strategy := range m.UpdateStrategies {
		if strategy != StrategyDict && strategy != StrategyText {
			return NewErrorWithSection(ValidationFailed, path, "update-strategies",
				fmt.Sprintf("unknown strategy %q for extension %q (want %q or %q)",
					strategy, name, StrategyDict, StrategyText))
		}
	}

	for name, spec := range m.Parameters {
		if ref, ok := spec.Default.(string); ok && strings.HasPrefix(ref, "parameter:") {
			target := strings.TrimPrefix(ref, "parameter:")
			if _, declared := m.Parameters[target]; !declared {
				return NewErrorWithSection(ValidationFailed, path, "template-parameters",
					fmt.Sprintf("parameter %q references undeclared parameter %q", name, target))
			}
		}
		if spec.Type == ParamTypeEnum && len(spec.Options) == 0 {
			return NewErrorWithSection(ValidationFailed, path, "template-parameters",
				fmt.Sprintf("enum parameter %q declares no options", name))
		}
	}

	for _, section := range []struct {
		name       string
		directives []FileDirective
	}{
		{"static", m.Static},
		{"template", m.Template},
	} {
		for _, d := range section.directives {
			if d.To != "" && strings.ContainsAny(d.To, "*?[") {
				return NewErrorWithSection(ValidationFailed, path, section.name,
					fmt.Sprintf("glob not allowed in 'to' path %q; destination must be a directory or file", d.To))
			}
			if d.From == "" && d.To == "" {
				return NewErrorWithSection(ValidationFailed, path, section.name,
					"directive must name a 'from' or 'to' path")
			}
		}
	}

	return nil
}
