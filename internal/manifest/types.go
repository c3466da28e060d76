package manifest

// File and directory names used by forge.
const (
	// ManifestFile is the manifest file name in a project-type data directory.
	ManifestFile = "manifest.toml"
	// ConfigFile is the per-project configuration file name in the target root.
	ConfigFile = "forge.toml"
)

// ParamType represents the declared type of a template parameter.
type ParamType string

const (
	// ParamTypeString represents a plain string parameter.
	ParamTypeString ParamType = "str"
	// ParamTypeInt represents an integer parameter.
	ParamTypeInt ParamType = "int"
	// ParamTypeGlob represents a glob-valued string parameter whose default
	// expands to a file list against the target's inventory.
	ParamTypeGlob ParamType = "str:glob"
	// ParamTypeEnum represents a string parameter restricted to Options.
	ParamTypeEnum ParamType = "enum"
)

// Merge strategy names accepted in the update-strategies section.
const (
	// StrategyDict merges structured documents key by key.
	StrategyDict = "dict"
	// StrategyText splices missing lines into the existing text.
	StrategyText = "text"
)

// FileDirective is one from/to entry in a manifest's static or template list.
type FileDirective struct {
	// From is the source path pattern, relative to the data directory.
	// It may contain a trailing glob suffix.
	From string `toml:"from"`
	// To is the destination path, relative to the target directory.
	// Globs are not allowed here.
	To string `toml:"to"`
	// Onetime prevents regeneration once the destination exists.
	Onetime bool `toml:"onetime,omitempty"`
	// Oname overrides the destination file name.
	Oname string `toml:"oname,omitempty"`
	// AddCopyright requests a copyright header on the generated file.
	AddCopyright bool `toml:"add_copyright,omitempty"`
	// If names a configuration parameter gating this directive.
	// A falsy value skips the directive.
	If string `toml:"if,omitempty"`
}

// ParameterSpec declares one template parameter.
type ParameterSpec struct {
	// Type is the declared parameter type tag.
	Type ParamType `toml:"type"`
	// Default is the literal default, a "parameter:<name>" reference,
	// a computed token such as "current_year()", or a glob pattern for
	// str:glob parameters. Nil means the parameter is required.
	Default interface{} `toml:"default,omitempty"`
	// Required marks the parameter as mandatory in user configuration.
	Required bool `toml:"required,omitempty"`
	// Private hides the parameter from the scaffolded config file.
	Private bool `toml:"private,omitempty"`
	// Options lists the allowed values for enum parameters.
	Options []string `toml:"options,omitempty"`
}

// HasDefault reports whether the spec declares a default value.
func (s ParameterSpec) HasDefault() bool {
	return s.Default != nil
}

// DependencyRecord describes one vendored dependency.
type DependencyRecord struct {
	// Name is the dependency name; vendored under vendor/<name>.
	Name string `toml:"name"`
	// GitURL is the clone URL.
	GitURL string `toml:"git_url"`
	// GitCheckout is the branch, tag, or commit to check out.
	GitCheckout string `toml:"git_checkout"`
	// AddToCMake adds the dependency to generated CMakeLists.txt files.
	AddToCMake bool `toml:"add_to_cmake,omitempty"`
	// LinkLibrarySpec overrides how the library appears in
	// target_link_libraries; empty means the dependency name.
	LinkLibrarySpec string `toml:"link_library_spec,omitempty"`
}

// CopyrightTask configures the copyright header maintenance task.
type CopyrightTask struct {
	// Copy is the header text template, rendered with the configuration.
	Copy string `toml:"copy"`
}

// TaskSection holds auxiliary task settings.
type TaskSection struct {
	Copyright CopyrightTask `toml:"copyright"`
}

// Manifest is the declarative description of which files to copy or render
// and which parameters configure them. Loaded once per run, immutable after.
type Manifest struct {
	// Static lists directives whose content is copied byte for byte.
	Static []FileDirective `toml:"static"`
	// Template lists directives whose content is rendered before writing.
	Template []FileDirective `toml:"template"`
	// Parameters maps parameter names to their specs.
	Parameters map[string]ParameterSpec `toml:"template-parameters"`
	// UpdateStrategies maps file extensions (without dot) to the merge
	// strategy used when a destination has diverged.
	UpdateStrategies map[string]string `toml:"update-strategies"`
	// Deps lists vendored dependencies.
	Deps []DependencyRecord `toml:"deps"`
	// Tasks holds auxiliary task settings such as the copyright header.
	Tasks TaskSection `toml:"task,omitempty"`
}

// StrategyForExtension returns the merge strategy for a source file name,
// checking every compound suffix (e.g. both "json" and "in" for
// "settings.json.in"); the outermost mapped suffix wins. Falls back to the
// text strategy when no suffix is mapped.
func (m *Manifest) StrategyForExtension(fileName string) string {
	strategy := StrategyText
	for _, ext := range suffixes(fileName) {
		if s, ok := m.UpdateStrategies[ext]; ok {
			strategy = s
		}
	}
	return strategy
}

// suffixes returns every extension of fileName without the leading dot,
// innermost first: "a.json.in" -> ["json", "in"].
func suffixes(fileName string) []string {
	var exts []string
	rest := fileName
	for {
		i := indexLastDot(rest)
		if i < 0 {
			break
		}
		exts = append(exts, rest[i+1:])
		rest = rest[:i]
	}
	// Reverse to innermost-first order.
	for i, j := 0, len(exts)-1; i < j; i, j = i+1, j-1 {
		exts[i], exts[j] = exts[j], exts[i]
	}
	return exts
}

func indexLastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
		if s[i] == '/' {
			return -1
		}
	}
	return -1
}
