package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/atheneum-dev/forge/internal/manifest"
)

// depsTemplateBlock is the commented [[deps]] skeleton appended to every
// scaffolded forge.toml.
const depsTemplateBlock = `# [[deps]]
# name = "" # <- name of the dependency; vendor/<name>
# git_url = "" # <- add the url used to checkout this repository
# git_checkout = "" # <- add the branch, sha, or tag to check out
# add_to_cmake = true # <- if true, add to CMakeLists.txt files
# link_library_spec = "" # <- how library should appear in target_link_library(.); if blank, use project name`

// Starter renders the initial forge.toml for a new project.
//
// Known values (project type, project name, anything already answered)
// become real key-value lines. Remaining required parameters become
// fill-me-in placeholder lines. Parameters with defaults appear as
// commented lines showing the derived value. Private parameters are
// omitted. Manifest deps become [[deps]] blocks sorted by name, followed
// by the commented deps skeleton.
func Starter(m *manifest.Manifest, values Configuration, inv []string) (string, error) {
	var known, required, defaults []string

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line, err := tomlLine(k, values[k])
		if err != nil {
			return "", err
		}
		known = append(known, line)
	}

	names := make([]string, 0, len(m.Parameters))
	for name := range m.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, p := range names {
		spec := m.Parameters[p]
		if spec.Private {
			continue
		}
		if _, have := values[p]; have {
			continue
		}
		if spec.HasDefault() {
			d, err := DeriveDefault(m.Parameters, p, inv)
			if err != nil {
				return "", err
			}
			line, err := tomlLine(p, d)
			if err != nil {
				return "", err
			}
			defaults = append(defaults, commentOut(line))
		} else {
			required = append(required, fmt.Sprintf("%s = # <-- %s", p, spec.Type))
		}
	}

	var b strings.Builder
	for _, line := range known {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, line := range append(required, defaults...) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(depsBlocks(m.Deps))
	b.WriteString("\n")
	return b.String(), nil
}

// commentOut prefixes every line of a rendered TOML fragment. Derived
// defaults such as glob file lists marshal as multi-line array-of-tables
// fragments; commenting line-wise keeps the scaffolded file parseable.
func commentOut(fragment string) string {
	lines := strings.Split(fragment, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "#"
		} else {
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// tomlLine marshals a single key-value pair as one TOML line.
func tomlLine(key string, value interface{}) (string, error) {
	out, err := toml.Marshal(map[string]interface{}{key: value})
	if err != nil {
		return "", NewFileError(Invalid, "", fmt.Sprintf("failed to marshal default for %q", key), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// depsBlocks renders manifest dependencies as [[deps]] blocks, sorted by
// name, then appends the commented skeleton.
func depsBlocks(deps []manifest.DependencyRecord) string {
	sorted := make([]manifest.DependencyRecord, len(deps))
	copy(sorted, deps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var lines []string
	for _, dep := range sorted {
		lines = append(lines, "[[deps]]")
		lines = append(lines, fmt.Sprintf("name = %q", dep.Name))
		lines = append(lines, fmt.Sprintf("git_url = %q", dep.GitURL))
		lines = append(lines, fmt.Sprintf("git_checkout = %q", dep.GitCheckout))
		if dep.AddToCMake {
			lines = append(lines, "add_to_cmake = true")
		} else {
			lines = append(lines, "add_to_cmake = false")
		}
		if dep.LinkLibrarySpec != "" {
			lines = append(lines, fmt.Sprintf("link_library_spec = %q", dep.LinkLibrarySpec))
		}
	}
	lines = append(lines, depsTemplateBlock)
	return strings.Join(lines, "\n")
}
