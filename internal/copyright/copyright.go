// Package copyright generates and refreshes per-file copyright headers.
// Header text is rendered once from the configuration, then prefixed
// with the line-comment marker matching each file's extension.
package copyright

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/scaffold"
)

// commentPrefixes maps file-name patterns to line-comment markers.
var commentPrefixes = map[string]string{
	"*.cpp":          "// ",
	"*.cpp.in":       "// ",
	"*.h":            "// ",
	"*.h.in":         "// ",
	"*.c":            "// ",
	"CMakeLists.txt": "# ",
	"*.py":           "# ",
}

// HeaderLines renders the copyright template with the configuration and
// splits it into lines.
func HeaderLines(templateText string, cfg config.Configuration) ([]string, error) {
	out, err := scaffold.Render(templateText, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render copyright template: %w", err)
	}
	return strings.Split(strings.TrimRight(out, "\n"), "\n"), nil
}

// ForFiles maps each file that matches a known comment-prefix pattern to
// its prefixed header lines. Files with no known prefix are skipped.
func ForFiles(files []string, headerLines []string) map[string][]string {
	result := make(map[string][]string)
	for _, f := range files {
		base := path.Base(f)
		for pattern, prefix := range commentPrefixes {
			ok, err := matchName(pattern, base)
			if err != nil || !ok {
				continue
			}
			prefixed := make([]string, len(headerLines))
			for i, line := range headerLines {
				prefixed[i] = prefix + line
			}
			result[f] = prefixed
			break
		}
	}
	return result
}

// matchName matches compound patterns like "*.cpp.in" that path.Match
// alone handles fine, plus exact names.
func matchName(pattern, name string) (bool, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name, nil
	}
	return path.Match(pattern, name)
}

// Update refreshes the header of one file's content. When the leading
// lines substantially match the expected header (same comment marker and
// leading token, differing only in details like the year range), they are
// replaced; otherwise the header is prepended above the existing content.
func Update(content string, headerLines []string) string {
	fileLines := strings.Split(content, "\n")
	matches := headMatchesSubstantially(fileLines, headerLines)

	var out []string
	out = append(out, headerLines...)
	if matches {
		out = append(out, fileLines[min(len(headerLines), len(fileLines)):]...)
	} else {
		out = append(out, fileLines...)
	}
	return strings.Join(out, "\n")
}

// headMatchesSubstantially compares the file's leading lines against the
// header, token-wise: the comment marker and the first word after it must
// agree for every compared line.
func headMatchesSubstantially(fileLines, headerLines []string) bool {
	for i, hline := range headerLines {
		if i >= len(fileLines) {
			continue
		}
		line := fileLines[i]
		if hline == line {
			continue
		}
		htoks := strings.Fields(hline)
		ltoks := strings.Fields(line)
		if len(htoks) > 1 && len(ltoks) > 1 {
			if htoks[1] != ltoks[1] || htoks[0] != ltoks[0] {
				return false
			}
			continue
		}
		if len(htoks) > 0 && len(ltoks) > 0 {
			if htoks[0] != ltoks[0] {
				return false
			}
			continue
		}
		return false
	}
	return true
}

// Apply refreshes copyright headers for every matching inventory file
// under root. A file that does not decode as UTF-8 is a fatal condition
// naming the offending file.
func Apply(root string, files []string, templateText string, cfg config.Configuration) error {
	headerLines, err := HeaderLines(templateText, cfg)
	if err != nil {
		return err
	}

	for file, prefixed := range ForFiles(files, headerLines) {
		full := filepath.Join(root, file)
		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", full, err)
		}
		if !utf8.Valid(data) {
			return fmt.Errorf("cannot update copyright header: %s is not valid UTF-8", full)
		}
		updated := Update(string(data), prefixed)
		if updated == string(data) {
			continue
		}
		if err := os.WriteFile(full, []byte(updated), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", full, err)
		}
		debug.Debug("[copyright] Updated header in %s", full)
	}
	return nil
}
