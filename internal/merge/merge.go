// Package merge reconciles a freshly generated file against a destination
// that has diverged from it, without destroying user edits. Two strategies
// exist: a structured-data merge for dictionary-shaped documents and a
// conservative line splice for plain text. Neither is a true three-way
// diff; both are best-effort and idempotent when nothing changed.
package merge

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/manifest"
)

// Func merges the incoming file ("theirs") into the existing file
// ("ours") and returns the reconciled content. An empty result means no
// change is needed.
type Func func(theirsPath, oursPath string) ([]byte, error)

// strategies maps strategy names to merge functions.
var strategies = map[string]Func{
	manifest.StrategyDict: DictMerge,
	manifest.StrategyText: TextMerge,
}

// ByName returns the merge function for a strategy name.
func ByName(name string) (Func, error) {
	fn, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown merge strategy %q", name)
	}
	return fn, nil
}

// DictMerge parses both files as structured documents (format chosen by
// the destination's extension) and folds missing keys and subtrees from
// the incoming document into the existing one. Existing scalars win;
// lists become the sorted set union of both sides.
func DictMerge(theirsPath, oursPath string) ([]byte, error) {
	format := FormatOf(oursPath)

	theirsData, err := os.ReadFile(theirsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", theirsPath, err)
	}
	oursData, err := os.ReadFile(oursPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", oursPath, err)
	}

	incoming := decodeDoc(theirsData, format)
	existing := decodeDoc(oursData, format)

	merged := mergeDocs(incoming, existing)
	return encodeDoc(merged, format)
}

// mergeDocs applies the recursive dict reconciliation rule and returns
// the merged document.
func mergeDocs(incoming, existing map[string]interface{}) map[string]interface{} {
	if len(existing) == 0 {
		return incoming
	}

	keys := make([]string, 0, len(incoming))
	for k := range incoming {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		in := incoming[k]
		ex, present := existing[k]
		if !present {
			// Insert the whole incoming subtree.
			existing[k] = in
			continue
		}
		inList, inIsList := in.([]interface{})
		exList, exIsList := ex.([]interface{})
		if inIsList && exIsList {
			// Sorted set union. This discards duplicates and any
			// intentional ordering of the existing list.
			existing[k] = sortedUnion(exList, inList)
			continue
		}
		inMap, inIsMap := in.(map[string]interface{})
		exMap, exIsMap := ex.(map[string]interface{})
		if inIsMap && exIsMap {
			existing[k] = mergeDocs(inMap, exMap)
			continue
		}
		// Scalars and mismatched shapes: the existing value wins.
	}
	return existing
}

// sortedUnion returns the set union of two lists, sorted by each
// element's string form.
func sortedUnion(a, b []interface{}) []interface{} {
	seen := make(map[string]interface{}, len(a)+len(b))
	for _, v := range a {
		seen[fmt.Sprint(v)] = v
	}
	for _, v := range b {
		key := fmt.Sprint(v)
		if _, ok := seen[key]; !ok {
			seen[key] = v
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	union := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		union = append(union, seen[k])
	}
	return union
}

// TextMerge compares two text files line by line. Lines unique to the
// existing file stay where they are; lines from the incoming file that
// are missing get spliced in near their position in the incoming order.
// Identical files produce an empty result.
func TextMerge(theirsPath, oursPath string) ([]byte, error) {
	theirsData, err := os.ReadFile(theirsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", theirsPath, err)
	}
	oursData, err := os.ReadFile(oursPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", oursPath, err)
	}

	if bytes.Equal(theirsData, oursData) {
		return nil, nil
	}

	existing := SpliceLines(splitLines(string(theirsData)), splitLines(string(oursData)))
	return []byte(strings.Join(existing, "")), nil
}

// SpliceLines inserts incoming lines missing from existing at a cursor
// that tracks the incoming order, and returns the mutated existing list.
// Lines keep their terminators, so a final line without a newline only
// matches another final line without one.
func SpliceLines(incoming, existing []string) []string {
	cursor := 0
	for _, line := range incoming {
		at := indexLine(existing, line)
		if at < 0 {
			existing = append(existing, "")
			copy(existing[cursor+1:], existing[cursor:])
			existing[cursor] = line
			cursor++
		} else {
			cursor = at + 1
		}
	}
	return existing
}

func indexLine(lines []string, line string) int {
	for i, l := range lines {
		if l == line {
			return i
		}
	}
	return -1
}

// splitLines splits text into lines that keep their newline terminators,
// dropping the empty tail after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// UpdateFile reconciles an out-of-date destination. The current
// destination is snapshotted to <name>.ours and the incoming content to
// <name>.theirs as a manual-resolution aid, then the merge result is
// written back over the destination. A non-empty rendered string is used
// as the incoming side instead of the source file's bytes.
//
// An empty merge result means the files already agree; the destination
// is left untouched.
func UpdateFile(strategyName, fromPath, toPath, rendered string) error {
	fn, err := ByName(strategyName)
	if err != nil {
		return err
	}

	oursPath := toPath + ".ours"
	theirsPath := toPath + ".theirs"

	if err := copyFile(toPath, oursPath); err != nil {
		return fmt.Errorf("failed to snapshot %s: %w", toPath, err)
	}
	if rendered == "" {
		if err := copyFile(fromPath, theirsPath); err != nil {
			return fmt.Errorf("failed to snapshot %s: %w", fromPath, err)
		}
	} else {
		if err := os.WriteFile(theirsPath, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", theirsPath, err)
		}
	}

	merged, err := fn(theirsPath, oursPath)
	if err != nil {
		return err
	}
	if len(merged) == 0 {
		debug.Debug("[merge] No change needed for %s", toPath)
		return nil
	}

	if err := os.WriteFile(toPath, merged, 0644); err != nil {
		return fmt.Errorf("failed to write merge result to %s: %w", toPath, err)
	}
	debug.Debug("[merge] Updated %s via %s strategy", toPath, strategyName)
	return nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
