package project

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/atheneum-dev/forge/internal/manifest"
)

// Batch is a sequence of shell-style commands run in one directory.
// Batches run in order; a nonzero exit halts everything after it.
type Batch struct {
	Dir  string
	Cmds []string
}

// IsGitRepo reports whether dir already sits inside a git work tree.
func IsGitRepo(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// GitInitBatch returns the commands that turn targetDir into a git
// repository with an initial commit. Nothing is returned when the
// directory is already inside a repository.
func GitInitBatch(targetDir string) []Batch {
	if IsGitRepo(targetDir) {
		return nil
	}
	return []Batch{{
		Dir: targetDir,
		Cmds: []string{
			"git init --initial-branch=main",
			"git add .",
			`git commit -m "Initial commit"`,
		},
	}}
}

// VendorBatch returns the commands that vendor deps as git submodules
// under targetDir/vendor, sorted by dependency name. Dependencies whose
// vendor directory already exists are skipped unless dryRun is set.
func VendorBatch(targetDir string, deps []manifest.DependencyRecord, dryRun bool) []Batch {
	sorted := make([]manifest.DependencyRecord, len(deps))
	copy(sorted, deps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var batches []Batch
	for _, dep := range sorted {
		vendorDir := filepath.Join(targetDir, "vendor", dep.Name)
		if !dryRun {
			if _, err := os.Stat(vendorDir); err == nil {
				continue
			}
		}
		batches = append(batches,
			Batch{
				Dir:  targetDir,
				Cmds: []string{fmt.Sprintf("git submodule add %s vendor/%s", dep.GitURL, dep.Name)},
			},
			Batch{
				Dir: vendorDir,
				Cmds: []string{
					"git fetch",
					fmt.Sprintf("git checkout %s", dep.GitCheckout),
				},
			},
		)
	}
	return batches
}

// PreCommitBatch returns the commands that install the pre-commit tool
// for the given variant.
func PreCommitBatch(targetDir string, v Variant) []Batch {
	if len(v.PreCommitCmds) == 0 {
		return nil
	}
	return []Batch{{Dir: targetDir, Cmds: v.PreCommitCmds}}
}
