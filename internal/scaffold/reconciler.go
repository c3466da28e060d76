package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/debug"
	"github.com/atheneum-dev/forge/internal/merge"
)

// Status is the observable outcome of reconciling one file. The exact
// label strings are part of the contract for tooling that parses run
// output; do not reword them.
type Status string

const (
	// StatusSkippedOnetime means a one-time destination already exists.
	StatusSkippedOnetime Status = "SKIPPED (one-time)"
	// StatusSkippedNoSource means the source file does not exist.
	StatusSkippedNoSource Status = "SKIPPED (no source file)"
	// StatusMakeDir means the destination directory was created.
	StatusMakeDir Status = "MAKE DIR"
	// StatusUpToDateDir means the destination directory already exists.
	StatusUpToDateDir Status = "UP-TO-DATE(dir)"
	// StatusUpToDateFile means the destination already matches the source.
	StatusUpToDateFile Status = "UP-TO-DATE(file)"
	// StatusCopy means the source was byte-copied to a new destination.
	StatusCopy Status = "COPY"
	// StatusRender means rendered output was written to a new destination.
	StatusRender Status = "RENDER"
	// StatusUpdate means a diverged destination was merged.
	StatusUpdate Status = "UPDATE"
	// StatusDryRunCopy is the dry-run stand-in for the copy path.
	StatusDryRunCopy Status = "DRY-RUN(copy)"
	// StatusDryRunRender is the dry-run stand-in for the render path.
	StatusDryRunRender Status = "DRY-RUN(render)"
)

// statusWidth pads status labels so the path column lines up.
const statusWidth = 20

// FormatStatus renders the one-line status record for the log output.
func FormatStatus(s Status, toPath string) string {
	return fmt.Sprintf("%-*s: %s", statusWidth, string(s), toPath)
}

// Reconcile decides and performs the action for one source/destination
// pair: skip, copy, render, merge-update, or make-directory. A nil
// bindings map selects the plain copy path; a non-nil map renders the
// source as a template first. The checks run in strict priority order.
func Reconcile(fromPath, toPath, strategy string, bindings config.Configuration, onetime, dryRun bool) (Status, error) {
	if onetime && exists(toPath) {
		return StatusSkippedOnetime, nil
	}

	if dryRun {
		if bindings == nil {
			return StatusDryRunCopy, nil
		}
		return StatusDryRunRender, nil
	}

	fromInfo, err := os.Stat(fromPath)
	if os.IsNotExist(err) {
		return StatusSkippedNoSource, nil
	}
	if err != nil {
		return "", NewError(IOFailed, fromPath, "failed to stat source file", err)
	}

	if fromInfo.IsDir() {
		return reconcileDir(toPath)
	}

	if bindings == nil {
		return reconcileCopy(fromPath, toPath, strategy)
	}
	return reconcileRender(fromPath, toPath, strategy, bindings)
}

// reconcileDir creates the destination directory if absent. Directory
// contents are never copied by this path.
func reconcileDir(toPath string) (Status, error) {
	if exists(toPath) {
		return StatusUpToDateDir, nil
	}
	if err := os.MkdirAll(toPath, 0755); err != nil {
		return "", NewError(IOFailed, toPath, "failed to create directory", err)
	}
	return StatusMakeDir, nil
}

// reconcileCopy handles the byte-for-byte copy path.
func reconcileCopy(fromPath, toPath, strategy string) (Status, error) {
	src, err := os.ReadFile(fromPath)
	if err != nil {
		return "", NewError(IOFailed, fromPath, "failed to read source file", err)
	}

	if !exists(toPath) {
		if err := os.MkdirAll(filepath.Dir(toPath), 0755); err != nil {
			return "", NewError(IOFailed, toPath, "failed to create parent directory", err)
		}
		if err := os.WriteFile(toPath, src, 0644); err != nil {
			return "", NewError(IOFailed, toPath, "failed to write destination file", err)
		}
		return StatusCopy, nil
	}

	dst, err := os.ReadFile(toPath)
	if err != nil {
		return "", NewError(IOFailed, toPath, "failed to read destination file", err)
	}
	if bytes.Equal(src, dst) {
		return StatusUpToDateFile, nil
	}

	debug.Debug("[scaffold] Destination diverged, merging %s via %s strategy", toPath, strategy)
	if err := merge.UpdateFile(strategy, fromPath, toPath, ""); err != nil {
		return "", NewError(IOFailed, toPath, "failed to merge destination file", err)
	}
	return StatusUpdate, nil
}

// reconcileRender handles the template path: the source is rendered with
// the bindings and the rendered string is compared and merged, never the
// raw template.
func reconcileRender(fromPath, toPath, strategy string, bindings config.Configuration) (Status, error) {
	raw, err := os.ReadFile(fromPath)
	if err != nil {
		return "", NewError(IOFailed, fromPath, "failed to read template file", err)
	}
	out, err := Render(string(raw), bindings)
	if err != nil {
		return "", NewError(RenderFailed, fromPath, "failed to render template", err)
	}

	if err := os.MkdirAll(filepath.Dir(toPath), 0755); err != nil {
		return "", NewError(IOFailed, toPath, "failed to create parent directory", err)
	}

	if !exists(toPath) {
		if err := os.WriteFile(toPath, []byte(out), 0644); err != nil {
			return "", NewError(IOFailed, toPath, "failed to write rendered file", err)
		}
		return StatusRender, nil
	}

	dst, err := os.ReadFile(toPath)
	if err != nil {
		return "", NewError(IOFailed, toPath, "failed to read destination file", err)
	}
	if string(dst) == out {
		return StatusUpToDateFile, nil
	}

	debug.Debug("[scaffold] Destination diverged, merging %s via %s strategy", toPath, strategy)
	if err := merge.UpdateFile(strategy, fromPath, toPath, out); err != nil {
		return "", NewError(IOFailed, toPath, "failed to merge destination file", err)
	}
	return StatusUpdate, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
