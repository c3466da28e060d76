package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/manifest"
)

func TestReconcileOnetimeSkip(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "src.txt")
	to := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(from, []byte("new content\n"), 0644))
	require.NoError(t, os.WriteFile(to, []byte("old content\n"), 0644))

	status, err := Reconcile(from, to, manifest.StrategyText, nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, StatusSkippedOnetime, status)

	// Zero writes regardless of content differences.
	data, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "old content\n", string(data))
}

func TestReconcileDryRun(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "src.txt")
	to := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(from, []byte("x\n"), 0644))

	status, err := Reconcile(from, to, manifest.StrategyText, nil, false, true)
	require.NoError(t, err)
	assert.Equal(t, StatusDryRunCopy, status)

	status, err = Reconcile(from, to, manifest.StrategyText, config.Configuration{}, false, true)
	require.NoError(t, err)
	assert.Equal(t, StatusDryRunRender, status)

	assert.NoFileExists(t, to)
}

func TestReconcileMissingSource(t *testing.T) {
	dir := t.TempDir()
	status, err := Reconcile(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"),
		manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusSkippedNoSource, status)
}

func TestReconcileDirectory(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "srcdir")
	to := filepath.Join(dir, "dstdir")
	require.NoError(t, os.MkdirAll(filepath.Join(from, "inner"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(from, "file.txt"), []byte("x\n"), 0644))

	status, err := Reconcile(from, to, manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusMakeDir, status)
	assert.DirExists(t, to)

	// Contents are never copied by the directory path.
	entries, err := os.ReadDir(to)
	require.NoError(t, err)
	assert.Empty(t, entries)

	status, err = Reconcile(from, to, manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpToDateDir, status)
}

func TestReconcileCopyThenUpToDate(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "src.txt")
	to := filepath.Join(dir, "nested", "dst.txt")
	require.NoError(t, os.WriteFile(from, []byte("content\n"), 0644))

	status, err := Reconcile(from, to, manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusCopy, status)

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(data))

	// Second pass with no changes is idempotent.
	status, err = Reconcile(from, to, manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpToDateFile, status)
}

func TestReconcileCopyDivergedMerges(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "src.txt")
	to := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(from, []byte("L1\nL2\n"), 0644))
	require.NoError(t, os.WriteFile(to, []byte("L1\ncustom\n"), 0644))

	status, err := Reconcile(from, to, manifest.StrategyText, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdate, status)

	merged, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "L1\nL2\ncustom\n", string(merged))

	// Snapshots left behind as a manual-resolution aid.
	assert.FileExists(t, to+".ours")
	assert.FileExists(t, to+".theirs")
}

func TestReconcileRender(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "CMakeLists.txt.j2")
	to := filepath.Join(dir, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(from, []byte("project({{ .project_name | lower }})\n"), 0644))

	bindings := config.Configuration{"project_name": "Atheneum"}
	status, err := Reconcile(from, to, manifest.StrategyText, bindings, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusRender, status)

	data, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "project(atheneum)\n", string(data))

	// Unchanged bindings make the second pass a no-op.
	status, err = Reconcile(from, to, manifest.StrategyText, bindings, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpToDateFile, status)
}

func TestReconcileRenderDivergedMergesRenderedContent(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "notes.txt.j2")
	to := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(from, []byte("header {{ .project_name }}\nsecond\n"), 0644))
	require.NoError(t, os.WriteFile(to, []byte("header Atheneum\nuser line\n"), 0644))

	bindings := config.Configuration{"project_name": "Atheneum"}
	status, err := Reconcile(from, to, manifest.StrategyText, bindings, false, false)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdate, status)

	merged, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "header Atheneum\nsecond\nuser line\n", string(merged))

	// The rendered string is the incoming side, not the raw template.
	theirs, err := os.ReadFile(to + ".theirs")
	require.NoError(t, err)
	assert.Equal(t, "header Atheneum\nsecond\n", string(theirs))
}

func TestFormatStatus(t *testing.T) {
	line := FormatStatus(StatusCopy, "/tmp/x")
	assert.Equal(t, "COPY                : /tmp/x", line)

	line = FormatStatus(StatusSkippedNoSource, "/tmp/x")
	assert.Equal(t, "SKIPPED (no source file): /tmp/x", line)
}
