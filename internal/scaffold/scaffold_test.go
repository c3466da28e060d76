package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/manifest"
)

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Static: []manifest.FileDirective{
			{From: "gitignore", To: "", Oname: ".gitignore"},
		},
		Template: []manifest.FileDirective{
			{From: "README.md.j2", To: "", Oname: "README.md"},
		},
		UpdateStrategies: map[string]string{
			"txt": manifest.StrategyText,
			"md":  manifest.StrategyText,
		},
	}
}

func setupSource(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "gitignore"), []byte("build/\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "README.md.j2"),
		[]byte("# {{ .project_name }}\n"), 0644))
	return src
}

func TestGenerate(t *testing.T) {
	src := setupSource(t)
	tgt := t.TempDir()

	res, err := Generate(Options{
		SourceDir: src,
		TargetDir: tgt,
		Manifest:  testManifest(),
		Config:    config.Configuration{"project_name": "Atheneum"},
	})
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)

	assert.Equal(t, 1, res.Counts[StatusCopy])
	assert.Equal(t, 1, res.Counts[StatusRender])

	readme, err := os.ReadFile(filepath.Join(tgt, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Atheneum\n", string(readme))
}

func TestGenerateIdempotent(t *testing.T) {
	src := setupSource(t)
	tgt := t.TempDir()

	opts := Options{
		SourceDir: src,
		TargetDir: tgt,
		Manifest:  testManifest(),
		Config:    config.Configuration{"project_name": "Atheneum"},
	}

	_, err := Generate(opts)
	require.NoError(t, err)

	// Second run with no source or config changes is all up-to-date.
	res, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Counts[StatusUpToDateFile])
	assert.Zero(t, res.Counts[StatusCopy])
	assert.Zero(t, res.Counts[StatusRender])
	assert.Zero(t, res.Counts[StatusUpdate])
}

func TestGenerateDryRun(t *testing.T) {
	src := setupSource(t)
	tgt := t.TempDir()

	res, err := Generate(Options{
		SourceDir: src,
		TargetDir: tgt,
		Manifest:  testManifest(),
		Config:    config.Configuration{"project_name": "Atheneum"},
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Counts[StatusDryRunCopy])
	assert.Equal(t, 1, res.Counts[StatusDryRunRender])
	assert.NoFileExists(t, filepath.Join(tgt, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(tgt, "README.md"))
}

func TestGenerateRespectsDoNotUpdate(t *testing.T) {
	src := setupSource(t)
	tgt := t.TempDir()
	pinned := filepath.Join(tgt, "README.md")
	require.NoError(t, os.WriteFile(pinned, []byte("user owns this\n"), 0644))

	res, err := Generate(Options{
		SourceDir:   src,
		TargetDir:   tgt,
		Manifest:    testManifest(),
		Config:      config.Configuration{"project_name": "Atheneum"},
		DoNotUpdate: map[string]bool{filepath.Clean(pinned): true},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(pinned)
	require.NoError(t, err)
	assert.Equal(t, "user owns this\n", string(data))

	for _, line := range res.Lines {
		assert.False(t, strings.HasSuffix(line, "README.md"), "pinned file should not be processed: %s", line)
	}
}

func TestGenerateMissingSourceDir(t *testing.T) {
	_, err := Generate(Options{
		SourceDir: filepath.Join(t.TempDir(), "nope"),
		TargetDir: t.TempDir(),
		Manifest:  testManifest(),
	})
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out, err := Render("{{ .name | lower }} since {{ .year }}",
		config.Configuration{"name": "Atheneum", "year": 2020})
	require.NoError(t, err)
	assert.Equal(t, "atheneum since 2020", out)
}

func TestRenderMissingBinding(t *testing.T) {
	_, err := Render("{{ .missing }}", config.Configuration{})
	require.Error(t, err)
}
