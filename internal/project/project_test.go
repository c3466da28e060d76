package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/manifest"
)

func TestParseType(t *testing.T) {
	assert.Equal(t, TypeCPP, ParseType("cpp"))
	assert.Equal(t, TypePython, ParseType("python"))
	assert.Equal(t, TypeNone, ParseType(""))
	assert.Equal(t, TypeNone, ParseType("rust"))
}

func TestVariantFor(t *testing.T) {
	v, err := VariantFor(TypeCPP)
	require.NoError(t, err)
	assert.Equal(t, "cpp", v.SourceSubdir)
	assert.True(t, v.Vendored)

	v, err = VariantFor(TypePython)
	require.NoError(t, err)
	assert.False(t, v.Vendored)

	_, err = VariantFor(TypeNone)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UnknownType, perr.Type)
}

func TestPythonExtraStatic(t *testing.T) {
	v, err := VariantFor(TypePython)
	require.NoError(t, err)

	dirs := v.ExtraStatic(config.Configuration{"project_name": "atheneum"})
	require.Len(t, dirs, 1)
	assert.Equal(t, "", dirs[0].From)
	assert.Equal(t, "atheneum", dirs[0].To)

	assert.Nil(t, v.ExtraStatic(config.Configuration{}))
}

func TestTypeOf(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, TypeNone, TypeOf(dir), "missing forge.toml means untyped")

	require.NoError(t, os.WriteFile(filepath.Join(dir, manifest.ConfigFile),
		[]byte("project_type = 'cpp'\nproject_name = 'Atheneum'\n"), 0644))
	assert.Equal(t, TypeCPP, TypeOf(dir))
}

func TestVendorBatchOrderAndSkip(t *testing.T) {
	dir := t.TempDir()
	deps := []manifest.DependencyRecord{
		{Name: "spdlog", GitURL: "https://example.com/spdlog.git", GitCheckout: "v1.14.1"},
		{Name: "fmt", GitURL: "https://example.com/fmt.git", GitCheckout: "10.2.1"},
	}

	batches := VendorBatch(dir, deps, false)
	require.Len(t, batches, 4)
	assert.Equal(t, []string{"git submodule add https://example.com/fmt.git vendor/fmt"}, batches[0].Cmds)
	assert.Equal(t, filepath.Join(dir, "vendor", "fmt"), batches[1].Dir)
	assert.Equal(t, []string{"git fetch", "git checkout 10.2.1"}, batches[1].Cmds)
	assert.Equal(t, []string{"git submodule add https://example.com/spdlog.git vendor/spdlog"}, batches[2].Cmds)

	// Existing vendor directories are left alone.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor", "fmt"), 0755))
	batches = VendorBatch(dir, deps, false)
	require.Len(t, batches, 2)
	assert.Contains(t, batches[0].Cmds[0], "spdlog")

	// Dry runs report everything regardless.
	batches = VendorBatch(dir, deps, true)
	assert.Len(t, batches, 4)
}

func TestPreCommitBatch(t *testing.T) {
	cpp, err := VariantFor(TypeCPP)
	require.NoError(t, err)
	batches := PreCommitBatch("/tmp/proj", cpp)
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"uvx pre-commit install"}, batches[0].Cmds)

	assert.Nil(t, PreCommitBatch("/tmp/proj", Variant{}))
}
