package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atheneum-dev/forge/internal/config"
	"github.com/atheneum-dev/forge/internal/manifest"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestExpandLiteralFile(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "gitignore", "build/\n")

	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "gitignore", To: "", Oname: ".gitignore"},
	}, nil)
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(src, "gitignore"), tasks[0].FromPath)
	assert.Equal(t, filepath.Join(tgt, ".gitignore"), tasks[0].ToPath)
	assert.False(t, tasks[0].Onetime)
}

func TestExpandDefaultsToSourceBaseName(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "CMakeLists.txt", "project(x)\n")

	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "CMakeLists.txt", To: "", Onetime: true},
	}, nil)
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(tgt, "CMakeLists.txt"), tasks[0].ToPath)
	assert.True(t, tasks[0].Onetime)
}

func TestExpandDirectoryMapsOntoDestination(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "pkg"), 0755))

	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "pkg", To: "myproject"},
	}, nil)
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(src, "pkg"), tasks[0].FromPath)
	assert.Equal(t, filepath.Join(tgt, "myproject"), tasks[0].ToPath)
}

func TestExpandGlob(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "include/proj/a.h", "// a\n")
	writeSource(t, src, "include/proj/b.h", "// b\n")
	writeSource(t, src, "include/proj/notes.txt", "x\n")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "include", "proj", "sub"), 0755))

	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "include/proj/*.h", To: "include/proj"},
	}, nil)
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	var names []string
	for _, task := range tasks {
		names = append(names, filepath.Base(task.ToPath))
		assert.Equal(t, filepath.Join(tgt, "include", "proj"), filepath.Dir(task.ToPath))
	}
	assert.ElementsMatch(t, []string{"a.h", "b.h"}, names)
}

func TestExpandRejectsGlobInTo(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()

	_, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "gitignore", To: "docs/*.md"},
	}, nil)
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, FatalConfig, serr.Type)
}

func TestExpandGateParameter(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "clang-format", "BasedOnStyle: Google\n")

	cfg := config.Configuration{"use_clang_format": false}
	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "clang-format", To: "", Oname: ".clang-format", If: "use_clang_format"},
	}, cfg)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	cfg["use_clang_format"] = true
	tasks, err = Expand(src, tgt, []manifest.FileDirective{
		{From: "clang-format", To: "", Oname: ".clang-format", If: "use_clang_format"},
	}, cfg)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestExpandCreatesDestinationDirsEagerly(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "settings.json", "{}\n")

	// An existing destination directory receives the file directly.
	require.NoError(t, os.MkdirAll(filepath.Join(tgt, ".vscode"), 0755))
	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "settings.json", To: ".vscode"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(tgt, ".vscode", "settings.json"), tasks[0].ToPath)

	// A destination that does not exist yet only gets its parent created.
	_, err = Expand(src, tgt, []manifest.FileDirective{
		{From: "settings.json", To: "docs/api"},
	}, nil)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tgt, "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoDirExists(t, filepath.Join(tgt, "docs", "api"))
}

func TestExpandPreservesDirectiveOrder(t *testing.T) {
	src := t.TempDir()
	tgt := t.TempDir()
	writeSource(t, src, "first.txt", "1\n")
	writeSource(t, src, "second.txt", "2\n")

	tasks, err := Expand(src, tgt, []manifest.FileDirective{
		{From: "second.txt", To: ""},
		{From: "first.txt", To: ""},
	}, nil)
	require.NoError(t, err)

	require.Len(t, tasks, 2)
	assert.Equal(t, "second.txt", filepath.Base(tasks[0].ToPath))
	assert.Equal(t, "first.txt", filepath.Base(tasks[1].ToPath))
}
