package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		pattern  string
		wantPath string
		wantGlob string
	}{
		{"literal file", "/a/b", "c/d.txt", "/a/b/c/d.txt", ""},
		{"trailing glob", "/a/b", "c/*.txt", "/a/b/c", "*.txt"},
		{"leading doublestar", "/a/b", "**/*.cpp", "/a/b", "**/*.cpp"},
		{"wildcard mid-pattern", "/a/b", "c/*/d.txt", "/a/b/c", "*/d.txt"},
		{"literal after wildcard stays glob", "/a/b", "c/*.d/e.txt", "/a/b/c", "*.d/e.txt"},
		{"empty pattern", "/a/b", "", "/a/b", ""},
		{"single segment glob", "/a/b", "*.h", "/a/b", "*.h"},
		{"question mark wildcard", "/a/b", "c/file?.txt", "/a/b/c", "file?.txt"},
		{"character class wildcard", "/a/b", "src/[a-z]*.cpp", "/a/b/src", "[a-z]*.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPattern(tt.baseDir, tt.pattern)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantGlob, got.Glob)
			assert.Equal(t, tt.wantGlob != "", got.HasGlob())
		})
	}
}
