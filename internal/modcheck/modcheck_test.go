package modcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goMod = `module example.com/app

go 1.24

require (
	example.com/tuples v0.1.0
	github.com/stretchr/testify v1.11.1 // indirect
)
`

func TestParse(t *testing.T) {
	m, err := Parse("/work/app/go.mod", []byte(goMod))
	require.NoError(t, err)

	assert.Equal(t, "example.com/app", m.Path)
	assert.Equal(t, "1.24", m.GoVersion)
	assert.Equal(t, map[string]string{
		"example.com/tuples":          "v0.1.0",
		"github.com/stretchr/testify": "v1.11.1",
	}, m.Requires)
	assert.True(t, m.Has("example.com/tuples"))
	assert.True(t, m.Has("example.com/app"))
	assert.False(t, m.Has("example.com/other"))
	require.NoError(t, m.CheckGoVersion())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("go.mod", []byte("go 1.24\n"))
	require.Error(t, err)

	_, err = Parse("go.mod", []byte("module (\n"))
	require.Error(t, err)
}

func TestCheckGoVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.24", true},
		{"1.24.3", true},
		{"1.25", true},
		{"1.23.4", false},
		{"1.21", false},
		{"", false},
	}

	for _, tt := range tests {
		m := &Module{Path: "example.com/app", GoVersion: tt.version}

		err := m.CheckGoVersion()
		if tt.ok {
			assert.NoError(t, err, tt.version)
		} else {
			assert.ErrorIs(t, err, ErrGoVersion, tt.version)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(goMod), 0o644))

	deep := filepath.Join(root, "internal", "tuples")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	m, err := Find(deep)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", m.Path)

	path, err := m.ImportPath(deep)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app/internal/tuples", path)

	path, err = m.ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", path)

	_, err = m.ImportPath(filepath.Dir(root))
	require.Error(t, err)
}
