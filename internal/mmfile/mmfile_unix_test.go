//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(path, []byte("mapped bytes"), 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, []byte("mapped bytes"), data)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup()) // double cleanup is a no-op
}

func TestMap_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, cleanup())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestMap_Directory(t *testing.T) {
	_, _, err := Map(t.TempDir())
	require.Error(t, err)
}
