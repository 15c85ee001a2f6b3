package filemodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockedit/internal/testutil"
)

// mirrorRemove deletes [off, off+n) from buf.
func mirrorRemove(buf []byte, off, n uint64) []byte {
	if off+n > uint64(len(buf)) {
		n = uint64(len(buf)) - off
	}
	out := make([]byte, 0, uint64(len(buf))-n)
	out = append(out, buf[:off]...)
	return append(out, buf[off+n:]...)
}

func TestRemove_InsideMappedBlock(t *testing.T) {
	content := testutil.Pattern(100)
	m, _ := openModel(t, content, nil)

	require.NoError(t, m.Remove(10, 20))
	require.Equal(t, uint64(80), m.Length())
	require.True(t, m.Modified())
	require.Equal(t, mirrorRemove(content, 10, 20), contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_HeadOfMappedBlock(t *testing.T) {
	content := testutil.Pattern(100)
	m, _ := openModel(t, content, nil)

	require.NoError(t, m.Remove(0, 30))
	require.Equal(t, mirrorRemove(content, 0, 30), contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_TailExact(t *testing.T) {
	content := testutil.Pattern(100)
	m, _ := openModel(t, content, nil)

	require.NoError(t, m.Remove(60, 40))
	require.Equal(t, content[:60], contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_WholeFile(t *testing.T) {
	m, _ := openModel(t, testutil.Pattern(100), nil)

	require.NoError(t, m.Remove(0, 100))
	require.Zero(t, m.Length())
	require.NoError(t, m.Verify())
	require.Equal(t, []byte{}, contents(t, m))

	// Everything gone: appending starts an empty chain again.
	require.NoError(t, m.Add(0, []byte("new")))
	require.Equal(t, []byte("new"), contents(t, m))
}

func TestRemove_ClampsToEnd(t *testing.T) {
	content := testutil.Pattern(100)
	m, _ := openModel(t, content, nil)

	require.NoError(t, m.Remove(90, 1000))
	require.Equal(t, uint64(90), m.Length())
	require.Equal(t, content[:90], contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_SpansBlocks(t *testing.T) {
	content := testutil.Pattern(200)
	m, _ := openModel(t, content, &Options{UndoEnabled: true, MemoryBlockSize: 16})

	// Materialise a patchwork of blocks first.
	require.NoError(t, m.Modify(50, testutil.Zeros(40)))
	require.NoError(t, m.Modify(120, testutil.Zeros(10)))
	require.NoError(t, m.Verify())

	want := append([]byte(nil), content...)
	copy(want[50:90], testutil.Zeros(40))
	copy(want[120:130], testutil.Zeros(10))

	require.NoError(t, m.Remove(40, 100))
	want = mirrorRemove(want, 40, 100)

	require.Equal(t, uint64(100), m.Length())
	require.Equal(t, want, contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_InsideOwnedBlock(t *testing.T) {
	m, _ := openModel(t, nil, nil)
	require.NoError(t, m.Add(0, []byte("abcdefghij")))

	require.NoError(t, m.Remove(3, 4))
	require.Equal(t, []byte("abchij"), contents(t, m))
	require.NoError(t, m.Verify())
}

func TestRemove_FreesOwnedBlocks(t *testing.T) {
	m, _ := openModel(t, nil, &Options{UndoEnabled: true, MemoryBlockSize: 8})

	require.NoError(t, m.Add(0, testutil.Pattern(64))) // 8 owned blocks
	require.Equal(t, uint64(64), m.MemoryUsed())

	require.NoError(t, m.Remove(8, 32)) // drops 4 whole blocks
	require.Equal(t, uint64(32), m.MemoryUsed())
	require.Equal(t, uint64(32), m.Length())
	require.NoError(t, m.Verify())
}

func TestRemove_ZeroLengthAndOutOfRange(t *testing.T) {
	m, _ := openModel(t, testutil.Pattern(10), nil)

	require.NoError(t, m.Remove(5, 0))
	require.False(t, m.Modified())
	require.Zero(t, m.Changes().Len())

	require.ErrorIs(t, m.Remove(10, 1), ErrInvalidOperation)
}

func TestRemove_ThenScenarioSequence(t *testing.T) {
	// The §2/§3-style sequence: modify across a block split, then remove a
	// range spanning the split.
	m, _ := openModel(t, testutil.Zeros(6000), nil)

	require.NoError(t, m.Modify(4090, []byte("ABCDEFGHIJ")))
	require.NoError(t, m.Remove(4095, 10))

	require.Equal(t, uint64(5990), m.Length())
	require.NoError(t, m.Verify())

	want := testutil.Zeros(6000)
	copy(want[4090:], "ABCDEFGHIJ")
	want = mirrorRemove(want, 4095, 10)

	p := make([]byte, 15)
	n, err := m.Get(4085, p)
	require.NoError(t, err)
	require.Equal(t, 15, n)
	require.Equal(t, want[4085:4100], p)
	require.Equal(t, want, contents(t, m))
}
