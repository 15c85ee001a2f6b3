package filemodel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockedit/internal/testutil"
)

func TestFind_ForwardWithinBlock(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog")
	m, _ := openModel(t, content, nil)

	pos, ok := m.Find(0, Forward, []byte("fox"))
	require.True(t, ok)
	require.Equal(t, uint64(16), pos)

	// At or after off.
	pos, ok = m.Find(16, Forward, []byte("fox"))
	require.True(t, ok)
	require.Equal(t, uint64(16), pos)

	_, ok = m.Find(17, Forward, []byte("fox"))
	require.False(t, ok)
}

func TestFind_BackwardWithinBlock(t *testing.T) {
	content := []byte("abc abc abc")
	m, _ := openModel(t, content, nil)

	pos, ok := m.Find(uint64(len(content)-1), Backward, []byte("abc"))
	require.True(t, ok)
	require.Equal(t, uint64(8), pos)

	pos, ok = m.Find(7, Backward, []byte("abc"))
	require.True(t, ok)
	require.Equal(t, uint64(4), pos)

	pos, ok = m.Find(0, Backward, []byte("abc"))
	require.True(t, ok)
	require.Equal(t, uint64(0), pos)
}

func TestFind_EmptyAndOversizedNeedle(t *testing.T) {
	m, _ := openModel(t, []byte("short"), nil)

	_, ok := m.Find(0, Forward, nil)
	require.False(t, ok)
	_, ok = m.Find(0, Backward, nil)
	require.False(t, ok)
	_, ok = m.Find(0, Forward, []byte("much longer than the file"))
	require.False(t, ok)
	_, ok = m.Find(0, Backward, []byte("much longer than the file"))
	require.False(t, ok)
}

func TestFind_StraddlesBlockBoundary(t *testing.T) {
	// The first modify splits the mapped file at offset 93; the second
	// writes "ABBB" across that boundary.
	content := bytes.Repeat([]byte{'x'}, 128)
	m, _ := openModel(t, content, &Options{UndoEnabled: true, MemoryBlockSize: 64})

	require.NoError(t, m.Modify(61, []byte("AAA")))
	require.NoError(t, m.Modify(92, []byte("ABBB")))
	require.NoError(t, m.Verify())

	// "ABBB" starts on the last byte before the block boundary.
	pos, ok := m.Find(0, Forward, []byte("ABBB"))
	require.True(t, ok)
	require.Equal(t, uint64(92), pos)

	pos, ok = m.Find(m.Length()-1, Backward, []byte("ABBB"))
	require.True(t, ok)
	require.Equal(t, uint64(92), pos)
}

func TestFind_NeedleAcrossManyBlocks(t *testing.T) {
	// Blocks of 8 bytes; a 20-byte needle spans at least three blocks.
	m, _ := openModel(t, nil, &Options{UndoEnabled: true, MemoryBlockSize: 8})

	content := append(testutil.Zeros(30), []byte("abcdefghijklmnopqrst")...)
	content = append(content, testutil.Zeros(30)...)
	require.NoError(t, m.Add(0, content))
	require.NoError(t, m.Verify())

	needle := []byte("abcdefghijklmnopqrst")
	pos, ok := m.Find(0, Forward, needle)
	require.True(t, ok)
	require.Equal(t, uint64(30), pos)

	pos, ok = m.Find(m.Length()-1, Backward, needle)
	require.True(t, ok)
	require.Equal(t, uint64(30), pos)
}

func TestFind_ForwardFromOffsetSkipsEarlierMatch(t *testing.T) {
	m, _ := openModel(t, []byte("needle....needle"), nil)

	pos, ok := m.Find(1, Forward, []byte("needle"))
	require.True(t, ok)
	require.Equal(t, uint64(10), pos)
}

func TestFind_BackwardNearEnd(t *testing.T) {
	content := []byte("zzz needle")
	m, _ := openModel(t, content, nil)

	// Any start at or past length-needlelen scans from the end.
	for _, off := range []uint64{4, 5, 9} {
		pos, ok := m.Find(off, Backward, []byte("needle"))
		require.True(t, ok, "off %d", off)
		require.Equal(t, uint64(4), pos, "off %d", off)
	}
}

func TestFind_MatchAtVeryStartAndEnd(t *testing.T) {
	content := []byte("headmiddletail")
	m, _ := openModel(t, content, nil)

	pos, ok := m.Find(0, Forward, []byte("head"))
	require.True(t, ok)
	require.Zero(t, pos)

	pos, ok = m.Find(uint64(len(content)-1), Backward, []byte("tail"))
	require.True(t, ok)
	require.Equal(t, uint64(10), pos)
}
