package filemodel_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockedit/filemodel"
	"github.com/joshuapare/blockedit/filemodel/trivial"
	"github.com/joshuapare/blockedit/fsutil"
)

// The differential suite drives the chain-based model and the full-rewrite
// reference editor through the same randomized operation sequence on two
// copies of the same fixture. RandomEdits and Search require them to agree
// on length, whole content and searches in both directions; GetWindows and
// UndoAll check the model against its own full reads. The seed is fixed so
// failures reproduce.

const diffSeed = 1

func setupPair(t *testing.T, size uint64) (*filemodel.Model, *trivial.Model) {
	t.Helper()

	dir := t.TempDir()
	orig := filepath.Join(dir, "fixture.org")
	chainPath := filepath.Join(dir, "chain.bin")
	refPath := filepath.Join(dir, "ref.bin")

	require.NoError(t, fsutil.RandomFile(orig, size))
	require.NoError(t, fsutil.Copy(orig, chainPath))
	require.NoError(t, fsutil.Copy(orig, refPath))

	equal, err := fsutil.Diff(chainPath, refPath)
	require.NoError(t, err)
	require.True(t, equal)

	m := filemodel.New(&filemodel.Options{
		UndoEnabled:     true,
		MemoryBlockSize: 256,
		MaxMemoryUsed:   1 << 20,
	})
	require.NoError(t, m.Open(chainPath, filemodel.ReadWrite))
	t.Cleanup(func() { m.Close() })

	ref := &trivial.Model{}
	require.NoError(t, ref.Open(refPath))
	t.Cleanup(func() { ref.Close() })

	return m, ref
}

func requireSameContent(t *testing.T, m *filemodel.Model, ref *trivial.Model) {
	t.Helper()

	require.Equal(t, ref.Length(), m.Length())
	require.NoError(t, m.Verify())
	if m.Length() == 0 {
		return
	}

	got := make([]byte, m.Length())
	n, err := m.Get(0, got)
	require.NoError(t, err)
	require.Equal(t, int(m.Length()), n)

	want := make([]byte, ref.Length())
	n, err = ref.Get(0, want)
	require.NoError(t, err)
	require.Equal(t, int(ref.Length()), n)

	require.Equal(t, want, got)
}

func randomPayload(rng *rand.Rand, max int) []byte {
	p := make([]byte, 1+rng.Intn(max))
	rng.Read(p)
	return p
}

func TestDifferential_RandomEdits(t *testing.T) {
	m, ref := setupPair(t, 16*1024)
	rng := rand.New(rand.NewSource(diffSeed))

	for i := 0; i < 300; i++ {
		length := m.Length()

		switch op := rng.Intn(3); {
		case op == 0 && length > 0: // modify
			off := uint64(rng.Int63n(int64(length)))
			maxLen := int(length - off)
			if maxLen > 512 {
				maxLen = 512
			}
			p := randomPayload(rng, maxLen)
			require.NoError(t, m.Modify(off, p), "op %d", i)
			require.NoError(t, ref.Modify(off, p), "op %d", i)

		case op == 1: // add
			off := uint64(rng.Int63n(int64(length + 1)))
			p := randomPayload(rng, 512)
			require.NoError(t, m.Add(off, p), "op %d", i)
			require.NoError(t, ref.Add(off, p), "op %d", i)

		case op == 2 && length > 0: // remove
			off := uint64(rng.Int63n(int64(length)))
			n := uint64(1 + rng.Intn(512))
			require.NoError(t, m.Remove(off, n), "op %d", i)
			require.NoError(t, ref.Remove(off, n), "op %d", i)
		}

		if i%25 == 0 {
			requireSameContent(t, m, ref)
		}
	}
	requireSameContent(t, m, ref)
}

func TestDifferential_GetWindows(t *testing.T) {
	m, _ := setupPair(t, 8*1024)
	rng := rand.New(rand.NewSource(diffSeed))

	for i := 0; i < 100; i++ {
		off := uint64(rng.Int63n(int64(m.Length())))
		p := randomPayload(rng, 300)
		require.NoError(t, m.Modify(off, p[:minInt(len(p), int(m.Length()-off))]))
	}
	got := make([]byte, m.Length())
	_, err := m.Get(0, got)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		off := uint64(rng.Int63n(int64(m.Length())))
		window := make([]byte, 1+rng.Intn(700))

		n, err := m.Get(off, window)
		require.NoError(t, err)

		want := got[off:]
		if len(want) > len(window) {
			want = want[:len(window)]
		}
		require.Equal(t, len(want), n)
		require.Equal(t, want, window[:n])
	}
}

func TestDifferential_Search(t *testing.T) {
	m, ref := setupPair(t, 4*1024)
	rng := rand.New(rand.NewSource(diffSeed))

	// Splinter the chain first so searches cross block boundaries.
	for i := 0; i < 40; i++ {
		off := uint64(rng.Int63n(int64(m.Length())))
		p := randomPayload(rng, minInt(64, int(m.Length()-off)))
		require.NoError(t, m.Modify(off, p))
		require.NoError(t, ref.Modify(off, p))
	}
	requireSameContent(t, m, ref)

	content := make([]byte, m.Length())
	_, err := m.Get(0, content)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		// Pick a needle that actually occurs somewhere.
		start := rng.Intn(len(content) - 8)
		needle := content[start : start+1+rng.Intn(8)]
		off := uint64(rng.Int63n(int64(len(content))))

		gotPos, gotOK := m.Find(off, filemodel.Forward, needle)
		wantPos, wantOK := ref.FindForward(off, needle)
		require.Equal(t, wantOK, gotOK, "forward needle %x off %d", needle, off)
		if gotOK {
			require.Equal(t, wantPos, gotPos, "forward needle %x off %d", needle, off)
		}

		gotPos, gotOK = m.Find(off, filemodel.Backward, needle)
		wantPos, wantOK = ref.FindBackward(off, needle)
		require.Equal(t, wantOK, gotOK, "backward needle %x off %d", needle, off)
		if gotOK {
			require.Equal(t, wantPos, gotPos, "backward needle %x off %d", needle, off)
		}
	}
}

func TestDifferential_UndoAll(t *testing.T) {
	m, _ := setupPair(t, 8*1024)
	rng := rand.New(rand.NewSource(diffSeed))

	before := make([]byte, m.Length())
	_, err := m.Get(0, before)
	require.NoError(t, err)

	nops := 0
	for i := 0; i < 100; i++ {
		length := m.Length()
		switch op := rng.Intn(3); {
		case op == 0 && length > 0:
			off := uint64(rng.Int63n(int64(length)))
			p := randomPayload(rng, minInt(128, int(length-off)))
			require.NoError(t, m.Modify(off, p))
			nops++
		case op == 1:
			off := uint64(rng.Int63n(int64(length + 1)))
			require.NoError(t, m.Add(off, randomPayload(rng, 128)))
			nops++
		case op == 2 && length > 0:
			off := uint64(rng.Int63n(int64(length)))
			require.NoError(t, m.Remove(off, uint64(1+rng.Intn(128))))
			nops++
		}
	}

	afterEdits := make([]byte, m.Length())
	_, err = m.Get(0, afterEdits)
	require.NoError(t, err)

	require.Equal(t, nops, m.NumChange())
	for i := 0; i < nops; i++ {
		require.NoError(t, m.Undo())
	}
	require.Zero(t, m.NumChange())
	require.ErrorIs(t, m.Undo(), filemodel.ErrNoMoreChanges)

	after := make([]byte, m.Length())
	_, err = m.Get(0, after)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.NoError(t, m.Verify())

	// And forward again.
	for i := 0; i < nops; i++ {
		require.NoError(t, m.Redo())
	}
	redone := make([]byte, m.Length())
	_, err = m.Get(0, redone)
	require.NoError(t, err)
	require.Equal(t, afterEdits, redone)
	require.NoError(t, m.Verify())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
