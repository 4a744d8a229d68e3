package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.pdf"), []byte("%PDF"), 0o644))
	s := NewStore(dir)

	p, err := s.Resolve("book.pdf")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "book.pdf"), p)

	// legacy records store the dir prefix too
	p, err = s.Resolve(dir + "/book.pdf")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "book.pdf"), p)

	_, err = s.Resolve("missing.pdf")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Resolve("")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_NoTraversal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inside.pdf"), []byte("%PDF"), 0o644))
	outside := filepath.Join(filepath.Dir(dir), "outside.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("%PDF"), 0o644))
	t.Cleanup(func() { _ = os.Remove(outside) })

	s := NewStore(dir)
	_, err := s.Resolve("../outside.pdf")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.pdf"), []byte("%PDF"), 0o644))
	s := NewStore(dir)

	require.NoError(t, s.Remove("book.pdf"))
	_, err := os.Stat(filepath.Join(dir, "book.pdf"))
	require.True(t, os.IsNotExist(err))

	// removing a missing file is not an error
	require.NoError(t, s.Remove("book.pdf"))
}
