package cleanup

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAged creates a file of size bytes whose mtime is age in the past.
func writeAged(t *testing.T, path string, size int, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func collect(t *testing.T, s *Scanner, root string) []string {
	t.Helper()
	files, err := s.Scan(root, nil)
	require.NoError(t, err)

	var paths []string
	for c := range files {
		paths = append(paths, c.Path)
	}
	sort.Strings(paths)
	return paths
}

func TestScanner_RegularFilesOnly(t *testing.T) {
	root := t.TempDir()
	writeAged(t, filepath.Join(root, "a.txt"), 3, time.Hour)
	writeAged(t, filepath.Join(root, "sub", "deep", "b.bin"), 5, time.Hour)
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "link.txt")))

	outside := t.TempDir()
	writeAged(t, filepath.Join(outside, "secret.txt"), 1, time.Hour)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linkdir")))

	got := collect(t, NewScanner(nil), root)

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "deep", "b.bin"),
	}, got)
}

func TestScanner_CandidateMetadata(t *testing.T) {
	root := t.TempDir()
	writeAged(t, filepath.Join(root, "a.txt"), 42, 48*time.Hour)

	files, err := NewScanner(nil).Scan(root, nil)
	require.NoError(t, err)

	var got []Candidate
	for c := range files {
		got = append(got, c)
	}
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].Size)
	assert.WithinDuration(t, time.Now().Add(-48*time.Hour), got[0].ModTime, time.Minute)
}

func TestScanner_MissingRoot(t *testing.T) {
	_, err := NewScanner(nil).Scan(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRootNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var pe *PathError
	assert.True(t, errors.As(err, &pe))
}

func TestScanner_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeAged(t, path, 1, time.Hour)

	_, err := NewScanner(nil).Scan(path, nil)
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestScanner_SymlinkedRootIsEntered(t *testing.T) {
	target := t.TempDir()
	writeAged(t, filepath.Join(target, "a.txt"), 1, time.Hour)

	link := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.Symlink(target, link))

	got := collect(t, NewScanner(nil), link)
	require.Len(t, got, 1)
	assert.Equal(t, "a.txt", filepath.Base(got[0]))
}

func TestScanner_ProtectedDirectorySkipped(t *testing.T) {
	root := t.TempDir()
	writeAged(t, filepath.Join(root, "keep", "a.txt"), 1, time.Hour)
	writeAged(t, filepath.Join(root, "other", "b.txt"), 1, time.Hour)

	got := collect(t, NewScanner(NewProtector([]string{"*/keep"})), root)
	assert.Equal(t, []string{filepath.Join(root, "other", "b.txt")}, got)
}

func TestScanner_StopsEarly(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeAged(t, filepath.Join(root, name), 1, time.Hour)
	}

	files, err := NewScanner(nil).Scan(root, nil)
	require.NoError(t, err)

	n := 0
	for range files {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
