package dict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/dict"
)

func writeWordList(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_BuildsTrie(t *testing.T) {
	path := writeWordList(t, "tor", "tee", "toe")
	d, err := dict.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, d.Length)

	s := d.Root()
	s = d.Advance(s, 't')
	require.NotEqual(t, dict.Dead, s)
	s = d.Advance(s, 'o')
	require.NotEqual(t, dict.Dead, s)
	s = d.Advance(s, 'r')
	require.NotEqual(t, dict.Dead, s)
	require.True(t, d.IsAccept(s))

	s2 := d.Advance(d.Root(), 'z')
	require.Equal(t, dict.Dead, s2)
}

func TestLoad_InconsistentLength(t *testing.T) {
	path := writeWordList(t, "tor", "torex")
	_, err := dict.Load(path)
	require.ErrorIs(t, err, dict.ErrInconsistentLength)
}

func TestLoad_Empty(t *testing.T) {
	path := writeWordList(t)
	_, err := dict.Load(path)
	require.ErrorIs(t, err, dict.ErrEmpty)
}

func TestLoad_CachesByPath(t *testing.T) {
	path := writeWordList(t, "cat", "cot")
	d1, err := dict.Load(path)
	require.NoError(t, err)
	d2, err := dict.Load(path)
	require.NoError(t, err)
	require.Same(t, d1, d2)
}

func TestLoad_Unreadable(t *testing.T) {
	_, err := dict.Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.ErrorIs(t, err, dict.ErrUnreadable)
}
