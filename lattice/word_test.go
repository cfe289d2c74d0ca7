package lattice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/dict"
	"github.com/solvomatic/solvomatic/lattice"
)

func loadTestDict(t *testing.T, words ...string) *dict.Dictionary {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	d, err := dict.Load(path)
	require.NoError(t, err)
	return d
}

func toSym(v int) byte { return byte(v) }

func TestWordFamily_Classify(t *testing.T) {
	d := loadTestDict(t, "tor", "toe")
	f := lattice.NewWord[int](d, toSym)

	require.Equal(t, lattice.Yes, f.Classify(fold[int](f, []int{'t', 'o', 'r'})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{'t', 'o', 'x'})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{'x', 'o', 'r'})))
}

func TestWordFamily_OrUnionsAlternatives(t *testing.T) {
	d := loadTestDict(t, "tor", "toe")
	f := lattice.NewWord[int](d, toSym)

	// First two letters fixed ("to"), last letter still undecided between
	// the two tuples of some partition: 'r' and 'e' are each individually
	// acceptable, so the unioned value must classify Yes.
	prefix := f.Single(0, 't').And(f.Single(1, 'o'))
	altR := prefix.And(f.Single(2, 'r'))
	altE := prefix.And(f.Single(2, 'e'))
	or := altR.Or(altE)
	require.Equal(t, lattice.Yes, f.Classify(or))
}
