package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/puzzle"
)

const twoDigitSumPuzzle = `
layout
|**

range 1..9
|*.

range 0..9
|.*

rule sum 3
|aa
`

func TestParse_TwoDigitSum(t *testing.T) {
	e, err := puzzle.Parse(strings.NewReader(twoDigitSumPuzzle))
	require.NoError(t, err)

	require.NoError(t, e.Solve())
	require.True(t, e.Table().IsSolved())
	require.Len(t, e.Table().Partitions[0].Tuples, 3)
}

const latinSquare3x3Puzzle = `
layout
|***
|***
|***

range 1..3
|***
|***
|***

rule permutation 1..3
|aaa
|bbb
|ccc

rule permutation 1..3
|abc
|abc
|abc
`

func TestParse_LatinSquare3x3_HasTwelveSolutions(t *testing.T) {
	e, err := puzzle.Parse(strings.NewReader(latinSquare3x3Puzzle))
	require.NoError(t, err)

	require.NoError(t, e.Solve())
	require.True(t, e.Table().IsSolved())
	require.Len(t, e.Table().Partitions[0].Tuples, 12)
}

func TestParse_NoLayout(t *testing.T) {
	_, err := puzzle.Parse(strings.NewReader("range 1..3\n|*\n"))
	require.ErrorIs(t, err, puzzle.ErrNoLayout)
}

func TestParse_MissingDomain(t *testing.T) {
	_, err := puzzle.Parse(strings.NewReader("layout\n|*\n"))
	require.ErrorIs(t, err, puzzle.ErrNoDomain)
}

func TestParse_InitialOutOfDomain(t *testing.T) {
	src := `
layout
|*

range 1..3
|*

initial
|9
`
	_, err := puzzle.Parse(strings.NewReader(src))
	require.ErrorIs(t, err, puzzle.ErrInitialOutOfDomain)
}

func TestParse_InitialPinsValue(t *testing.T) {
	src := `
layout
|**

range 1..3
|**

initial
|1.
`
	e, err := puzzle.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, e.Solve())
	require.True(t, e.Table().IsSolved())
	// The first cell is pinned to 1 and the second stays free over 1..3.
	require.Len(t, e.Table().Partitions[0].Tuples, 3)
}

func TestParse_UnknownRule(t *testing.T) {
	src := `
layout
|*

range 1..3
|*

rule frobnicate
|a
`
	_, err := puzzle.Parse(strings.NewReader(src))
	require.ErrorIs(t, err, puzzle.ErrUnknownRule)
}
