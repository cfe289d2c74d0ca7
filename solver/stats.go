package solver

import "math/big"

// StepKind tags what kind of progress a StepInfo reports.
type StepKind int

const (
	// StepSimplify reports the table state after one Simplify fixpoint.
	StepSimplify StepKind = iota
	// StepMerge reports the table state after one accepted speculative merge.
	StepMerge
)

func (k StepKind) String() string {
	if k == StepMerge {
		return "merge"
	}
	return "simplify"
}

// StepInfo is the progress snapshot passed to the WithOnStep callback, mirroring the
// teacher's BFSOptions/DFSOptions visit-hook shape (spec.md §4.4, "Step N:
// size=..." trace; spec.md §5, "emitted synchronously between
// simplify-passes or after each partition merge").
type StepInfo struct {
	Step          int
	Kind          StepKind
	Partitions    int
	Size          int
	Possibilities *big.Int
}
