package main

import (
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/solver"
)

// dumpStateHook returns a solver.Option that CBOR-encodes the table after
// every solver step, appending each snapshot to path (SPEC_FULL.md §2,
// "--dump-state path.cbor ... after every outer-loop iteration").
func dumpStateHook(path string) solver.Option {
	return solver.WithOnTable(func(t *core.Table[int]) {
		b, err := cbor.Marshal(t)
		if err != nil {
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer f.Close()
		_, _ = f.Write(b)
	})
}
