// Command solvomatic parses a puzzle file (spec.md §6.2) and solves it
// (spec.md §6.3). Exit code 0 means the solver ran to completion (solutions
// printed, possibly zero); 1 means a file/parse/setup error; 2 means the
// puzzle was Unsatisfiable (SPEC_FULL.md §4, fixing spec.md §6.3's
// "implementation choice; must be consistent").
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvomatic/solvomatic/puzzle"
	"github.com/solvomatic/solvomatic/solver"
)

const (
	exitOK = iota
	exitSetupError
	exitUnsatisfiable
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rc, err := loadRC()
	if err != nil {
		fmt.Fprintln(os.Stderr, "solvomatic: reading .solvomaticrc.yaml:", err)
		return exitSetupError
	}

	var (
		quiet      = rc.Quiet
		verbose    = rc.Verbose
		steps      = rc.Steps
		cpuprofile bool
		watch      = rc.Watch
		dumpState  string
	)

	root := &cobra.Command{
		Use:   "solvomatic <puzzle-file>",
		Short: "Solve-o-matic: a lattice-pruning constraint solver",
		Args:  cobra.ExactArgs(1),
	}
	root.Flags().BoolVarP(&quiet, "quiet", "q", rc.Quiet, "suppress all logging")
	root.Flags().BoolVarP(&verbose, "verbose", "v", rc.Verbose, "debug-level logging")
	root.Flags().BoolVar(&steps, "steps", rc.Steps, "print solver progress (Step N: size=...)")
	root.Flags().BoolVar(&cpuprofile, "cpuprofile", false, "write a CPU profile for this run")
	root.Flags().BoolVar(&watch, "watch", rc.Watch, "re-solve whenever the puzzle file changes")
	root.Flags().StringVar(&dumpState, "dump-state", "", "write a CBOR table snapshot after every solver step")

	code := exitOK
	root.RunE = func(cmd *cobra.Command, cmdArgs []string) error {
		path := cmdArgs[0]
		logger := buildLogger(quiet, verbose)
		defer logger.Sync() //nolint:errcheck

		if cpuprofile {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		solveOnce := func() int {
			c, err := solveFile(path, logger, steps, dumpState)
			if err != nil {
				if errors.Is(err, solver.ErrUnsatisfiable) {
					logger.Infow("unsatisfiable", "path", path)
					return exitUnsatisfiable
				}
				logger.Errorw("setup failed", "path", path, "error", err)
				return exitSetupError
			}
			return c
		}

		code = solveOnce()
		if !watch {
			return nil
		}
		return watchLoop(path, logger, func() { code = solveOnce() })
	}

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return exitSetupError
	}
	return code
}

func buildLogger(quiet, verbose bool) *zap.SugaredLogger {
	if quiet {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func watchLoop(path string, logger *zap.SugaredLogger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	logger.Infow("watching", "path", path)
	for ev := range w.Events {
		if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		logger.Infow("file changed, re-solving", "path", path)
		onChange()
	}
	return nil
}

func solveFile(path string, logger *zap.SugaredLogger, steps bool, dumpState string) (int, error) {
	e, err := puzzle.ParseFile(path)
	if err != nil {
		return exitSetupError, err
	}
	e.WithLogger(logger)

	var opts []solver.Option
	if steps {
		opts = append(opts, solver.WithOnStep(func(info solver.StepInfo) {
			fmt.Printf("Step %d: size=%d partitions=%d possibilities=%s\n",
				info.Step, info.Size, info.Partitions, info.Possibilities.String())
		}))
	}
	if dumpState != "" {
		opts = append(opts, dumpStateHook(dumpState))
	}

	if err := e.Solve(opts...); err != nil {
		if errors.Is(err, solver.ErrUnsatisfiable) {
			return exitUnsatisfiable, err
		}
		return exitSetupError, err
	}

	printSolutions(e)
	return exitOK, nil
}

func printSolutions(e *solver.Engine[int]) {
	t := e.Table()
	if !t.IsSolved() {
		fmt.Println("no unique solution table (internal)")
		return
	}
	p := t.Partitions[0]
	fmt.Printf("%d solution(s) over %d variables:\n", len(p.Tuples), len(p.Signature))
	for _, tup := range p.Tuples {
		fmt.Print("  ")
		for i, v := range tup {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%s=%d", p.Signature[i], v)
		}
		fmt.Println()
	}
}
