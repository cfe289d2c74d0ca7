package solver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvomatic/solvomatic/constraint"
	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/lattice"
)

// ErrAlreadySolved is returned by Var/Constraint/MappedConstraint once Solve
// has run; the engine's setup phase and its solve phase do not interleave
// (spec.md §7: setup errors "are raised synchronously at the offending API
// call", before solving begins).
var ErrAlreadySolved = errors.New("solver: engine already solved")

// Engine is the programmatic library surface of spec.md §6.1: a caller
// declares variables and constraints, then calls Solve and inspects Table.
// RunID tags every run (included as "run_id" in the step log lines Solve
// emits) so repeated runs against the same puzzle are distinguishable in
// logs. Table snapshots passed to a WithOnTable callback do not carry it.
type Engine[V core.Value] struct {
	RunID uuid.UUID

	order    []core.VarID
	domains  map[core.VarID][]V
	bindings []*constraint.Binding[V]
	table    *core.Table[V]
	solved   bool
	logger   *zap.SugaredLogger
}

// New constructs an empty Engine ready to receive Var/Constraint calls.
func New[V core.Value]() *Engine[V] {
	return &Engine[V]{
		RunID:   uuid.New(),
		domains: make(map[core.VarID][]V),
		logger:  zap.NewNop().Sugar(),
	}
}

// WithLogger attaches a structured logger used for setup and solve tracing.
func (e *Engine[V]) WithLogger(l *zap.SugaredLogger) *Engine[V] {
	e.logger = l
	return e
}

// Var declares a variable and its initial domain (spec.md §6.1 "var").
func (e *Engine[V]) Var(id core.VarID, domain []V) error {
	if e.solved {
		return fmt.Errorf("solver: declaring %s: %w", id, ErrAlreadySolved)
	}
	if _, dup := e.domains[id]; dup {
		return fmt.Errorf("solver: %s: %w", id, core.ErrDuplicateVariable)
	}
	e.order = append(e.order, id)
	e.domains[id] = domain
	return nil
}

// Constraint attaches a constraint family to a variable sequence
// (spec.md §6.1 "constraint").
func (e *Engine[V]) Constraint(family lattice.Family[V], vars []core.VarID) error {
	return e.MappedConstraint(family, vars, nil)
}

// MappedConstraint attaches a constraint family to a variable sequence with
// an optional per-position value transform (spec.md §6.1 "mapped_constraint").
func (e *Engine[V]) MappedConstraint(family lattice.Family[V], vars []core.VarID, maps []func(V) V) error {
	if e.solved {
		return fmt.Errorf("solver: attaching %s constraint: %w", family.Kind(), ErrAlreadySolved)
	}
	for _, v := range vars {
		if _, ok := e.domains[v]; !ok {
			return fmt.Errorf("solver: %s constraint: %s: %w", family.Kind(), v, core.ErrUnknownVariable)
		}
	}
	b, err := constraint.NewBinding(family, vars, maps)
	if err != nil {
		return err
	}
	e.bindings = append(e.bindings, b)
	return nil
}

// Solve builds the initial table from the declared variables and runs the
// solver loop to completion (spec.md §6.1 "solve"). It may be called only
// once; the resulting Table is retained for inspection via Table().
func (e *Engine[V]) Solve(opts ...Option) error {
	if e.solved {
		return fmt.Errorf("solver: %w", ErrAlreadySolved)
	}
	t, err := core.New(e.order, e.domains)
	if err != nil {
		return err
	}

	opts = append([]Option{WithLogger(e.logger.With("run_id", e.RunID.String()))}, opts...)
	result, err := Solve(t, e.bindings, opts...)
	if err != nil {
		return err
	}
	e.table = result
	e.solved = true
	return nil
}

// Table returns the resulting table for inspection (spec.md §6.1 "table").
// It is valid only after a successful Solve call.
func (e *Engine[V]) Table() *core.Table[V] {
	return e.table
}
