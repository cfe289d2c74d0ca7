package puzzle

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/dict"
	"github.com/solvomatic/solvomatic/lattice"
	"github.com/solvomatic/solvomatic/solver"
)

// coord is a layout-relative cell address: the block index among the
// layout section's own blocks, then row and column within that block
// (spec.md §6.2, "anchoring variable identity by its (block, row, column)
// coordinate relative to the layout block").
type coord struct{ block, row, col int }

// ParseFile reads path and builds a ready-to-Solve engine.
func ParseFile(path string) (*solver.Engine[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a puzzle file from r and builds a ready-to-Solve engine
// (spec.md §6.2).
func Parse(r io.Reader) (*solver.Engine[int], error) {
	sections, err := scan(r)
	if err != nil {
		return nil, err
	}

	var layout []block
	var errs *multierror.Error
	for _, s := range sections {
		if s.keyword == "layout" {
			layout = append(layout, s.blocks...)
		}
	}
	if len(layout) == 0 {
		return nil, ErrNoLayout
	}

	varOf := make(map[coord]core.VarID)
	var order []core.VarID
	for bi, b := range layout {
		for row := range b {
			for col := range b[row] {
				if b.cellAt(row, col) != '*' {
					continue
				}
				id := core.VarID(fmt.Sprintf("b%d:%d,%d", bi, row, col))
				varOf[coord{bi, row, col}] = id
				order = append(order, id)
			}
		}
	}

	domains := make(map[core.VarID][]int)
	for _, s := range sections {
		if s.keyword != "range" {
			continue
		}
		if len(s.args) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("puzzle: range section: %w", ErrMissingArg))
			continue
		}
		dom, err := parseSetLiteral(joinArgs(s.args))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		for bi, b := range s.blocks {
			for row := range b {
				for col := range b[row] {
					if b.cellAt(row, col) != '*' {
						continue
					}
					id, ok := varOf[coord{bi, row, col}]
					if !ok {
						errs = multierror.Append(errs, fmt.Errorf("puzzle: range block %d (%d,%d): %w", bi, row, col, ErrUnknownCoordinate))
						continue
					}
					domains[id] = dom
				}
			}
		}
	}

	for _, id := range order {
		if _, ok := domains[id]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("puzzle: %s: %w", id, ErrNoDomain))
		}
	}

	for _, s := range sections {
		if s.keyword != "initial" {
			continue
		}
		for bi, b := range s.blocks {
			for row := range b {
				for col := range b[row] {
					c := b.cellAt(row, col)
					if c == '.' {
						continue
					}
					id, ok := varOf[coord{bi, row, col}]
					if !ok {
						errs = multierror.Append(errs, fmt.Errorf("puzzle: initial block %d (%d,%d): %w", bi, row, col, ErrUnknownCoordinate))
						continue
					}
					val, err := setToken(string(c))
					if err != nil {
						errs = multierror.Append(errs, err)
						continue
					}
					dom, ok := domains[id]
					if !ok {
						continue // already reported as ErrNoDomain above
					}
					if !contains(dom, val) {
						errs = multierror.Append(errs, fmt.Errorf("puzzle: %s=%d: %w", id, val, ErrInitialOutOfDomain))
						continue
					}
					domains[id] = []int{val}
				}
			}
		}
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	e := solver.New[int]()
	for _, id := range order {
		if err := e.Var(id, domains[id]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	for _, s := range sections {
		if s.keyword != "rule" {
			continue
		}
		if err := buildRule(e, varOf, s); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	return e, nil
}

func contains(dom []int, v int) bool {
	for _, d := range dom {
		if d == v {
			return true
		}
	}
	return false
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

// groupCell is one cell of a rule binding group before ordering.
type groupCell struct {
	id       core.VarID
	override int // 1-based; 0 means "no explicit override"
	seq      int // scan order, used when override is absent
}

// buildRule parses one "rule <name> [args]" section and attaches the
// resulting binding(s) to e (spec.md §6.2's rule vocabulary table). Binding
// groups are scoped per (block index, letter): the same letter in two
// different blocks of the same rule section forms two independent groups,
// so one "rule permutation" section can carry every row's and every
// column's group in separate blocks without letter collisions.
func buildRule(e *solver.Engine[int], varOf map[coord]core.VarID, s section) error {
	family, err := ruleFamily(s)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for bi, b := range s.blocks {
		// digitGroup is the pseudo-letter key for cells addressed by an
		// explicit digit 1-9 rather than a named letter: every digit cell
		// in one block forms a single group ordered by its digit value, the
		// natural reading of "a digit names the explicit position within a
		// binding group" for a block with no letters of its own (e.g. an
		// in_order rule over one row, labeled 1,2,3,4 instead of a,a,a,a).
		const digitGroup = byte(0)

		groups := make(map[byte][]groupCell)
		seq := 0
		for row := range b {
			for col := range b[row] {
				c := b.cellAt(row, col)
				var key byte
				var override int
				switch {
				case c >= 'a' && c <= 'z':
					key, override = c, 0
				case c >= '1' && c <= '9':
					key, override = digitGroup, int(c-'0')
				default:
					continue
				}
				id, ok := varOf[coord{bi, row, col}]
				if !ok {
					errs = multierror.Append(errs, fmt.Errorf("puzzle: rule %v block %d (%d,%d): %w", s.args, bi, row, col, ErrUnknownCoordinate))
					continue
				}
				groups[key] = append(groups[key], groupCell{id: id, override: override, seq: seq})
				seq++
			}
		}
		for letter, cells := range groups {
			vars, err := orderGroup(cells)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("puzzle: rule %s block %d group %q: %w", s.args, bi, letter, err))
				continue
			}
			if err := e.Constraint(family, vars); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}

// orderGroup orders a binding group's cells: explicit digit overrides (if
// any) take their 1-based slot; the rest fill remaining slots in scan order.
func orderGroup(cells []groupCell) ([]core.VarID, error) {
	n := len(cells)
	slots := make([]core.VarID, n)
	used := make([]bool, n)
	var unranked []groupCell
	for _, c := range cells {
		if c.override == 0 {
			unranked = append(unranked, c)
			continue
		}
		idx := c.override - 1
		if idx < 0 || idx >= n || used[idx] {
			return nil, ErrDuplicatePosition
		}
		slots[idx] = c.id
		used[idx] = true
	}
	i := 0
	for _, c := range unranked {
		for used[i] {
			i++
		}
		slots[i] = c.id
		used[i] = true
	}
	return slots, nil
}

func ruleFamily(s section) (lattice.Family[int], error) {
	if len(s.args) == 0 {
		return nil, fmt.Errorf("puzzle: rule section: %w", ErrUnknownRule)
	}
	name := s.args[0]
	rest := s.args[1:]
	switch name {
	case "sum":
		if len(rest) == 0 {
			return nil, fmt.Errorf("puzzle: sum: %w", ErrMissingArg)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("puzzle: sum %q: %w", rest[0], ErrMalformedSetLiteral)
		}
		return lattice.NewSum(n), nil
	case "product":
		if len(rest) == 0 {
			return nil, fmt.Errorf("puzzle: product: %w", ErrMissingArg)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("puzzle: product %q: %w", rest[0], ErrMalformedSetLiteral)
		}
		return lattice.NewProduct(n), nil
	case "permutation", "subset", "superset":
		if len(rest) == 0 {
			return nil, fmt.Errorf("puzzle: %s: %w", name, ErrMissingArg)
		}
		dom, err := parseSetLiteral(joinArgs(rest))
		if err != nil {
			return nil, err
		}
		ms := lattice.NewMultiset(dom...)
		switch name {
		case "permutation":
			return lattice.NewPermutation(ms), nil
		case "subset":
			return lattice.NewSubset(ms), nil
		default:
			return lattice.NewSuperset(ms), nil
		}
	case "in_order":
		return lattice.NewInOrder[int](), nil
	case "in_reverse_order":
		return lattice.NewInReverseOrder[int](), nil
	case "word":
		if len(rest) == 0 {
			return nil, fmt.Errorf("puzzle: word: %w", ErrMissingArg)
		}
		d, err := dict.Load(rest[0])
		if err != nil {
			return nil, err
		}
		return lattice.NewWord[int](d, func(v int) byte { return byte(v) }), nil
	default:
		return nil, fmt.Errorf("puzzle: %q: %w", name, ErrUnknownRule)
	}
}
