package puzzle

import "errors"

// Sentinel setup errors (spec.md §7, "unknown variable referenced ... raised
// synchronously at the offending API call"). The parser accumulates every
// occurrence it finds in one pass into a *multierror.Error rather than
// stopping at the first, so a puzzle author sees every problem at once.
var (
	// ErrNoLayout indicates the file contains no layout section at all, so
	// there are no variables to declare.
	ErrNoLayout = errors.New("puzzle: missing layout section")
	// ErrUnknownCoordinate indicates a range/rule/initial section marks a
	// cell at a (block,row,col) the layout section never declared.
	ErrUnknownCoordinate = errors.New("puzzle: coordinate not present in layout")
	// ErrNoDomain indicates a layout-declared variable never received a
	// domain from any range section.
	ErrNoDomain = errors.New("puzzle: variable has no declared domain")
	// ErrMalformedSetLiteral indicates a set-literal token could not be
	// parsed as an integer, a single letter, or a lo..hi range of either.
	ErrMalformedSetLiteral = errors.New("puzzle: malformed set literal")
	// ErrUnknownRule indicates a rule section's keyword is not one of
	// spec.md §6.2's rule vocabulary.
	ErrUnknownRule = errors.New("puzzle: unknown rule keyword")
	// ErrMissingArg indicates a range section, or a rule keyword that
	// requires an argument (sum, product, permutation, subset, superset,
	// word), was given none.
	ErrMissingArg = errors.New("puzzle: rule missing required argument")
	// ErrDuplicatePosition indicates two cells in the same binding group
	// claimed the same explicit digit position override.
	ErrDuplicatePosition = errors.New("puzzle: duplicate explicit position in binding group")
	// ErrInitialOutOfDomain indicates an initial-section prefill value is
	// not a member of the target variable's declared domain.
	ErrInitialOutOfDomain = errors.New("puzzle: initial value outside variable domain")
)
