package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSetLiteral parses spec.md §6.2's set literal grammar: whitespace
// separated items, each either a single token or an inclusive "lo..hi" range
// (letters and integers both supported; letters expand over the ASCII
// alphabet). Every value in the result is an int: an integer token's literal
// value, or a letter token's ASCII codepoint.
func parseSetLiteral(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("puzzle: empty set literal: %w", ErrMalformedSetLiteral)
	}

	var out []int
	seen := make(map[int]struct{})
	add := func(v int) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, f := range fields {
		if lo, hi, ok := strings.Cut(f, ".."); ok {
			loVal, err := setToken(lo)
			if err != nil {
				return nil, fmt.Errorf("puzzle: range %q: %w", f, err)
			}
			hiVal, err := setToken(hi)
			if err != nil {
				return nil, fmt.Errorf("puzzle: range %q: %w", f, err)
			}
			if loVal > hiVal {
				return nil, fmt.Errorf("puzzle: range %q: lo>hi: %w", f, ErrMalformedSetLiteral)
			}
			for v := loVal; v <= hiVal; v++ {
				add(v)
			}
			continue
		}

		v, err := setToken(f)
		if err != nil {
			return nil, err
		}
		add(v)
	}
	return out, nil
}

// setToken parses one set-literal token: a decimal integer, or a single
// ASCII letter (its codepoint).
func setToken(tok string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	r := []rune(tok)
	if len(r) == 1 && ((r[0] >= 'a' && r[0] <= 'z') || (r[0] >= 'A' && r[0] <= 'Z')) {
		return int(r[0]), nil
	}
	return 0, fmt.Errorf("puzzle: %q: %w", tok, ErrMalformedSetLiteral)
}
