package puzzle

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// block is one ASCII-art block: consecutive lines starting with '|', with
// the leading '|' stripped and rows padded to a common width with '.'
// (decoration, ignored for semantics) so every row can be indexed safely.
type block [][]byte

func (b block) cellAt(row, col int) byte {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return '.'
	}
	return b[row][col]
}

// section is one keyword-introduced section together with the ASCII blocks
// that follow it, up to (but not including) the next keyword line.
type section struct {
	keyword string
	args    []string
	blocks  []block
}

var keywordRe = regexp.MustCompile(`^(layout|range|rule|initial)\b\s*(.*)$`)

// scan splits r into an ordered list of sections (spec.md §6.2). Comment
// lines (leading '#') and any other non-'|' line that is not itself a
// keyword line are ignored and do not terminate an in-progress section —
// only a new keyword line does; an in-progress block is terminated by any
// non-'|' line other than a comment line, so two '|'-line runs separated by
// blank filler within one section become two separate blocks of that
// section, while a comment line between '|' lines leaves the block intact.
func scan(r io.Reader) ([]section, error) {
	var sections []section
	var cur *section
	var curBlock block

	flushBlock := func() {
		if len(curBlock) == 0 {
			return
		}
		width := 0
		for _, row := range curBlock {
			if len(row) > width {
				width = len(row)
			}
		}
		padded := make(block, len(curBlock))
		for i, row := range curBlock {
			p := make([]byte, width)
			copy(p, row)
			for j := len(row); j < width; j++ {
				p[j] = '.'
			}
			padded[i] = p
		}
		cur.blocks = append(cur.blocks, padded)
		curBlock = nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "|"):
			curBlock = append(curBlock, []byte(line[1:]))
		case strings.HasPrefix(strings.TrimSpace(line), "#"):
			// comment: ignored, does not terminate the block run below
		default:
			flushBlock()
			trimmed := strings.TrimSpace(line)
			if m := keywordRe.FindStringSubmatch(trimmed); m != nil {
				if cur != nil {
					sections = append(sections, *cur)
				}
				cur = &section{keyword: m[1], args: strings.Fields(m[2])}
			}
			// any other line (blank, decoration) is silently ignored
		}
	}
	flushBlock()
	if cur != nil {
		sections = append(sections, *cur)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}
