package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sudosolve/internal/domain"
)

// Parse reads a Sudoku in the common text forms: nine lines of nine
// cells, or a single 81-character line. Digits 1-9 are givens; '.', '0',
// and '_' mark blanks. Spaces and the box rulers '|', '+', '-' are
// ignored, '#' starts a comment, and blank lines are skipped.
//
// Parse does not enforce the 9x9 shape; it hands back whatever rows it
// found and leaves rejection to the solver's validator.
func Parse(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		row, err := parseRow(line, lineNo)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue // nothing but whitespace/rulers on this line
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	// one-liner form: a single run of 81 cells
	if len(rows) == 1 && len(rows[0]) == 81 {
		flat := rows[0]
		rows = make([][]int, 9)
		for r := 0; r < 9; r++ {
			rows[r] = flat[r*9 : (r+1)*9]
		}
	}
	return rows, nil
}

// ParseString is Parse over an in-memory puzzle.
func ParseString(s string) ([][]int, error) {
	return Parse(strings.NewReader(s))
}

func parseRow(line string, lineNo int) ([]int, error) {
	var row []int
	for _, ch := range line {
		switch {
		case ch >= '1' && ch <= '9':
			row = append(row, int(ch-'0'))
		case ch == '.' || ch == '0' || ch == '_':
			row = append(row, 0)
		case ch == ' ' || ch == '\t' || ch == '|' || ch == '+' || ch == '-':
			// layout characters
		default:
			return nil, fmt.Errorf("line %d: unexpected character %q", lineNo, ch)
		}
	}
	return row, nil
}

// Render formats a grid as nine rows of digits with box rulers, '.' for
// blanks. The output parses back with Parse.
func Render(g *domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
			if c < 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
