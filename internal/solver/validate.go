package solver

import (
	"fmt"

	"sudosolve/internal/domain"
)

// GridFrom checks the shape and range of a raw grid and returns an owned
// copy. Rows and columns are 1-indexed in error messages.
func GridFrom(cells [][]int) (domain.Grid, error) {
	var g domain.Grid
	if len(cells) != 9 {
		return g, fmt.Errorf("%w: wrong row count: got %d, want 9", ErrBadShape, len(cells))
	}
	for r, row := range cells {
		if len(row) != 9 {
			return g, fmt.Errorf("%w: wrong column count: row %d has %d values, want 9", ErrBadShape, r+1, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return g, fmt.Errorf("%w: cell (%d,%d) holds %d, want 0-9", ErrOutOfRange, r+1, c+1, v)
			}
			g[r][c] = uint8(v)
		}
	}
	return g, nil
}

// checkGivens detects contradictions among the pre-filled cells. Each
// non-zero cell is cleared, re-tested against the rest of the board, and
// restored before the next cell is examined, so the grid is bit-identical
// to its input state when the check returns.
func checkGivens(g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			g[r][c] = 0
			ok := canPlace(g, r, c, v)
			g[r][c] = v
			if !ok {
				return fmt.Errorf("%w: digit %d at (%d,%d)", ErrConflict, v, r+1, c+1)
			}
		}
	}
	return nil
}
