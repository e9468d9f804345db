package solver

import "sudosolve/internal/domain"

// canPlace reports whether digit v may legally occupy (r, c): no other
// cell in the same row, column, or 3x3 box holds v. The four cells the
// box shares with the row and column are scanned twice, which is
// harmless. Never mutates the grid.
func canPlace(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// nextEmpty scans forward in row-major order from cell index pos (0..80)
// and returns the first empty cell, or ok=false when none remains.
func nextEmpty(g *domain.Grid, pos int) (r, c int, ok bool) {
	for ; pos < 81; pos++ {
		if g[pos/9][pos%9] == 0 {
			return pos / 9, pos % 9, true
		}
	}
	return 0, 0, false
}
