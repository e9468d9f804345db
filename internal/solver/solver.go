package solver

import (
	"context"
	"time"

	"sudosolve/internal/domain"
	"sudosolve/internal/ports"
)

// Backtracking is a straightforward recursive solver. It is stateless;
// each Solve call works on its own copy of the input, so one value may be
// shared by concurrent callers.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// Solve validates cells and searches for a completion. Candidates are
// tried in ascending order at the first empty cell in row-major order and
// the first completion found wins, so a puzzle with several solutions
// always yields the same one.
func (s *Backtracking) Solve(ctx context.Context, cells [][]int) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid, err := GridFrom(cells)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := checkGivens(&grid); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	nodes := 0
	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := nextEmpty(&grid, pos)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs(r*9 + c + 1) {
					return true
				}
				// undo before the next candidate; a stale digit here
				// would poison canPlace for sibling branches
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs(0) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := grid
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
