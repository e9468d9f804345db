package validator

import (
	"context"

	"sudosolve/internal/domain"
)

// Fast flags duplicate digits with a single bitmask pass over the board.
// It reports the cells the UI should highlight; the solver does its own
// stricter pre-search validation.
type Fast struct{}

func New() *Fast { return &Fast{} }

func (v *Fast) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	var rows, cols, boxes [9]uint16
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			b := r/3*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
