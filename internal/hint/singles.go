package hint

import (
	"context"
	"fmt"
	"math/bits"

	"sudosolve/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			m := candidates(g, r, c)
			if bits.OnesCount16(m) == 1 {
				v := bits.TrailingZeros16(m)
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

const allDigits = 0b1111111110 // bits 1..9

// candidates returns a bitmask of the digits legal at (r, c).
func candidates(g *domain.Grid, r, c int) uint16 {
	m := uint16(allDigits)
	for i := 0; i < 9; i++ {
		m &^= 1 << g[r][i]
		m &^= 1 << g[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			m &^= 1 << g[br+dr][bc+dc]
		}
	}
	return m & allDigits
}
