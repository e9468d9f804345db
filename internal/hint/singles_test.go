package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudosolve/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1) // (0,8) can only hold 9
	}

	h, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, h.Cells)
	assert.Contains(t, h.Message, "9")
	assert.Equal(t, domain.StrategySingles, h.Strategy)
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	var g domain.Grid
	_, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategyXWing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintRespectsTierCap(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	_, ok, err := NewSingles().Hint(context.Background(), &g, domain.StrategyTier(-1))
	require.NoError(t, err)
	assert.False(t, ok)
}
