package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudosolve/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][4], g[4][0] = 1, 2, 3

	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateReportsConflictCells(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][5] = 5, 5 // row duplicate
	g[2][2], g[8][2] = 7, 7 // column duplicate
	g[4][4], g[5][5] = 9, 9 // box duplicate

	ok, conf, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	assert.False(t, ok)
	// the later of each duplicated pair is flagged
	assert.ElementsMatch(t, []domain.CellCoord{
		{Row: 0, Col: 5},
		{Row: 8, Col: 2},
		{Row: 5, Col: 5},
	}, conf)
}
