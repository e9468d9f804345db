package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudosolve/internal/domain"
	"sudosolve/internal/ports"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Name:       "weekend",
		Notes:      "from the paper",
		Difficulty: domain.Expert,
		CreatedAt:  time.Now().UnixNano(),
	}
	p.Grid[4][4] = 9

	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// saving again with the same ID updates in place
	p.Name = "weekend (renamed)"
	require.NoError(t, s.Save(ctx, p))
	got, err = s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekend (renamed)", got.Name)

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, p.ID, metas[0].ID)

	require.NoError(t, s.Delete(ctx, p.ID))
	_, err = s.Load(ctx, p.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSQLiteListOrderedNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	older := &domain.Puzzle{ID: uuid.NewString(), Name: "older", CreatedAt: 100}
	newer := &domain.Puzzle{ID: uuid.NewString(), Name: "newer", CreatedAt: 200}
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "newer", metas[0].Name)
	assert.Equal(t, "older", metas[1].Name)
}

func TestSQLiteMissingID(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.Error(t, s.Save(ctx, &domain.Puzzle{}))
	_, err := s.Load(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "nope"), ports.ErrNotFound)
}
