package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudosolve/internal/domain"
	"sudosolve/internal/ports"
)

func TestFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Name:       "evening puzzle",
		Difficulty: domain.Hard,
		CreatedAt:  time.Now().UnixNano(),
	}
	p.Grid[0][0] = 5

	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, p.ID, metas[0].ID)
	assert.Equal(t, domain.Hard, metas[0].Difficulty)

	require.NoError(t, s.Delete(ctx, p.ID))
	_, err = s.Load(ctx, p.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestFSMissingID(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	require.Error(t, s.Save(ctx, &domain.Puzzle{}))
	_, err := s.Load(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "nope"), ports.ErrNotFound)
}

func TestFSListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/never-created")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
