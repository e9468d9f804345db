package ports

import (
	"context"
	"errors"
	"time"

	"sudosolve/internal/domain"
)

// ErrNotFound is returned by Storage implementations for unknown IDs.
var ErrNotFound = errors.New("puzzle not found")

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver validates a raw grid and completes it, or reports why it cannot.
// The input is a nested slice so malformed shapes are representable and
// rejected by the solver rather than the caller.
type Solver interface {
	Solve(ctx context.Context, cells [][]int) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on an
// already-shaped grid and reports the offending cells.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Delete(ctx context.Context, id string) error
}
