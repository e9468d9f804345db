package usecase

import (
	"context"
	"errors"

	"sudosolve/internal/domain"
	"sudosolve/internal/metrics"
	"sudosolve/internal/ports"
	"sudosolve/internal/solver"
)

// Service fronts the solver, validator, hinter, and storage behind one
// struct the adapters can share. Metrics is optional.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Metrics   *metrics.Metrics
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// outcomeFor labels a solve result for the solves_total counter.
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, solver.ErrBadShape):
		return "bad_shape"
	case errors.Is(err, solver.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, solver.ErrConflict):
		return "conflict"
	case errors.Is(err, solver.ErrUnsolvable):
		return "unsolvable"
	default:
		return "error"
	}
}

func (u *Service) Solve(ctx context.Context, cells [][]int) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	g, st, err := u.Solver.Solve(ctx, cells)
	if u.Metrics != nil {
		u.Metrics.SolvesTotal.WithLabelValues(outcomeFor(err)).Inc()
		u.Metrics.SolveDuration.Observe(st.Duration.Seconds())
	}
	return g, st, err
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Delete(ctx, id)
}
