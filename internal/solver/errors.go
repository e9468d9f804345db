package solver

import "errors"

// The four ways a solve can fail. Positional detail is attached with
// fmt.Errorf("%w: ...") so callers match with errors.Is and users still
// see which row or cell was at fault.
var (
	ErrBadShape   = errors.New("grid has wrong shape")
	ErrOutOfRange = errors.New("value out of range")
	ErrConflict   = errors.New("puzzle has conflicting values")
	ErrUnsolvable = errors.New("puzzle has no solution")
)
