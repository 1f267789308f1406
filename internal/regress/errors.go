package regress

import "errors"

// Sentinel errors returned by the fitting routines. Callers classify with
// errors.Is; wrapped messages carry the offending shapes and values.
var (
	// ErrDimensionMismatch means the predictor matrix and response vector
	// disagree on the number of observations.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrSingularMatrix means the predictor matrix is rank-deficient
	// (perfectly collinear columns, or fewer rows than columns).
	ErrSingularMatrix = errors.New("singular predictor matrix")

	// ErrInvalidParameter means a hyperparameter is out of range, e.g. a
	// negative regularization strength.
	ErrInvalidParameter = errors.New("invalid parameter")
)
