package matfield

import "errors"

// Sentinel errors for matfield operations.
var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sum/Product called with shapes that don't line up.
	ErrDimensionMismatch = errors.New("matfield: dimension mismatch")

	// ErrNotSquare indicates a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matfield: matrix is not square")

	// ErrSingular indicates Inverse was requested for a singular matrix.
	ErrSingular = errors.New("matfield: matrix is singular")

	// ErrNonPrimeModulus indicates Inverse was requested with a composite q;
	// Gaussian elimination over a non-prime ring cannot guarantee pivots invert.
	ErrNonPrimeModulus = errors.New("matfield: modulus is not prime")

	// ErrBadShape indicates a requested matrix shape is invalid (rows/cols <= 0).
	ErrBadShape = errors.New("matfield: invalid shape")
)
