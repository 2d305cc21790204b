package group

import "errors"

// Sentinel errors for group element operations.
var (
	// ErrOperationalMismatch indicates an attempt to combine elements of
	// incompatible groups (differing dimension, modulus, or letter count).
	ErrOperationalMismatch = errors.New("group: operational mismatch")

	// ErrSingular indicates a GL_n/PGL_n element became non-invertible,
	// which should never happen for a value constructed through this
	// package's canonicalizing constructors, but is surfaced rather than
	// panicking if it ever does (e.g. a caller builds a GLn by hand).
	ErrSingular = errors.New("group: matrix is singular")

	// ErrZeroQuaternion indicates Inverse was requested on a quaternion
	// whose norm is not invertible mod q (the zero quaternion, or a
	// nonzero quaternion whose norm happens to be 0 mod q).
	ErrZeroQuaternion = errors.New("group: quaternion has no inverse")
)
