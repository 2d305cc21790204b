package bytefield

import "errors"

// Sentinel errors for field construction and lookup.
var (
	// ErrBadOrder is returned by New when p is not prime, k < 1, or the
	// resulting order p^k exceeds 256.
	ErrBadOrder = errors.New("bytefield: order must be p^k <= 256 with p prime")

	// ErrNotInvertible is returned by Inv for the zero element.
	ErrNotInvertible = errors.New("bytefield: zero has no inverse")

	// ErrOutOfRange is returned when an element index is not below the
	// field order.
	ErrOutOfRange = errors.New("bytefield: element index out of range")
)
