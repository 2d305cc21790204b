package catalog

import (
	"fmt"

	"github.com/podeks/ramangraph/group"
)

// SymmetricPair returns the classical two-generator set for S_n: the
// transposition (0 1) and the n-cycle (0 1 ... n-1).
func SymmetricPair(n int) ([]group.Perm, error) {
	if n < 1 {
		return nil, fmt.Errorf("SymmetricPair(%d): %w", n, ErrInvalidParameters)
	}
	if n == 1 {
		return []group.Perm{group.IdentityPerm(1)}, nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	return []group.Perm{
		group.Transposition(n, 0, 1),
		group.Cycle(n, indices...),
	}, nil
}

// AlternatingPair returns the classical 3-cycle generating set for A_n:
// (0 1 2), (0 1 3), ..., (0 1 n-1). Every 3-cycle (0 1 k) is even, and the
// full family of 3-cycles through a fixed pair {0,1} is a well-known
// generating set of A_n for n >= 3.
func AlternatingPair(n int) ([]group.Perm, error) {
	if n < 3 {
		return nil, fmt.Errorf("AlternatingPair(%d): %w", n, ErrInvalidParameters)
	}
	gens := make([]group.Perm, 0, n-2)
	for k := 2; k < n; k++ {
		gens = append(gens, group.Cycle(n, 0, 1, k))
	}

	return gens, nil
}
