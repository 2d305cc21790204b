package lps

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/group"
)

// Generators builds the p+1 LPS generator matrices for PGL_2(F_q) from
// integer solutions to x0^2+x1^2+x2^2+x3^2 = p.
// Duplicate matrices (which occur once p >= q^2/4) are intentionally kept,
// not deduplicated, since the multiset encodes the generator set's
// multiplicity for the Cayley graph construction.
func Generators(p, q arith.Short) ([]group.PGLn, error) {
	if p == q {
		return nil, fmt.Errorf("Generators(%d,%d): %w", p, q, ErrSamePrime)
	}

	quads, err := AdmissibleQuaternions(p)
	if err != nil {
		return nil, err
	}

	pp, err := NewPiParams(q)
	if err != nil {
		return nil, err
	}

	out := make([]group.PGLn, 0, len(quads))
	for _, quad := range quads {
		g, err := pp.Pi(quad)
		if err != nil {
			// norm(quad) == p is never ≡ 0 (mod q) for distinct primes,
			// so Pi cannot fail once the p == q guard above has passed.
			return nil, fmt.Errorf("Generators(%d,%d): %w", p, q, err)
		}
		out = append(out, g)
	}

	return out, nil
}
