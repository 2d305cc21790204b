package group

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/matfield"
)

// PGLn is the projective equivalence class of an invertible n×n matrix
// over F_q under scalar multiplication. The internal
// representation is always the canonical representative: scale by the
// inverse of the first nonzero entry of the first column so that entry
// becomes 1, then reduce every entry into [0,q).
type PGLn struct {
	N   int
	Q   arith.Short
	Rep *matfield.Dense
}

// canonicalizePGL scales m so the first nonzero entry of column 0 is 1.
// If column 0 is entirely zero (shouldn't happen for an invertible
// matrix), m is returned unchanged.
func canonicalizePGL(m *matfield.Dense, q arith.Short) *matfield.Dense {
	n := m.Rows()
	pivotRow := -1
	for i := 0; i < n; i++ {
		if m.At(i, 0) != 0 {
			pivotRow = i
			break
		}
	}
	if pivotRow == -1 {
		return matfield.Reduce(m, q)
	}
	inv, err := arith.FindInverse(m.At(pivotRow, 0), q)
	if err != nil {
		return matfield.Reduce(m, q)
	}

	return matfield.ScalarMul(inv, m, q)
}

// NewPGLn wraps an invertible matrix as a PGLn element, canonicalizing
// immediately.
func NewPGLn(m *matfield.Dense, q arith.Short) PGLn {
	return PGLn{N: m.Rows(), Q: q, Rep: canonicalizePGL(m, q)}
}

// Identity implements Element.
func (p PGLn) Identity() Element {
	return PGLn{N: p.N, Q: p.Q, Rep: canonicalizePGL(matfield.Identity(p.N), p.Q)}
}

// Inverse implements Element.
func (p PGLn) Inverse() (Element, error) {
	inv, err := matfield.Inverse(p.Rep, p.Q)
	if err != nil {
		return nil, fmt.Errorf("PGLn.Inverse: %w", ErrSingular)
	}

	return PGLn{N: p.N, Q: p.Q, Rep: canonicalizePGL(inv, p.Q)}, nil
}

// Left implements Element: returns the canonical class of h·x.
func (p PGLn) Left(h Element) (Element, error) {
	hp, ok := h.(PGLn)
	if !ok || !p.OperationalWith(h) {
		return nil, fmt.Errorf("PGLn.Left: %w", ErrOperationalMismatch)
	}
	prod, err := matfield.Product(hp.Rep, p.Rep, p.Q)
	if err != nil {
		return nil, fmt.Errorf("PGLn.Left: %w", err)
	}

	return PGLn{N: p.N, Q: p.Q, Rep: canonicalizePGL(prod, p.Q)}, nil
}

// Right implements Element: returns the canonical class of x·h.
func (p PGLn) Right(h Element) (Element, error) {
	hp, ok := h.(PGLn)
	if !ok || !p.OperationalWith(h) {
		return nil, fmt.Errorf("PGLn.Right: %w", ErrOperationalMismatch)
	}
	prod, err := matfield.Product(p.Rep, hp.Rep, p.Q)
	if err != nil {
		return nil, fmt.Errorf("PGLn.Right: %w", err)
	}

	return PGLn{N: p.N, Q: p.Q, Rep: canonicalizePGL(prod, p.Q)}, nil
}

// Equal implements Element: canonical-representative array compare.
func (p PGLn) Equal(h Element) bool {
	hp, ok := h.(PGLn)
	if !ok {
		return false
	}
	if p.N != hp.N || p.Q != hp.Q {
		return false
	}

	return p.Rep.Equal(hp.Rep)
}

// HashKey implements Element.
func (p PGLn) HashKey() string {
	return fmt.Sprintf("PGL|%d|%d|%s", p.N, p.Q, p.Rep.String())
}

// OperationalWith implements Element.
func (p PGLn) OperationalWith(h Element) bool {
	hp, ok := h.(PGLn)

	return ok && p.N == hp.N && p.Q == hp.Q
}
