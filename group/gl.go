package group

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/matfield"
)

// GLn is an invertible n×n matrix over F_q, represented as the unique
// matrix with entries in [0,q).
type GLn struct {
	N int
	Q arith.Short
	M *matfield.Dense
}

// NewGLn wraps a pre-reduced, invertible matrix as a GLn element. Callers
// constructing elements for a Cayley graph are expected to pass already
// non-singular matrices (catalog constructors do); this constructor does
// not itself re-validate invertibility, to stay O(1) on the hot path —
// ShellAnalyzer-adjacent callers that need to validate explicitly can call
// matfield.Determinant themselves.
func NewGLn(m *matfield.Dense, q arith.Short) GLn {
	return GLn{N: m.Rows(), Q: q, M: matfield.Reduce(m, q)}
}

// Identity implements Element.
func (g GLn) Identity() Element {
	return GLn{N: g.N, Q: g.Q, M: matfield.Identity(g.N)}
}

// Inverse implements Element.
func (g GLn) Inverse() (Element, error) {
	inv, err := matfield.Inverse(g.M, g.Q)
	if err != nil {
		return nil, fmt.Errorf("GLn.Inverse: %w", ErrSingular)
	}

	return GLn{N: g.N, Q: g.Q, M: inv}, nil
}

// Left implements Element: returns h·x.
func (g GLn) Left(h Element) (Element, error) {
	hg, ok := h.(GLn)
	if !ok || !g.OperationalWith(h) {
		return nil, fmt.Errorf("GLn.Left: %w", ErrOperationalMismatch)
	}
	prod, err := matfield.Product(hg.M, g.M, g.Q)
	if err != nil {
		return nil, fmt.Errorf("GLn.Left: %w", err)
	}

	return GLn{N: g.N, Q: g.Q, M: prod}, nil
}

// Right implements Element: returns x·h.
func (g GLn) Right(h Element) (Element, error) {
	hg, ok := h.(GLn)
	if !ok || !g.OperationalWith(h) {
		return nil, fmt.Errorf("GLn.Right: %w", ErrOperationalMismatch)
	}
	prod, err := matfield.Product(g.M, hg.M, g.Q)
	if err != nil {
		return nil, fmt.Errorf("GLn.Right: %w", err)
	}

	return GLn{N: g.N, Q: g.Q, M: prod}, nil
}

// Equal implements Element: entries already reduced into [0,q), so this
// is a plain array compare.
func (g GLn) Equal(h Element) bool {
	hg, ok := h.(GLn)
	if !ok {
		return false
	}
	if g.N != hg.N || g.Q != hg.Q {
		return false
	}

	return g.M.Equal(hg.M)
}

// HashKey implements Element.
func (g GLn) HashKey() string {
	return fmt.Sprintf("GL|%d|%d|%s", g.N, g.Q, g.M.String())
}

// OperationalWith implements Element.
func (g GLn) OperationalWith(h Element) bool {
	hg, ok := h.(GLn)

	return ok && g.N == hg.N && g.Q == hg.Q
}
