package group

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/threespace"
)

// ProjQuaternion is a projective reduced quaternion over F_q: a
// Quaternion identified up to scalar multiplication by F_q*. The internal
// representation is canonical: scan (x0,x1,x2,x3) for the first nonzero
// entry and scale by its inverse, so that entry becomes 1.
type ProjQuaternion struct {
	Q              arith.Short
	X0, X1, X2, X3 arith.Short
}

// canonicalizeProj scales x so its first nonzero coordinate is 1.
func canonicalizeProj(x Quaternion) Quaternion {
	coords := [4]arith.Short{x.X0, x.X1, x.X2, x.X3}
	for _, c := range coords {
		if c != 0 {
			inv, err := arith.FindInverse(c, x.Q)
			if err != nil {
				return x
			}

			return NewQuaternion(inv*x.X0, inv*x.X1, inv*x.X2, inv*x.X3, x.Q)
		}
	}

	return x
}

// NewProjQuaternion canonicalizes (a,b,c,d) mod q into a ProjQuaternion.
func NewProjQuaternion(a, b, c, d, q arith.Short) ProjQuaternion {
	can := canonicalizeProj(NewQuaternion(a, b, c, d, q))

	return ProjQuaternion{Q: q, X0: can.X0, X1: can.X1, X2: can.X2, X3: can.X3}
}

func (x ProjQuaternion) asQuaternion() Quaternion {
	return Quaternion{Q: x.Q, X0: x.X0, X1: x.X1, X2: x.X2, X3: x.X3}
}

// Identity implements Element.
func (x ProjQuaternion) Identity() Element {
	return NewProjQuaternion(1, 0, 0, 0, x.Q)
}

// Inverse implements Element: inverse of the underlying reduced
// quaternion, re-canonicalized.
func (x ProjQuaternion) Inverse() (Element, error) {
	inv, err := x.asQuaternion().Inverse()
	if err != nil {
		return nil, fmt.Errorf("ProjQuaternion.Inverse: %w", err)
	}
	q := inv.(Quaternion)

	return NewProjQuaternion(q.X0, q.X1, q.X2, q.X3, x.Q), nil
}

// Right implements Element: canonical class of x·h.
func (x ProjQuaternion) Right(h Element) (Element, error) {
	hx, ok := h.(ProjQuaternion)
	if !ok || !x.OperationalWith(h) {
		return nil, fmt.Errorf("ProjQuaternion.Right: %w", ErrOperationalMismatch)
	}
	prod := multiplyQuaternion(x.asQuaternion(), hx.asQuaternion())

	return NewProjQuaternion(prod.X0, prod.X1, prod.X2, prod.X3, x.Q), nil
}

// Left implements Element: canonical class of h·x.
func (x ProjQuaternion) Left(h Element) (Element, error) {
	hx, ok := h.(ProjQuaternion)
	if !ok || !x.OperationalWith(h) {
		return nil, fmt.Errorf("ProjQuaternion.Left: %w", ErrOperationalMismatch)
	}
	prod := multiplyQuaternion(hx.asQuaternion(), x.asQuaternion())

	return NewProjQuaternion(prod.X0, prod.X1, prod.X2, prod.X3, x.Q), nil
}

// Equal implements Element.
func (x ProjQuaternion) Equal(h Element) bool {
	hx, ok := h.(ProjQuaternion)

	return ok && x.Q == hx.Q && x.X0 == hx.X0 && x.X1 == hx.X1 && x.X2 == hx.X2 && x.X3 == hx.X3
}

// HashKey implements Element.
func (x ProjQuaternion) HashKey() string {
	return fmt.Sprintf("PQ|%d|%d|%d|%d|%d", x.Q, x.X0, x.X1, x.X2, x.X3)
}

// OperationalWith implements Element.
func (x ProjQuaternion) OperationalWith(h Element) bool {
	hx, ok := h.(ProjQuaternion)

	return ok && x.Q == hx.Q
}

// OctahedralOrbit returns the Coxeter orbit of the receiver restricted
// to even-parity sign flips. X0 is held fixed (it carries the admissible
// quaternion sign convention from the LPS construction) and the
// 24-element even-sign-flip/permutation orbit is taken over
// (X1,X2,X3), each point re-paired with the original X0 and
// re-canonicalized.
func (x ProjQuaternion) OctahedralOrbit() []ProjQuaternion {
	pts := threespace.EvenOrbit(threespace.Point{X: x.X1, Y: x.X2, Z: x.X3})
	out := make([]ProjQuaternion, 0, len(pts))
	seen := map[string]bool{}
	for _, p := range pts {
		pq := NewProjQuaternion(x.X0, arith.Short(p.X), arith.Short(p.Y), arith.Short(p.Z), x.Q)
		key := pq.HashKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, pq)
	}

	return out
}
