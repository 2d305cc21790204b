package group

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
)

// Quaternion is a reduced quaternion over F_q: (x0,x1,x2,x3) with
// entries centered in [-(q-1)/2, (q-1)/2], q an odd prime.
type Quaternion struct {
	Q              arith.Short
	X0, X1, X2, X3 arith.Short
}

// NewQuaternion reduces (a,b,c,d) centered mod q.
func NewQuaternion(a, b, c, d, q arith.Short) Quaternion {
	return Quaternion{
		Q:  q,
		X0: arith.Reduce(a, q),
		X1: arith.Reduce(b, q),
		X2: arith.Reduce(c, q),
		X3: arith.Reduce(d, q),
	}
}

// multiplyQuaternion applies the Hamilton product i^2=j^2=k^2=ijk=-1,
// reduced centered mod q.
func multiplyQuaternion(a, b Quaternion) Quaternion {
	q := a.Q
	real := a.X0*b.X0 - a.X1*b.X1 - a.X2*b.X2 - a.X3*b.X3
	i := a.X0*b.X1 + a.X1*b.X0 + a.X2*b.X3 - a.X3*b.X2
	j := a.X0*b.X2 - a.X1*b.X3 + a.X2*b.X0 + a.X3*b.X1
	k := a.X0*b.X3 + a.X1*b.X2 - a.X2*b.X1 + a.X3*b.X0

	return NewQuaternion(real, i, j, k, q)
}

// Norm returns x0^2+x1^2+x2^2+x3^2 reduced mod q.
func (x Quaternion) Norm() arith.Short {
	return arith.Reduce(x.X0*x.X0+x.X1*x.X1+x.X2*x.X2+x.X3*x.X3, x.Q)
}

// Identity implements Element.
func (x Quaternion) Identity() Element {
	return NewQuaternion(1, 0, 0, 0, x.Q)
}

// Inverse implements Element: conjugate * (norm)^-1.
func (x Quaternion) Inverse() (Element, error) {
	n := x.Norm()
	ninv, err := arith.FindInverse(n, x.Q)
	if err != nil {
		return nil, fmt.Errorf("Quaternion.Inverse: %w", ErrZeroQuaternion)
	}

	return NewQuaternion(ninv*x.X0, -ninv*x.X1, -ninv*x.X2, -ninv*x.X3, x.Q), nil
}

// Right implements Element: x·h.
func (x Quaternion) Right(h Element) (Element, error) {
	hq, ok := h.(Quaternion)
	if !ok || !x.OperationalWith(h) {
		return nil, fmt.Errorf("Quaternion.Right: %w", ErrOperationalMismatch)
	}

	return multiplyQuaternion(x, hq), nil
}

// Left implements Element: h·x.
func (x Quaternion) Left(h Element) (Element, error) {
	hq, ok := h.(Quaternion)
	if !ok || !x.OperationalWith(h) {
		return nil, fmt.Errorf("Quaternion.Left: %w", ErrOperationalMismatch)
	}

	return multiplyQuaternion(hq, x), nil
}

// Equal implements Element.
func (x Quaternion) Equal(h Element) bool {
	hq, ok := h.(Quaternion)

	return ok && x.Q == hq.Q && x.X0 == hq.X0 && x.X1 == hq.X1 && x.X2 == hq.X2 && x.X3 == hq.X3
}

// HashKey implements Element.
func (x Quaternion) HashKey() string {
	return fmt.Sprintf("Q|%d|%d|%d|%d|%d", x.Q, x.X0, x.X1, x.X2, x.X3)
}

// OperationalWith implements Element.
func (x Quaternion) OperationalWith(h Element) bool {
	hq, ok := h.(Quaternion)

	return ok && x.Q == hq.Q
}
