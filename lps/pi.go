package lps

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/group"
	"github.com/podeks/ramangraph/matfield"
)

// PiParams holds the pair (x,y) precomputed from q,
// used to evaluate π on any admissible quaternion for this q.
type PiParams struct {
	Q    arith.Short
	X, Y arith.Short
}

// NewPiParams computes (x,y) for modulus q.
//
//   - q ≡ 1 (mod 4): x = ι with ι² ≡ -1 (mod q), y = 0.
//   - otherwise: A is the largest value representable as i² mod q for
//     i in [1, q/2]; x = sqrt(A) mod q, y = sqrt(-A-1) mod q.
func NewPiParams(q arith.Short) (PiParams, error) {
	if q < 3 || !arith.IsPrime(q) {
		return PiParams{}, fmt.Errorf("NewPiParams(%d): %w", q, ErrEvenPrime)
	}

	if q%4 == 1 {
		iota, ok := arith.FindIota(q)
		if !ok {
			return PiParams{}, fmt.Errorf("NewPiParams(%d): no square root of -1", q)
		}

		return PiParams{Q: q, X: iota, Y: 0}, nil
	}

	var maxA arith.Short = -1
	for i := arith.Short(1); i <= q/2; i++ {
		v := (i * i) % q
		if v > maxA {
			maxA = v
		}
	}

	x, ok := arith.FindSquareRoot(maxA, q)
	if !ok {
		return PiParams{}, fmt.Errorf("NewPiParams(%d): no square root of A=%d", q, maxA)
	}
	y, ok := arith.FindSquareRoot(-maxA-1, q)
	if !ok {
		return PiParams{}, fmt.Errorf("NewPiParams(%d): no square root of -A-1=%d", q, -maxA-1)
	}

	return PiParams{Q: q, X: x, Y: y}, nil
}

// Pi maps an admissible quaternion to a 2x2 matrix over F_q and wraps
// it as a PGL_2(F_q) element. Returns ErrSingularGenerator when the
// matrix is singular mod q — this happens precisely when norm(quad) ≡ 0
// (mod q), which is why the construction requires p != q.
func (pp PiParams) Pi(quad Quadruple) (group.PGLn, error) {
	q := pp.Q
	a, b, c, d := quad.X0, quad.X1, quad.X2, quad.X3

	m, err := matfield.NewDense(2, 2)
	if err != nil {
		return group.PGLn{}, err
	}
	m.Set(0, 0, a+pp.X*b+pp.Y*d)
	m.Set(0, 1, c+pp.X*d-pp.Y*b)
	m.Set(1, 0, -c+pp.X*d-pp.Y*b)
	m.Set(1, 1, a-pp.X*b-pp.Y*d)
	m = matfield.Reduce(m, q)

	if matfield.Determinant(m, q) == 0 {
		return group.PGLn{}, fmt.Errorf("lps.Pi: %w", ErrSingularGenerator)
	}

	return group.NewPGLn(m, q), nil
}
