package lps

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/threespace"
)

// Quadruple is an integer Lipschitz quaternion (x0,x1,x2,x3), used only at
// LPS construction time.
type Quadruple struct {
	X0, X1, X2, X3 arith.Short
}

// AdmissibleQuaternions enumerates the p+1 admissible Lipschitz
// quaternions of norm p.
//
// For p ≡ 1 (mod 4) the admissible class is x0 odd and positive with
// x1,x2,x3 even. For p ≡ 3 (mod 4) the four-square parity theorem
// (Jacobi counting) forces the opposite split — x0 even, x1,x2,x3 odd —
// since a sum of four squares ≡ 3 (mod 4) requires three odd terms, not
// one. When x0 = 0 there is no sign to fix, so the tie break that
// collapses {α,−α} to one representative falls to the first nonzero of
// (x1,x2,x3) instead. Either way there are exactly p+1 representatives
// for an odd prime p.
func AdmissibleQuaternions(p arith.Short) ([]Quadruple, error) {
	if p < 3 || !arith.IsPrime(p) {
		return nil, fmt.Errorf("AdmissibleQuaternions(%d): %w", p, ErrEvenPrime)
	}

	if p%4 == 1 {
		return admissibleOddX0(p), nil
	}

	return admissibleEvenX0(p), nil
}

// admissibleOddX0 handles p ≡ 1 (mod 4): x0 odd positive, x1,x2,x3 even.
func admissibleOddX0(p arith.Short) []Quadruple {
	var out []Quadruple
	for x0 := arith.Short(1); x0*x0 <= p; x0 += 2 {
		rem := p - x0*x0
		if rem%4 != 0 {
			continue
		}
		for _, pt := range threespace.EnumeratePoints(rem / 4) {
			out = append(out, Quadruple{X0: x0, X1: pt.X * 2, X2: pt.Y * 2, X3: pt.Z * 2})
		}
	}

	return out
}

// admissibleEvenX0 handles p ≡ 3 (mod 4): x0 even (possibly 0),
// x1,x2,x3 odd.
func admissibleEvenX0(p arith.Short) []Quadruple {
	var out []Quadruple
	for x0 := arith.Short(0); x0*x0 <= p; x0 += 2 {
		rem := p - x0*x0
		for _, pt := range threespace.EnumeratePoints(rem) {
			if !allOdd(pt) {
				continue
			}
			if x0 == 0 && pt.X <= 0 {
				continue
			}
			out = append(out, Quadruple{X0: x0, X1: pt.X, X2: pt.Y, X3: pt.Z})
		}
	}

	return out
}

func allOdd(p threespace.Point) bool {
	return p.X%2 != 0 && p.Y%2 != 0 && p.Z%2 != 0
}
