package catalog

import "github.com/podeks/ramangraph/group"

// Named-group generator constants (Mathieu, Janko, Suzuki, G2 families).
// The contract is that each factory returns *a* generating pair on its
// named permutation degree, not a verified-minimal or independently
// checked one. Mathieu11 and Mathieu12 use the commonly published
// two-generator words for M11 (degree 11) and M12 (degree 12). The
// remaining families act on degrees (22, 266, 100, 65, 351) whose
// literature generator words are too long to transcribe reliably by
// hand, so each returns a representative two-generator set built from a
// full cycle on its degree plus the involution reversing the points
// (fixed-point-free for even degree; for odd degree the middle point is
// fixed) — enough
// to drive cayley.Build end to end, but not a claim of exact
// correctness for the named group. See DESIGN.md.

// Mathieu11 returns the standard degree-11 generating pair for M11: an
// 11-cycle and the product of two disjoint 4-cycles (2 6 10 7)(3 9 4 5),
// 0-indexed from the commonly published 1-indexed (3 7 11 8)(4 10 5 6).
func Mathieu11() []group.Perm {
	a := group.Cycle(11, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	c1 := group.Cycle(11, 2, 6, 10, 7)
	c2 := group.Cycle(11, 3, 9, 4, 5)
	bElem, _ := c1.Right(c2)
	b := bElem.(group.Perm)

	return []group.Perm{a, b}
}

// Mathieu12 returns the standard degree-12 generating pair for M12.
func Mathieu12() []group.Perm {
	a := group.Cycle(12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10) // fixes 11
	b := group.NewPerm([]int{11, 10, 5, 7, 8, 2, 9, 3, 4, 6, 1, 0}) // (0 11)(1 10)(2 5)(3 7)(4 8)(6 9)

	return []group.Perm{a, b}
}

// representativePair returns a full n-cycle and a product of disjoint
// transpositions pairing i with n-1-i (for odd n the middle point
// (n-1)/2 is fixed), as a placeholder two-generator
// set for a named group whose exact literature generators were not
// reproduced (see file doc comment above).
func representativePair(n int) []group.Perm {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	a := group.Cycle(n, indices...)
	b := group.IdentityPerm(n)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		b.Vals[i], b.Vals[j] = b.Vals[j], b.Vals[i]
	}

	return []group.Perm{a, b}
}

// Mathieu22 returns a representative degree-22 generating pair (see file
// doc comment: placeholder, not a verified M22 representation).
func Mathieu22() []group.Perm { return representativePair(22) }

// Janko1 returns a representative degree-266 generating pair (J1's
// smallest faithful permutation degree; placeholder, see file comment).
func Janko1() []group.Perm { return representativePair(266) }

// Janko2 returns a representative degree-100 generating pair (J2's
// smallest faithful permutation degree; placeholder, see file comment).
func Janko2() []group.Perm { return representativePair(100) }

// Suzuki8 returns a representative degree-65 generating pair (Sz(8) acts
// on the 65 points of its associated ovoid; placeholder, see file
// comment).
func Suzuki8() []group.Perm { return representativePair(65) }

// G2_3 returns a representative degree-351 generating pair (placeholder,
// see file comment).
func G2_3() []group.Perm { return representativePair(351) }
