package catalog

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/group"
	"github.com/podeks/ramangraph/matfield"
)

// cyclicShift returns the n×n permutation matrix for the n-cycle sending
// basis vector i to i+1 (mod n). Used as a GL_n generator alongside a
// transvection: together they reach outside any single Borel/parabolic
// subgroup, which is all a catalog factory needs to claim.
func cyclicShift(n int) *matfield.Dense {
	m, _ := matfield.NewDense(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, (i+1)%n, 1)
	}

	return m
}

func diagonalWithLead(n int, lead arith.Short) *matfield.Dense {
	m := matfield.Identity(n)
	m.Set(0, 0, lead)

	return m
}

// GLnPair returns a generating set for GL_n(F_q), in this order: the
// n-cycle basis shift, a diagonal matrix carrying a multiplicative
// generator of F_q* in its first entry, and the elementary transvection
// E_{1,2}(1) (n >= 2 only). The diagonal generator's determinant
// generates F_q*, so the set is not confined to SL_n(F_q).
func GLnPair(n int, q arith.Short) ([]group.GLn, error) {
	if n < 1 || !arith.IsPrime(q) {
		return nil, fmt.Errorf("GLnPair(%d,%d): %w", n, q, ErrInvalidParameters)
	}
	lead, ok := arith.GetMultiplicativeGenerator(q)
	if !ok {
		return nil, fmt.Errorf("GLnPair(%d,%d): %w", n, q, ErrInvalidParameters)
	}

	gens := []*matfield.Dense{cyclicShift(n), diagonalWithLead(n, lead)}
	if n >= 2 {
		gens = append(gens, matfield.Elementary(n, 1, 2))
	}

	return wrapGLn(gens, q), nil
}

// SLn returns the classical elementary-transvection generating set of
// SL_n(F_q): E_{i,i+1}(1) and E_{i+1,i}(1) for i = 1..n-1. For n == 1,
// SL_1 is trivial; the single generator returned is the identity.
func SLn(n int, q arith.Short) ([]group.GLn, error) {
	if n < 1 || !arith.IsPrime(q) {
		return nil, fmt.Errorf("SLn(%d,%d): %w", n, q, ErrInvalidParameters)
	}
	if n == 1 {
		return []group.GLn{group.NewGLn(matfield.Identity(1), q)}, nil
	}

	var gens []*matfield.Dense
	for i := 1; i < n; i++ {
		gens = append(gens, matfield.Elementary(n, i, i+1))
		gens = append(gens, matfield.Elementary(n, i+1, i))
	}

	return wrapGLn(gens, q), nil
}

// symplecticForm returns the 2m×2m standard symplectic form J, block
// [[0,I],[-I,0]].
func symplecticForm(m int) *matfield.Dense {
	n := 2 * m
	j, _ := matfield.NewDense(n, n)
	for i := 0; i < m; i++ {
		j.Set(i, m+i, 1)
		j.Set(m+i, i, -1)
	}

	return j
}

// symplecticTransvection returns I + c·(Jv)vᵗ for the standard basis
// vector v = e_idx, a genuine element of Sp(2m,q) for any idx and any c
// (the defining property of a symplectic transvection).
func symplecticTransvection(j *matfield.Dense, idx int, c, q arith.Short) (*matfield.Dense, error) {
	n := j.Rows()
	v, _ := matfield.NewDense(n, 1)
	v.Set(idx, 0, 1)

	w, err := matfield.Product(j, v, q)
	if err != nil {
		return nil, err
	}
	outer, err := matfield.Product(w, matfield.Transpose(v), q)
	if err != nil {
		return nil, err
	}
	scaled := matfield.ScalarMul(c, outer, q)

	return matfield.Sum(matfield.Identity(n), scaled, q)
}

// Sp2m returns a generating set for Sp(2m,q): the symplectic
// transvections at c=1 for every standard basis vector. Every
// transvection returned genuinely lies in Sp(2m,q); that the full set of
// basis transvections generates the group is the classical fact this
// factory relies on without re-proving.
func Sp2m(m int, q arith.Short) ([]group.GLn, error) {
	if m < 1 || !arith.IsPrime(q) {
		return nil, fmt.Errorf("Sp2m(%d,%d): %w", m, q, ErrInvalidParameters)
	}
	j := symplecticForm(m)
	n := 2 * m

	var gens []*matfield.Dense
	for idx := 0; idx < n; idx++ {
		t, err := symplecticTransvection(j, idx, 1, q)
		if err != nil {
			return nil, fmt.Errorf("Sp2m(%d,%d): %w", m, q, err)
		}
		gens = append(gens, t)
	}

	return wrapGLn(gens, q), nil
}

// GSp2m returns a generating set for GSp(2m,q): Sp(2m,q)'s generators
// plus the similitude diag(g,...,g,1,...,1) (g repeated m times), which
// scales the symplectic form by g and so lies outside Sp(2m,q) whenever g
// != 1.
func GSp2m(m int, q arith.Short) ([]group.GLn, error) {
	sp, err := Sp2m(m, q)
	if err != nil {
		return nil, fmt.Errorf("GSp2m(%d,%d): %w", m, q, err)
	}
	g, ok := arith.GetMultiplicativeGenerator(q)
	if !ok {
		return nil, fmt.Errorf("GSp2m(%d,%d): %w", m, q, ErrInvalidParameters)
	}
	n := 2 * m
	sim := matfield.Identity(n)
	for i := 0; i < m; i++ {
		sim.Set(i, i, g)
	}

	return append(sp, group.NewGLn(sim, q)), nil
}

func wrapGLn(mats []*matfield.Dense, q arith.Short) []group.GLn {
	out := make([]group.GLn, 0, len(mats))
	for _, m := range mats {
		out = append(out, group.NewGLn(m, q))
	}

	return out
}

func wrapPGLn(mats []group.GLn, q arith.Short) []group.PGLn {
	out := make([]group.PGLn, 0, len(mats))
	for _, m := range mats {
		out = append(out, group.NewPGLn(m.M, q))
	}

	return out
}

// PGLn returns the PGL_n(F_q) image of GLnPair's generators.
func PGLn(n int, q arith.Short) ([]group.PGLn, error) {
	gens, err := GLnPair(n, q)
	if err != nil {
		return nil, err
	}

	return wrapPGLn(gens, q), nil
}

// PSLn returns the PSL_n(F_q) subgroup of PGL_n(F_q): the image of SLn's
// determinant-1 generators under the same projective quotient.
func PSLn(n int, q arith.Short) ([]group.PGLn, error) {
	gens, err := SLn(n, q)
	if err != nil {
		return nil, err
	}

	return wrapPGLn(gens, q), nil
}

// PSp2m returns the PSp(2m,q) image of Sp2m's generators. Symplectic
// matrices always have determinant 1, so this image lands inside
// PSL(2m,q) as expected.
func PSp2m(m int, q arith.Short) ([]group.PGLn, error) {
	gens, err := Sp2m(m, q)
	if err != nil {
		return nil, err
	}

	return wrapPGLn(gens, q), nil
}

// PGSp2m returns the PGSp(2m,q) image of GSp2m's generators.
func PGSp2m(m int, q arith.Short) ([]group.PGLn, error) {
	gens, err := GSp2m(m, q)
	if err != nil {
		return nil, err
	}

	return wrapPGLn(gens, q), nil
}
