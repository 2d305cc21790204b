package catalog

import (
	"github.com/podeks/ramangraph/arith"
	"github.com/podeks/ramangraph/group"
	"github.com/podeks/ramangraph/lps"
	"github.com/podeks/ramangraph/matfield"
)

// LPSGenerators delegates to lps.Generators: the p+1 LPS generator
// matrices in PGL_2(F_q), kept as a list (not deduplicated) since
// multiplicity matters once p >= q^2/4.
func LPSGenerators(p, q arith.Short) ([]group.PGLn, error) {
	return lps.Generators(p, q)
}

// LubotzkyL1 returns the Lubotzky "L1" generating set
// {[[1,1],[0,1]], [[1,0],[1,1]]} together with their
// inverses, as elements of PGL_2(F_q).
func LubotzkyL1(q arith.Short) []group.PGLn {
	upper, _ := matfield.NewDense(2, 2)
	upper.Set(0, 0, 1)
	upper.Set(0, 1, 1)
	upper.Set(1, 1, 1)

	lower, _ := matfield.NewDense(2, 2)
	lower.Set(0, 0, 1)
	lower.Set(1, 0, 1)
	lower.Set(1, 1, 1)

	a := group.NewPGLn(upper, q)
	b := group.NewPGLn(lower, q)
	aInv, _ := a.Inverse()
	bInv, _ := b.Inverse()

	return []group.PGLn{a, b, aInv.(group.PGLn), bInv.(group.PGLn)}
}
