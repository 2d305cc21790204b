package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podeks/ramangraph/matfield"
)

func TestGLnPairGeneratorsAreInvertible(t *testing.T) {
	gens, err := GLnPair(3, 5)
	require.NoError(t, err)
	require.NotEmpty(t, gens)
	for _, g := range gens {
		assert.NotEqual(t, int64(0), matfield.Determinant(g.M, g.Q))
	}
}

func TestGLnPairRejectsBadParameters(t *testing.T) {
	_, err := GLnPair(0, 5)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = GLnPair(2, 4) // not prime
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestSLnGeneratorsHaveDeterminantOne(t *testing.T) {
	gens, err := SLn(3, 5)
	require.NoError(t, err)
	for _, g := range gens {
		assert.Equal(t, int64(1), matfield.Determinant(g.M, g.Q))
	}
}

func TestSp2mGeneratorsAreInvertible(t *testing.T) {
	gens, err := Sp2m(2, 5)
	require.NoError(t, err)
	require.Len(t, gens, 4)
	for _, g := range gens {
		assert.NotEqual(t, int64(0), matfield.Determinant(g.M, g.Q))
	}
}

func TestGSp2mAddsOneMoreGeneratorThanSp2m(t *testing.T) {
	sp, err := Sp2m(2, 5)
	require.NoError(t, err)
	gsp, err := GSp2m(2, 5)
	require.NoError(t, err)
	assert.Len(t, gsp, len(sp)+1)
}

func TestPGLnAndPSLnWrapIntoProjectiveClasses(t *testing.T) {
	pgl, err := PGLn(2, 5)
	require.NoError(t, err)
	require.NotEmpty(t, pgl)
	for _, p := range pgl {
		firstNonzero := int64(0)
		for i := 0; i < p.N; i++ {
			if v := p.Rep.At(i, 0); v != 0 {
				firstNonzero = v
				break
			}
		}
		assert.Equal(t, int64(1), firstNonzero)
	}

	psl, err := PSLn(2, 5)
	require.NoError(t, err)
	require.NotEmpty(t, psl)
}
