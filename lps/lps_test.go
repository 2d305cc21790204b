package lps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podeks/ramangraph/arith"
)

func TestAdmissibleQuaternionsCountIsPPlusOne(t *testing.T) {
	for _, p := range []arith.Short{3, 5, 7, 11, 13, 17, 19, 23} {
		quads, err := AdmissibleQuaternions(p)
		require.NoError(t, err)
		assert.Len(t, quads, int(p)+1, "p=%d", p)
		for _, q := range quads {
			sum := q.X0*q.X0 + q.X1*q.X1 + q.X2*q.X2 + q.X3*q.X3
			assert.Equal(t, p, sum, "quaternion %+v does not have norm %d", q, p)
		}
	}
}

func TestAdmissibleQuaternionsPEquals5Shape(t *testing.T) {
	quads, err := AdmissibleQuaternions(5)
	require.NoError(t, err)
	require.Len(t, quads, 6)
	for _, q := range quads {
		assert.Equal(t, arith.Short(1), q.X0)
		assert.True(t, q.X1%2 == 0 && q.X2%2 == 0 && q.X3%2 == 0)
	}
}

func TestAdmissibleQuaternionsPEquals3Shape(t *testing.T) {
	quads, err := AdmissibleQuaternions(3)
	require.NoError(t, err)
	require.Len(t, quads, 4)
	for _, q := range quads {
		assert.Equal(t, arith.Short(0), q.X0)
		assert.True(t, q.X1%2 != 0 && q.X2%2 != 0 && q.X3%2 != 0)
		assert.Positive(t, q.X1)
	}
}

func TestPiParamsQEquals5(t *testing.T) {
	pp, err := NewPiParams(5)
	require.NoError(t, err)
	assert.Equal(t, arith.Short(2), pp.X)
	assert.Equal(t, arith.Short(0), pp.Y)
}

func TestPiIdentityQuaternionMapsToIdentity(t *testing.T) {
	pp, err := NewPiParams(5)
	require.NoError(t, err)
	g, err := pp.Pi(Quadruple{X0: 1, X1: 0, X2: 0, X3: 0})
	require.NoError(t, err)
	id := g.Identity()
	assert.True(t, g.Equal(id))
}

func TestPiSingularWhenNormDividesQ(t *testing.T) {
	pp, err := NewPiParams(5)
	require.NoError(t, err)
	_, err = pp.Pi(Quadruple{X0: 1, X1: 2, X2: 0, X3: 0})
	assert.ErrorIs(t, err, ErrSingularGenerator)
}

func TestGeneratorsRejectsEqualPrimes(t *testing.T) {
	_, err := Generators(5, 5)
	assert.ErrorIs(t, err, ErrSamePrime)
}

func TestGeneratorsCountForPEquals3QEquals5(t *testing.T) {
	gens, err := Generators(3, 5)
	require.NoError(t, err)
	assert.Len(t, gens, 4)
}

func TestGeneratorsCountScalesWithP(t *testing.T) {
	gens, err := Generators(5, 13)
	require.NoError(t, err)
	assert.Len(t, gens, 6)
}
