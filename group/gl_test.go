package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podeks/ramangraph/matfield"
)

func shiftMatrix() *matfield.Dense {
	m, _ := matfield.NewDense(2, 2)
	m.Set(0, 0, 0)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 0)

	return m
}

func TestGLnIdentityIsNeutral(t *testing.T) {
	g := NewGLn(shiftMatrix(), 5)
	id := g.Identity()

	prod, err := g.Right(id)
	require.NoError(t, err)
	assert.True(t, prod.Equal(g))
}

func TestGLnInverseRoundTrips(t *testing.T) {
	g := NewGLn(shiftMatrix(), 5)
	inv, err := g.Inverse()
	require.NoError(t, err)

	prod, err := g.Right(inv)
	require.NoError(t, err)
	assert.True(t, prod.Equal(g.Identity()))
}

func TestGLnOperationalMismatchAcrossModulus(t *testing.T) {
	a := NewGLn(shiftMatrix(), 5)
	b := NewGLn(shiftMatrix(), 7)

	assert.False(t, a.OperationalWith(b))
	_, err := a.Right(b)
	assert.ErrorIs(t, err, ErrOperationalMismatch)
}

func TestGLnHashKeyMatchesEqual(t *testing.T) {
	a := NewGLn(shiftMatrix(), 5)
	b := NewGLn(shiftMatrix(), 5)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashKey(), b.HashKey())
}
