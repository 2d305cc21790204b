package bytefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadOrders(t *testing.T) {
	_, err := New(4, 1) // not prime
	assert.ErrorIs(t, err, ErrBadOrder)
	_, err = New(2, 9) // 512 > 256
	assert.ErrorIs(t, err, ErrBadOrder)
	_, err = New(3, 0)
	assert.ErrorIs(t, err, ErrBadOrder)
}

func TestPrimeFieldMatchesModularArithmetic(t *testing.T) {
	f, err := New(7, 1)
	require.NoError(t, err)
	require.Equal(t, 7, f.Order())

	for a := 0; a < 7; a++ {
		for b := 0; b < 7; b++ {
			assert.Equal(t, byte((a+b)%7), f.Add(byte(a), byte(b)))
			assert.Equal(t, byte((a*b)%7), f.Mul(byte(a), byte(b)))
		}
	}
}

func fieldAxioms(t *testing.T, f *Field) {
	t.Helper()
	n := f.Order()

	for a := 0; a < n; a++ {
		ab := byte(a)
		// additive inverse
		assert.Equal(t, byte(0), f.Add(ab, f.Neg(ab)))
		// multiplicative identity and zero
		assert.Equal(t, ab, f.Mul(ab, 1))
		assert.Equal(t, byte(0), f.Mul(ab, 0))

		if a != 0 {
			inv, err := f.Inv(ab)
			require.NoError(t, err)
			assert.Equal(t, byte(1), f.Mul(ab, inv))
		}

		for b := 0; b < n; b++ {
			bb := byte(b)
			// commutativity
			assert.Equal(t, f.Add(ab, bb), f.Add(bb, ab))
			assert.Equal(t, f.Mul(ab, bb), f.Mul(bb, ab))
			for c := 0; c < n; c++ {
				cb := byte(c)
				// distributivity
				left := f.Mul(ab, f.Add(bb, cb))
				right := f.Add(f.Mul(ab, bb), f.Mul(ab, cb))
				require.Equal(t, left, right, "a=%d b=%d c=%d", a, b, c)
			}
		}
	}
}

func TestGF4SatisfiesFieldAxioms(t *testing.T) {
	f, err := New(2, 2)
	require.NoError(t, err)
	fieldAxioms(t, f)
}

func TestGF8SatisfiesFieldAxioms(t *testing.T) {
	f, err := New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 8, f.Order())
	require.Equal(t, 2, f.Char())
	fieldAxioms(t, f)

	// characteristic 2: every element is its own additive inverse.
	for a := 0; a < 8; a++ {
		assert.Equal(t, byte(0), f.Add(byte(a), byte(a)))
	}
}

func TestGF9SatisfiesFieldAxioms(t *testing.T) {
	f, err := New(3, 2)
	require.NoError(t, err)
	require.Equal(t, 9, f.Order())
	fieldAxioms(t, f)
}

func TestInvFailsOnZero(t *testing.T) {
	f, err := New(5, 1)
	require.NoError(t, err)
	_, err = f.Inv(0)
	assert.ErrorIs(t, err, ErrNotInvertible)
	_, err = f.Inv(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
