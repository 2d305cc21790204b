package arith

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceCentered(t *testing.T) {
	cases := []struct {
		m, q Short
	}{
		{0, 5},
		{5, 5},
		{3, 5},
		{-3, 5},
		{7, 5},
		{1, 2},
	}
	for _, c := range cases {
		got := Reduce(c.m, c.q)
		assert.LessOrEqual(t, got, c.q/2)
		assert.GreaterOrEqual(t, got, -(c.q / 2))
		assert.True(t, (got-c.m)%c.q == 0, "m=%d q=%d got=%d", c.m, c.q, got)
	}
}

func TestReduceMod2NeverNegativeZero(t *testing.T) {
	for _, m := range []Short{-4, -2, 0, 2, 4, 6} {
		got := Reduce(m, 2)
		assert.Equal(t, Short(0), got)
	}
}

func TestFindInverseRoundTrip(t *testing.T) {
	q := Short(13)
	for a := Short(1); a < q; a++ {
		inv, err := FindInverse(a, q)
		require.NoError(t, err)
		prod := ReducedProduct(a, inv, q)
		// centered product of 1 mod q is 1 for q>2.
		assert.Equal(t, Short(1), posModHelper(prod, q))
	}
}

func posModHelper(v, q Short) Short {
	r := v % q
	if r < 0 {
		r += q
	}
	return r
}

func TestFindInverseNotCoprime(t *testing.T) {
	_, err := FindInverse(4, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInvertible))
}

func TestIsPrime(t *testing.T) {
	primes := map[Short]bool{
		2: true, 3: true, 4: false, 5: true, 6: false, 7: true,
		8: false, 9: false, 11: true, 13: true, 561: false,
	}
	for q, want := range primes {
		assert.Equal(t, want, IsPrime(q), "q=%d", q)
	}
}

func TestPerfSqrt(t *testing.T) {
	for k := Short(0); k <= 100; k++ {
		s, ok := PerfSqrt(k * k)
		require.True(t, ok)
		assert.Equal(t, k, s)
	}
	_, ok := PerfSqrt(2)
	assert.False(t, ok)
	_, ok = PerfSqrt(-1)
	assert.False(t, ok)
}

func TestFindSquareRootAndIota(t *testing.T) {
	// 5 ≡ 1 mod 4, so iota exists.
	iota, ok := FindIota(5)
	require.True(t, ok)
	assert.Equal(t, Short(0), posModHelper(iota*iota+1, 5))

	// 7 ≡ 3 mod 4, no iota.
	_, ok = FindIota(7)
	assert.False(t, ok)
}

func TestGetMultiplicativeGenerator(t *testing.T) {
	g, ok := GetMultiplicativeGenerator(7)
	require.True(t, ok)
	seen := map[Short]bool{}
	x := Short(1)
	for i := 0; i < 6; i++ {
		x = posModHelper(x*g, 7)
		seen[x] = true
	}
	assert.Len(t, seen, 6) // generates all of F_7*
}
