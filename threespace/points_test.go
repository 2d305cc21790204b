package threespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundamentalPointsKnownSpheres(t *testing.T) {
	cases := []struct {
		n    int64
		want []Point
	}{
		{0, []Point{{0, 0, 0}}},
		{5, []Point{{0, 1, 2}}},
		{20, []Point{{0, 2, 4}}}, // 20 = 4*5, scaled from FundamentalPoints(5)
	}
	for _, c := range cases {
		got := FundamentalPoints(c.n)
		assert.ElementsMatch(t, c.want, got, "n=%d", c.n)
	}
}

func TestFundamentalPointsSatisfySumOfSquares(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 4, 5, 6, 9, 11, 13, 16, 25, 49} {
		for _, p := range FundamentalPoints(n) {
			require.True(t, p.X <= p.Y && p.Y <= p.Z, "not in fundamental region: %+v", p)
			sum := p.X*p.X + p.Y*p.Y + p.Z*p.Z
			require.Equal(t, n, sum, "point %+v does not sum to %d", p, n)
		}
	}
}

func TestClassifyOrbitTypes(t *testing.T) {
	cases := []struct {
		p    Point
		want OrbitType
	}{
		{Point{0, 0, 0}, OrbitType{T: 4, S: 1, Size: 1}},
		{Point{0, 0, 3}, OrbitType{T: 3, S: 1, Size: 6}},
		{Point{0, 3, 3}, OrbitType{T: 3, S: 2, Size: 12}},
		{Point{3, 3, 3}, OrbitType{T: 3, S: 3, Size: 8}},
		{Point{0, 1, 2}, OrbitType{T: 2, S: 1, Size: 24}},
		{Point{1, 1, 2}, OrbitType{T: 2, S: 2, Size: 24}},
		{Point{1, 2, 2}, OrbitType{T: 2, S: 3, Size: 24}},
		{Point{1, 2, 3}, OrbitType{T: 1, S: 1, Size: 48}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.p), "point %+v", c.p)
	}
}

func TestBC3OrbitSizesMatchClassification(t *testing.T) {
	for _, c := range []Point{{0, 0, 0}, {0, 0, 3}, {0, 3, 3}, {3, 3, 3}, {0, 1, 2}, {1, 2, 3}} {
		want := Classify(c).Size
		got := BC3Orbit(c)
		assert.Len(t, got, want, "orbit of %+v", c)
	}
}

func TestEvenOrbitIsHalfOfFullOrbitForGenericPoint(t *testing.T) {
	p := Point{1, 2, 3}
	full := BC3Orbit(p)
	even := EvenOrbit(p)
	assert.Len(t, full, 48)
	assert.Len(t, even, 24)
	for _, e := range even {
		assert.Contains(t, full, e)
	}
}

func TestEnumeratePointsCountMatchesSphere(t *testing.T) {
	got := EnumeratePoints(5)
	assert.Len(t, got, 24)
	for _, p := range got {
		sum := p.X*p.X + p.Y*p.Y + p.Z*p.Z
		assert.Equal(t, int64(5), sum)
	}
}

func TestEnumeratePointsOriginIsSingleton(t *testing.T) {
	got := EnumeratePoints(0)
	assert.Equal(t, []Point{{0, 0, 0}}, got)
}
