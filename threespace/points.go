package threespace

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
)

// Point is an integer point in Z^3.
type Point struct {
	X, Y, Z int64
}

// key returns a stable string key for Point, used for set deduplication.
func (p Point) key() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// axisPermutations lists the 6 permutations of (0,1,2), used to generate
// coordinate permutations of a point.
var axisPermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// FundamentalPoints enumerates every integer point (x,y,z) in the
// fundamental region 0<=x<=y<=z with x^2+y^2+z^2 = n.
//
// Complexity: O(n) candidate (x,y) pairs are examined, each checked with
// one arith.PerfSqrt call.
func FundamentalPoints(n int64) []Point {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []Point{{0, 0, 0}}
	}
	if n%4 == 0 {
		sub := FundamentalPoints(n / 4)
		out := make([]Point, len(sub))
		for i, p := range sub {
			out[i] = Point{X: p.X * 2, Y: p.Y * 2, Z: p.Z * 2}
		}

		return out
	}

	// n%4 == 3 forces x odd (sum of three squares ≡ 1 mod 4 each); the
	// other residues (1,2) admit mixed parity, so the x-loop scans every
	// integer and lets the perfect-square check at the bottom reject
	// invalid combinations.
	startX, stepX := int64(0), int64(1)
	if n%4 == 3 {
		startX, stepX = 1, 2
	}

	var out []Point
	for x := startX; 3*x*x <= n; x += stepX {
		rem := n - x*x
		for y := x; 2*y*y <= rem; y++ {
			zsq := rem - y*y
			z, ok := arith.PerfSqrt(zsq)
			if ok && z >= y {
				out = append(out, Point{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}

// OrbitType classifies a fundamental representative by which of the BC3
// boundary faces/edges/origin it lies on.
type OrbitType struct {
	T, S int // orbit class (t,s)
	Size int // orbit size under full BC3
}

// Classify returns the orbit type of a fundamental representative p
// (0<=p.X<=p.Y<=p.Z assumed).
func Classify(p Point) OrbitType {
	a, b, c := p.X, p.Y, p.Z
	onF1 := a == 0 // plane x=0
	onF2 := a == b // plane y=x
	onF3 := b == c // plane z=y

	switch {
	case a == 0 && b == 0 && c == 0:
		return OrbitType{T: 4, S: 1, Size: 1}
	case onF1 && onF2: // (0,0,c)
		return OrbitType{T: 3, S: 1, Size: 6}
	case onF1 && onF3: // (0,c,c)
		return OrbitType{T: 3, S: 2, Size: 12}
	case onF2 && onF3: // (c,c,c)
		return OrbitType{T: 3, S: 3, Size: 8}
	case onF1:
		return OrbitType{T: 2, S: 1, Size: 24}
	case onF2:
		return OrbitType{T: 2, S: 2, Size: 24}
	case onF3:
		return OrbitType{T: 2, S: 3, Size: 24}
	default:
		return OrbitType{T: 1, S: 1, Size: 48}
	}
}

// BC3Orbit returns the full orbit of p under the 48-element Coxeter group
// BC3 (all sign flips composed with all coordinate permutations),
// deduplicated.
func BC3Orbit(p Point) []Point {
	return orbit(p, allSignPatterns)
}

// EvenOrbit returns the orbit of p restricted to sign patterns with an
// even number of negated coordinates, each combined with all 6 coordinate
// permutations — a 24-element index-2 subgroup of BC3 (it contains odd
// permutations, so it is not the rotation subgroup). Used by the
// projective quaternion's octahedral orbit.
func EvenOrbit(p Point) []Point {
	return orbit(p, evenSignPatterns)
}

var allSignPatterns = [][3]int64{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

var evenSignPatterns = [][3]int64{
	{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
}

func orbit(p Point, signs [][3]int64) []Point {
	coords := [3]int64{p.X, p.Y, p.Z}
	seen := map[string]bool{}
	var out []Point

	for _, s := range signs {
		signed := [3]int64{coords[0] * s[0], coords[1] * s[1], coords[2] * s[2]}
		for _, perm := range axisPermutations {
			pt := Point{X: signed[perm[0]], Y: signed[perm[1]], Z: signed[perm[2]]}
			k := pt.key()
			if !seen[k] {
				seen[k] = true
				out = append(out, pt)
			}
		}
	}

	return out
}

// EnumeratePoints returns every integer point (x,y,z) with
// x^2+y^2+z^2 = n, by expanding each fundamental representative through
// its full BC3 orbit.
func EnumeratePoints(n int64) []Point {
	fund := FundamentalPoints(n)
	seen := map[string]bool{}
	var out []Point
	for _, f := range fund {
		for _, pt := range BC3Orbit(f) {
			k := pt.key()
			if !seen[k] {
				seen[k] = true
				out = append(out, pt)
			}
		}
	}

	return out
}
