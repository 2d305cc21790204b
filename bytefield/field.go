package bytefield

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
)

// Field is a finite field of order p^k <= 256. An element is its byte
// index: the base-p digit expansion of the index, low digit first, is
// the coefficient vector of a polynomial of degree < k, so index 0 is
// the zero element and index 1 is the unit. All four operation tables
// are precomputed at construction.
type Field struct {
	p, k, order int
	modulus     []int // monic irreducible polynomial, low degree first
	add         [][]byte
	mul         [][]byte
	neg         []byte
	inv         []byte
}

// New constructs the field of order p^k. For k == 1 this is F_p with
// plain modular tables; for k > 1 an irreducible monic polynomial of
// degree k over F_p is found by exhaustive search and the field is its
// quotient ring. Returns ErrBadOrder if p is not prime, k < 1, or
// p^k > 256.
func New(p, k int) (*Field, error) {
	if k < 1 || !arith.IsPrime(arith.Short(p)) {
		return nil, fmt.Errorf("New(%d,%d): %w", p, k, ErrBadOrder)
	}
	order := 1
	for i := 0; i < k; i++ {
		order *= p
		if order > 256 {
			return nil, fmt.Errorf("New(%d,%d): %w", p, k, ErrBadOrder)
		}
	}

	f := &Field{p: p, k: k, order: order}
	if k == 1 {
		f.modulus = []int{0, 1} // the polynomial x: quotient is F_p itself
	} else {
		f.modulus = findIrreducible(p, k)
	}
	f.buildTables()

	return f, nil
}

// Order returns p^k.
func (f *Field) Order() int { return f.order }

// Char returns the characteristic p.
func (f *Field) Char() int { return f.p }

// Degree returns the extension degree k.
func (f *Field) Degree() int { return f.k }

// Add returns a+b. Indices at or above Order() yield 0.
func (f *Field) Add(a, b byte) byte {
	if int(a) >= f.order || int(b) >= f.order {
		return 0
	}

	return f.add[a][b]
}

// Mul returns a*b. Indices at or above Order() yield 0.
func (f *Field) Mul(a, b byte) byte {
	if int(a) >= f.order || int(b) >= f.order {
		return 0
	}

	return f.mul[a][b]
}

// Neg returns -a.
func (f *Field) Neg(a byte) byte {
	if int(a) >= f.order {
		return 0
	}

	return f.neg[a]
}

// Inv returns a^-1, or ErrNotInvertible for the zero element and
// ErrOutOfRange for an index at or above Order().
func (f *Field) Inv(a byte) (byte, error) {
	if int(a) >= f.order {
		return 0, fmt.Errorf("Inv(%d): %w", a, ErrOutOfRange)
	}
	if a == 0 {
		return 0, ErrNotInvertible
	}

	return f.inv[a], nil
}

// digits expands idx in base p, low digit first, k digits.
func (f *Field) digits(idx int) []int {
	d := make([]int, f.k)
	for i := 0; i < f.k; i++ {
		d[i] = idx % f.p
		idx /= f.p
	}

	return d
}

// index folds a digit vector (any length, entries already in [0,p)) back
// into a byte index; entries at degree >= k must already be zero.
func (f *Field) index(d []int) byte {
	idx, base := 0, 1
	for i := 0; i < f.k && i < len(d); i++ {
		idx += d[i] * base
		base *= f.p
	}

	return byte(idx)
}

func (f *Field) buildTables() {
	n := f.order
	f.add = make([][]byte, n)
	f.mul = make([][]byte, n)
	f.neg = make([]byte, n)
	f.inv = make([]byte, n)

	for a := 0; a < n; a++ {
		f.add[a] = make([]byte, n)
		f.mul[a] = make([]byte, n)
		da := f.digits(a)

		negD := make([]int, f.k)
		for i, v := range da {
			negD[i] = (f.p - v) % f.p
		}
		f.neg[a] = f.index(negD)

		for b := 0; b < n; b++ {
			db := f.digits(b)

			sum := make([]int, f.k)
			for i := 0; i < f.k; i++ {
				sum[i] = (da[i] + db[i]) % f.p
			}
			f.add[a][b] = f.index(sum)

			prod := polyMul(da, db, f.p)
			rem := polyRem(prod, f.modulus, f.p)
			f.mul[a][b] = f.index(rem)
		}
	}

	// Invert by scanning each row for the unit; every nonzero element of
	// a field has exactly one hit.
	for a := 1; a < n; a++ {
		for b := 1; b < n; b++ {
			if f.mul[a][b] == 1 {
				f.inv[a] = byte(b)
				break
			}
		}
	}
}

// polyMul convolves two coefficient vectors over F_p.
func polyMul(a, b []int, p int) []int {
	out := make([]int, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] = (out[i+j] + av*bv) % p
		}
	}

	return out
}

// polyRem reduces a modulo the monic polynomial m over F_p, returning a
// remainder of degree < deg(m).
func polyRem(a, m []int, p int) []int {
	r := make([]int, len(a))
	copy(r, a)
	degM := len(m) - 1
	for d := len(r) - 1; d >= degM; d-- {
		c := r[d]
		if c == 0 {
			continue
		}
		// m is monic, so the quotient digit is c itself.
		for i := 0; i <= degM; i++ {
			r[d-degM+i] = ((r[d-degM+i]-c*m[i])%p + p*p) % p
		}
	}
	if len(r) > degM {
		r = r[:degM]
	}

	return r
}

// isZeroPoly reports whether every coefficient vanishes.
func isZeroPoly(a []int) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}

	return true
}

// findIrreducible returns a monic irreducible polynomial of degree k
// over F_p, low coefficients first, by exhaustive search over the p^k
// candidate tails. A degree-k polynomial is reducible iff it has a monic
// divisor of degree between 1 and k/2, so only those are trial-divided.
// Search order is ascending tail index, which makes the chosen modulus
// (and therefore every table) deterministic.
func findIrreducible(p, k int) []int {
	total := 1
	for i := 0; i < k; i++ {
		total *= p
	}

	for tail := 0; tail < total; tail++ {
		cand := make([]int, k+1)
		t := tail
		for i := 0; i < k; i++ {
			cand[i] = t % p
			t /= p
		}
		cand[k] = 1

		if isIrreducible(cand, p, k) {
			return cand
		}
	}

	// Unreachable: irreducible polynomials of every degree exist over
	// every finite field.
	return nil
}

func isIrreducible(cand []int, p, k int) bool {
	for d := 1; 2*d <= k; d++ {
		divisors := 1
		for i := 0; i < d; i++ {
			divisors *= p
		}
		for tail := 0; tail < divisors; tail++ {
			div := make([]int, d+1)
			t := tail
			for i := 0; i < d; i++ {
				div[i] = t % p
				t /= p
			}
			div[d] = 1
			if isZeroPoly(polyRem(cand, div, p)) {
				return false
			}
		}
	}

	return true
}
