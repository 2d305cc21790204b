package group

import (
	"fmt"
	"strings"
)

// Perm is a permutation of {0,...,n-1}, stored as a length-n array of
// distinct values in that range.
type Perm struct {
	Vals []int
}

// NewPerm wraps vals as a Perm. The caller is responsible for vals being
// a genuine permutation (distinct values covering 0..len(vals)-1); this
// package never validates that on the hot path, matching GLn's stance on
// pre-validated input.
func NewPerm(vals []int) Perm {
	cp := make([]int, len(vals))
	copy(cp, vals)

	return Perm{Vals: cp}
}

// IdentityPerm returns the identity permutation on n letters.
func IdentityPerm(n int) Perm {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}

	return Perm{Vals: vals}
}

// Identity implements Element.
func (p Perm) Identity() Element {
	return IdentityPerm(len(p.Vals))
}

// Inverse implements Element: the array inv with inv[p[i]] = i.
func (p Perm) Inverse() (Element, error) {
	inv := make([]int, len(p.Vals))
	for i, v := range p.Vals {
		inv[v] = i
	}

	return Perm{Vals: inv}, nil
}

// Right implements Element: (x·h)[i] = x[h[i]], i.e. apply h first then x.
func (p Perm) Right(h Element) (Element, error) {
	hp, ok := h.(Perm)
	if !ok || !p.OperationalWith(h) {
		return nil, fmt.Errorf("Perm.Right: %w", ErrOperationalMismatch)
	}
	out := make([]int, len(p.Vals))
	for i := range out {
		out[i] = p.Vals[hp.Vals[i]]
	}

	return Perm{Vals: out}, nil
}

// Left implements Element: (h·x)[i] = h[x[i]], i.e. apply x first then h.
func (p Perm) Left(h Element) (Element, error) {
	hp, ok := h.(Perm)
	if !ok || !p.OperationalWith(h) {
		return nil, fmt.Errorf("Perm.Left: %w", ErrOperationalMismatch)
	}
	out := make([]int, len(p.Vals))
	for i := range out {
		out[i] = hp.Vals[p.Vals[i]]
	}

	return Perm{Vals: out}, nil
}

// Equal implements Element: array-equal over the permutation vector.
func (p Perm) Equal(h Element) bool {
	hp, ok := h.(Perm)
	if !ok || len(p.Vals) != len(hp.Vals) {
		return false
	}
	for i := range p.Vals {
		if p.Vals[i] != hp.Vals[i] {
			return false
		}
	}

	return true
}

// HashKey implements Element.
func (p Perm) HashKey() string {
	parts := make([]string, len(p.Vals))
	for i, v := range p.Vals {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "S|" + strings.Join(parts, ",")
}

// OperationalWith implements Element.
func (p Perm) OperationalWith(h Element) bool {
	hp, ok := h.(Perm)

	return ok && len(p.Vals) == len(hp.Vals)
}

// Transposition returns the permutation on n letters that swaps i and j
// and fixes everything else. Convenience used by the catalog package.
func Transposition(n, i, j int) Perm {
	p := IdentityPerm(n)
	p.Vals[i], p.Vals[j] = p.Vals[j], p.Vals[i]

	return p
}

// Cycle returns the permutation on n letters sending each listed index to
// the next one in cyclic order (indices not listed are fixed).
func Cycle(n int, indices ...int) Perm {
	p := IdentityPerm(n)
	for k := 0; k < len(indices); k++ {
		from := indices[k]
		to := indices[(k+1)%len(indices)]
		p.Vals[from] = to
	}

	return p
}
