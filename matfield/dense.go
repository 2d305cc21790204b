package matfield

import (
	"fmt"
	"math/rand"

	"github.com/podeks/ramangraph/arith"
)

// Dense is a rectangular matrix with entries in arith.Short. Constructors
// in this package always return entries already reduced into [0,q) for the
// field the caller is working over; arithmetic operations reduce their
// results the same way.
type Dense struct {
	rows, cols int
	data       [][]arith.Short
}

// NewDense allocates a zero-filled r×c matrix. Returns ErrBadShape if
// r <= 0 or c <= 0.
// Complexity: O(r*c).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}
	data := make([][]arith.Short, r)
	for i := range data {
		data[i] = make([]arith.Short, c)
	}

	return &Dense{rows: r, cols: c, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the entry at (i,j). Out-of-range indices return 0 (the
// catalog/group code that drives this package never constructs
// out-of-range indices, so this stays a soft default rather than a panic).
func (m *Dense) At(i, j int) arith.Short {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0
	}

	return m.data[i][j]
}

// Set writes v into (i,j). No-op if out of range.
func (m *Dense) Set(i, j int, v arith.Short) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return
	}
	m.data[i][j] = v
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out, _ := NewDense(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i], m.data[i])
	}

	return out
}

// Equal reports whether m and n have identical shape and entries
// (entry-wise, no implicit reduction — callers should Reduce both
// operands to the same q first if comparing across representations).
func (m *Dense) Equal(n *Dense) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j] != n.data[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix in the space-separated, unpunctuated form
// the file-format adapters use: all entries in row-major order.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%d", m.data[i][j])
		}
	}

	return s
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}

	return m
}

// Elementary returns the n×n identity matrix with an additional 1 placed
// at (h-1,k-1) (1-indexed convention for the off-diagonal entry).
func Elementary(n, h, k int) *Dense {
	m := Identity(n)
	m.Set(h-1, k-1, m.At(h-1, k-1)+1)

	return m
}

// RandomDense returns an r×c matrix with entries drawn uniformly from
// [0,q) using rng.
func RandomDense(r, c int, q arith.Short, rng *rand.Rand) *Dense {
	m, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i][j] = arith.Short(rng.Int63n(int64(q)))
		}
	}

	return m
}

// RandomInvertible returns an n×n matrix over F_q with nonzero determinant,
// via rejection sampling. q must be prime for Determinant to be meaningful;
// panics-free: if no invertible matrix is found within maxAttempts, it
// returns the last sampled (possibly singular) matrix so callers never
// block forever on a pathological q.
func RandomInvertible(n int, q arith.Short, rng *rand.Rand) *Dense {
	const maxAttempts = 10000
	var m *Dense
	for attempt := 0; attempt < maxAttempts; attempt++ {
		m = RandomDense(n, n, q, rng)
		if Determinant(m, q) != 0 {
			return m
		}
	}

	return m
}
