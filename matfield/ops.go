// ops.go implements the arithmetic and Gaussian-elimination operations:
// reduce, negate, sum, product, scalar multiply, transpose, determinant,
// and inverse.
package matfield

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
)

// Reduce returns a fresh matrix with every entry of A reduced into [0,q).
// Complexity: O(rows*cols).
func Reduce(A *Dense, q arith.Short) *Dense {
	out, _ := NewDense(A.rows, A.cols)
	for i := 0; i < A.rows; i++ {
		for j := 0; j < A.cols; j++ {
			out.data[i][j] = toRing(A.data[i][j], q)
		}
	}

	return out
}

// Negate returns -A reduced into [0,q).
func Negate(A *Dense, q arith.Short) *Dense {
	out, _ := NewDense(A.rows, A.cols)
	for i := 0; i < A.rows; i++ {
		for j := 0; j < A.cols; j++ {
			out.data[i][j] = toRing(-A.data[i][j], q)
		}
	}

	return out
}

// Sum returns A+B reduced into [0,q). Returns ErrDimensionMismatch if the
// shapes differ.
func Sum(A, B *Dense, q arith.Short) (*Dense, error) {
	if A.rows != B.rows || A.cols != B.cols {
		return nil, fmt.Errorf("Sum(%dx%d,%dx%d): %w", A.rows, A.cols, B.rows, B.cols, ErrDimensionMismatch)
	}
	out, _ := NewDense(A.rows, A.cols)
	for i := 0; i < A.rows; i++ {
		for j := 0; j < A.cols; j++ {
			out.data[i][j] = toRing(A.data[i][j]+B.data[i][j], q)
		}
	}

	return out, nil
}

// ScalarMul returns a*B reduced into [0,q).
func ScalarMul(a arith.Short, B *Dense, q arith.Short) *Dense {
	out, _ := NewDense(B.rows, B.cols)
	for i := 0; i < B.rows; i++ {
		for j := 0; j < B.cols; j++ {
			out.data[i][j] = toRing(a*B.data[i][j], q)
		}
	}

	return out
}

// Product returns A*B reduced into [0,q). Returns ErrDimensionMismatch if
// A.cols != B.rows.
// Complexity: O(A.rows * A.cols * B.cols).
func Product(A, B *Dense, q arith.Short) (*Dense, error) {
	if A.cols != B.rows {
		return nil, fmt.Errorf("Product(%dx%d,%dx%d): %w", A.rows, A.cols, B.rows, B.cols, ErrDimensionMismatch)
	}
	out, _ := NewDense(A.rows, B.cols)
	for i := 0; i < A.rows; i++ {
		for j := 0; j < B.cols; j++ {
			var sum arith.Short
			for k := 0; k < A.cols; k++ {
				sum += A.data[i][k] * B.data[k][j]
			}
			out.data[i][j] = toRing(sum, q)
		}
	}

	return out, nil
}

// Transpose returns the transpose of A (no modular reduction needed: it
// permutes entries, it does not combine them).
func Transpose(A *Dense) *Dense {
	out, _ := NewDense(A.cols, A.rows)
	for i := 0; i < A.rows; i++ {
		for j := 0; j < A.cols; j++ {
			out.data[j][i] = A.data[i][j]
		}
	}

	return out
}

// Determinant computes det(A) mod q via Gaussian elimination with
// row-swap pivoting. It returns the sentinel value 0 if A is not square,
// q is not prime, or A is singular mod q — never an error, since 0 is
// already the correct mathematical answer for a singular matrix and the
// non-square/non-prime cases fold into the same sentinel.
//
// Complexity: O(n^3).
func Determinant(A *Dense, q arith.Short) arith.Short {
	if A.rows != A.cols {
		return 0
	}
	if !arith.IsPrime(q) {
		return 0
	}
	n := A.rows

	// Work on a positive-residue copy so pivot comparisons against zero
	// and row-swap search behave the same regardless of centered sign.
	work := make([][]arith.Short, n)
	for i := 0; i < n; i++ {
		work[i] = make([]arith.Short, n)
		for j := 0; j < n; j++ {
			work[i][j] = posRing(A.data[i][j], q)
		}
	}

	det := arith.Short(1)
	for k := 0; k < n; k++ {
		// Stage: find a nonzero pivot in column k, at or below row k.
		if work[k][k] == 0 {
			swapRow := -1
			for j := k + 1; j < n; j++ {
				if work[j][k] != 0 {
					swapRow = j
					break
				}
			}
			if swapRow == -1 {
				return 0 // singular
			}
			work[k], work[swapRow] = work[swapRow], work[k]
			det = posRing(-det, q)
		}

		// Stage: eliminate column k from every row below k.
		pivotInv, err := arith.FindInverse(work[k][k], q)
		if err != nil {
			return 0
		}
		for j := k + 1; j < n; j++ {
			factor := posRing(work[j][k]*pivotInv, q)
			if factor == 0 {
				continue
			}
			for c := k; c < n; c++ {
				work[j][c] = posRing(work[j][c]-factor*work[k][c], q)
			}
		}

		det = posRing(det*work[k][k], q)
	}

	return toRing(det, q)
}

// Inverse computes A^-1 mod q via augmented Gaussian elimination
// (A | I) -> (I | A^-1). Returns ErrNotSquare, ErrNonPrimeModulus, or
// ErrSingular as appropriate; never panics.
//
// Complexity: O(n^3).
func Inverse(A *Dense, q arith.Short) (*Dense, error) {
	if A.rows != A.cols {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", A.rows, A.cols, ErrNotSquare)
	}
	if !arith.IsPrime(q) {
		return nil, fmt.Errorf("Inverse: q=%d: %w", q, ErrNonPrimeModulus)
	}
	n := A.rows

	// Augmented matrix [A | I], positive residues throughout.
	aug := make([][]arith.Short, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]arith.Short, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = posRing(A.data[i][j], q)
		}
		aug[i][n+i] = 1
	}

	for k := 0; k < n; k++ {
		// Stage: locate a nonzero pivot at or below row k in column k.
		if aug[k][k] == 0 {
			swapRow := -1
			for j := k + 1; j < n; j++ {
				if aug[j][k] != 0 {
					swapRow = j
					break
				}
			}
			if swapRow == -1 {
				return nil, fmt.Errorf("Inverse: pivot 0 at column %d: %w", k, ErrSingular)
			}
			aug[k], aug[swapRow] = aug[swapRow], aug[k]
		}

		// Stage: scale row k so the pivot becomes 1.
		pivotInv, err := arith.FindInverse(aug[k][k], q)
		if err != nil {
			return nil, fmt.Errorf("Inverse: %w", ErrSingular)
		}
		for c := 0; c < 2*n; c++ {
			aug[k][c] = posRing(aug[k][c]*pivotInv, q)
		}

		// Stage: eliminate column k from every other row.
		for j := 0; j < n; j++ {
			if j == k {
				continue
			}
			factor := aug[j][k]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				aug[j][c] = posRing(aug[j][c]-factor*aug[k][c], q)
			}
		}
	}

	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i][j] = toRing(aug[i][n+j], q)
		}
	}

	return out, nil
}

// toRing reduces m into the canonical [0,q) representative used for
// Dense storage (GL_n/PGL_n entries live in [0,q), not centered).
func toRing(m, q arith.Short) arith.Short {
	return posRing(m, q)
}

// posRing returns m mod q in [0,q).
func posRing(m, q arith.Short) arith.Short {
	r := m % q
	if r < 0 {
		r += q
	}

	return r
}
