// Package matfield implements matrix operations over a short prime field
// F_q: reduction, arithmetic (add/negate/scalar-mul/product/transpose),
// determinant, and inverse via in-place Gaussian elimination with
// row-swap pivoting.
//
// Every matrix is a Dense value whose entries already lie in [0,q); q is
// passed explicitly to every operation rather than stored on the matrix:
// the field is a parameter, not a receiver field.
//
// Determinant returns a plain sentinel value (0) for non-square, singular,
// or non-prime-modulus input; Inverse
// returns an error in those same cases, since an inverse has no sentinel
// matrix value that could be mistaken for a real result.
package matfield
