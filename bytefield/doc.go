// Package bytefield provides small finite fields of order p^k <= 256,
// prime or extension, with fully precomputed addition, multiplication,
// negation, and inversion tables keyed by byte indices. An element is
// just its byte index; all arithmetic after construction is a table
// lookup, which is what the matrix-group catalog wants when a family is
// defined over an extension field (Suzuki groups over F_8, for example)
// rather than a prime field handled by arith.
package bytefield
