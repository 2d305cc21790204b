// Package group defines the group-element contract and its
// five concrete variants used by the Cayley-graph builder: GLn, PGLn
// (GL/PGL over F_q), Perm (S_n), Quaternion and ProjQuaternion (reduced
// and projective-reduced quaternions over F_q, used by the LPS
// construction).
//
// Every variant implements Element, a small capability set (identity,
// inverse, left/right product, equality, a stable canonical-form hash
// key, and an operational-compatibility predicate). Canonicalization is
// performed eagerly at construction and after every product, so Equal and
// HashKey are always plain comparisons over already-canonical data.
package group
