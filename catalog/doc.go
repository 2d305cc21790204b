// Package catalog provides factory functions: small constructors that
// take integer parameters and return a generating set ready to hand to
// cayley.Build. A catalog function's job is to produce *some* correct
// generating set for its named family, not to prove minimality or
// completeness of that set; the heavy lifting lives in group, cayley,
// and shell. The exceptions are Mathieu22, Janko1, Janko2, Suzuki8 and
// G2_3, which return placeholder permutation pairs on the named group's
// degree rather than generating sets of the named groups (see
// sporadic.go).
package catalog
