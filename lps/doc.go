// Package lps implements the Lubotzky-Phillips-Sarnak generator
// construction for Ramanujan Cayley graphs on PGL_2(F_q): the
// p+1 admissible Lipschitz quaternions of norm p, mapped into 2x2
// matrices over F_q via the π homomorphism.
package lps
