package lps

import "errors"

// ErrEvenPrime is returned when either p or q is not an odd prime.
var ErrEvenPrime = errors.New("lps: p and q must both be odd primes")

// ErrSamePrime is returned when p == q: π is only defined for p != q
// (the construction's generators must act nontrivially on PGL_2(F_q)).
var ErrSamePrime = errors.New("lps: p and q must be distinct primes")

// ErrSingularGenerator is returned by PiParams.Pi when an admissible
// quaternion has norm ≡ 0 (mod q), producing a singular matrix. This
// cannot happen when p != q.
var ErrSingularGenerator = errors.New("lps: pi(quaternion) is singular mod q")
