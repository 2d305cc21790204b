package arith

import "errors"

// Sentinel errors for arith package operations. Callers branch with
// errors.Is; messages are never stringified into a different sentinel.
var (
	// ErrNotInvertible is returned by FindInverse when gcd(a,q) != 1.
	ErrNotInvertible = errors.New("arith: value has no modular inverse")

	// ErrNonPrimeModulus names a composite modulus where a prime one is
	// required. No function of this package returns it: FindIota and
	// GetMultiplicativeGenerator report failure through their ok result.
	ErrNonPrimeModulus = errors.New("arith: modulus is not prime")

	// ErrZeroModulus names the q == 0 case, which makes reduction
	// undefined. No function of this package returns it: Reduce returns m
	// unchanged when q == 0.
	ErrZeroModulus = errors.New("arith: modulus is zero")
)
