// Package arith provides modular integer arithmetic over a short prime q:
// centered reduction, sum, product, inverse, primality, square roots, and
// multiplicative generators. Every exposed function is total on its
// documented domain and never panics on caller-supplied input; failures
// (non-invertibility, "no such root") surface as a boolean ok flag or a
// sentinel error, matching the fail-as-value policy used throughout this
// module.
//
// Short is an alias for int64. All products are formed in Short so that
// intermediate values never overflow for the field sizes this library
// targets (q fits comfortably in 32 bits for every catalog entry).
package arith
