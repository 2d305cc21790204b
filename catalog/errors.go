package catalog

import "errors"

// ErrInvalidParameters is returned by a catalog factory when its integer
// parameters cannot describe a nonempty group (n < 1, q < 2, q not prime
// where primality is required, or similar).
var ErrInvalidParameters = errors.New("catalog: invalid parameters")
