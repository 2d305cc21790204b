package cayley

import "errors"

// ErrGeneratorSetNotInvertible is returned when a generator's inverse
// cannot be computed at all (Element.Inverse fails), e.g. the identity's
// degenerate cases or a singular matrix generator.
var ErrGeneratorSetNotInvertible = errors.New("cayley: generator set is not invertible")

// ErrCancelled is returned when a build is stopped via its cancellation
// flag before completion. The returned graph (unfinished) holds the
// partial result.
var ErrCancelled = errors.New("cayley: build cancelled")

// ErrGroupArithmeticFailure is returned when v.Right(s) fails for some
// vertex v and generator s (an operational mismatch within the group).
var ErrGroupArithmeticFailure = errors.New("cayley: group arithmetic failure")
