package colorgraph

import "errors"

// ErrVertexNotFound is returned when an operation references a vertex
// index outside [0, VertexCount()).
var ErrVertexNotFound = errors.New("colorgraph: vertex not found")

// ErrAlreadyFinished is returned by mutation methods once Finish has been
// called; the graph becomes read-only and all modification
// operations are no-ops, but mutation methods here return this error so
// callers (the cayley builder) can distinguish a no-op from genuine work.
var ErrAlreadyFinished = errors.New("colorgraph: graph is finished")

// ErrNotFinished names the condition of a graph used before Finish. No
// method of Graph returns it; Finished reports the state directly.
var ErrNotFinished = errors.New("colorgraph: graph is not finished")
