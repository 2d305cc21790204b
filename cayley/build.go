package cayley

import (
	"fmt"

	"github.com/podeks/ramangraph/colorgraph"
	"github.com/podeks/ramangraph/group"
)

// Element and Graph are local aliases so this package's public surface
// (ObservableBuilder.Build, Build) reads in terms of the two concepts it
// actually composes, without every call site importing group and
// colorgraph directly.
type Element = group.Element
type Graph = colorgraph.Graph

// Build performs breadth-first enumeration of the connected component
// containing root in the Cayley graph generated by generators. The
// returned graph is finished (read-only) on success.
//
// Returns ErrGeneratorSetNotInvertible if some generator's inverse
// cannot be computed, ErrCancelled if a WithCancelFlag option's flag was
// set before completion (the returned graph is then the partial,
// unfinished result), or ErrGroupArithmeticFailure if v.Right(s) fails
// for some discovered vertex v and generator s.
func Build(generators []Element, root Element, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	invOf, colorList, err := closeUnderInverse(generators)
	if err != nil {
		return nil, fmt.Errorf("cayley.Build: %w", err)
	}

	var g *Graph
	if o.sizeHint > 0 {
		g = colorgraph.NewGraphWithCapacity(root, o.sizeHint)
	} else {
		g = colorgraph.NewGraph(root)
	}
	for _, s := range colorList {
		if err := g.SetColorInverse(s, invOf[s.HashKey()]); err != nil {
			return nil, fmt.Errorf("cayley.Build: %w", err)
		}
	}

	pending := map[int]map[string]bool{0: fullGeneratorSet(colorList)}
	vertexCount := 1
	edgeCount := 0
	currentShell := []int{0}

	for len(currentShell) > 0 {
		if o.cancel != nil && o.cancel.IsCancelled() {
			return g, fmt.Errorf("cayley.Build: %w", ErrCancelled)
		}

		var nextShell []int
		for _, v := range currentShell {
			if o.cancel != nil && o.cancel.IsCancelled() {
				return g, fmt.Errorf("cayley.Build: %w", ErrCancelled)
			}

			ve, _ := g.VertexAt(v)
			remaining := pending[v]
			delete(pending, v)

			// Iterating colorList (not the remaining map) keeps vertex
			// insertion order deterministic across runs; remaining only
			// answers membership.
			for _, s := range colorList {
				if !remaining[s.HashKey()] {
					continue
				}
				if o.cancel != nil && o.cancel.IsCancelled() {
					return g, fmt.Errorf("cayley.Build: %w", ErrCancelled)
				}

				w, err := ve.Right(s)
				if err != nil {
					return g, fmt.Errorf("cayley.Build: %w", ErrGroupArithmeticFailure)
				}

				isNew := !g.ContainsVertex(w)
				wi, _ := g.AddVertex(w)
				if isNew {
					vertexCount++
					pending[wi] = fullGeneratorSet(colorList)
					nextShell = append(nextShell, wi)
					if o.listener != nil && vertexCount%o.vertexGranularity == 0 {
						o.listener(VertexProgress, vertexCount)
					}
				}

				added, err := g.AddEdge(v, wi, s, invOf[s.HashKey()])
				if err != nil {
					return g, fmt.Errorf("cayley.Build: %w", err)
				}
				if added {
					edgeCount++
					if pend, ok := pending[wi]; ok {
						delete(pend, invOf[s.HashKey()].HashKey())
					}
					if o.listener != nil && edgeCount%o.edgeGranularity == 0 {
						o.listener(EdgeProgress, edgeCount)
					}
				}
			}
		}

		if len(nextShell) == 0 {
			break
		}
		if err := g.CloseShell(vertexCount); err != nil {
			return g, fmt.Errorf("cayley.Build: %w", err)
		}
		currentShell = nextShell
	}

	if o.listener != nil {
		o.listener(StatusBeforeFinish, 1)
	}
	g.Finish()
	if o.listener != nil {
		o.listener(StatusAfterFinish, -1)
	}

	return g, nil
}

// BuildWithSizeHint is Build with a vertex-count capacity hint: the
// vertex slice and hash map are preallocated for expectedN vertices.
func BuildWithSizeHint(generators []Element, root Element, expectedN int, opts ...Option) (*Graph, error) {
	return Build(generators, root, append(opts, WithSizeHint(expectedN))...)
}

// closeUnderInverse returns a map from each generator's HashKey to its
// inverse element (itself drawn from, or added to, the closed set) and
// the closed generator list, preserving the caller's original order and
// appending any missing inverses at the end.
func closeUnderInverse(generators []Element) (map[string]Element, []Element, error) {
	present := make(map[string]Element, len(generators)*2)
	for _, s := range generators {
		present[s.HashKey()] = s
	}

	closedList := make([]Element, len(generators))
	copy(closedList, generators)

	invOf := make(map[string]Element, len(generators)*2)
	for _, s := range generators {
		inv, err := s.Inverse()
		if err != nil {
			return nil, nil, fmt.Errorf("closeUnderInverse: %w", ErrGeneratorSetNotInvertible)
		}
		key := inv.HashKey()
		if existing, ok := present[key]; ok {
			invOf[s.HashKey()] = existing
		} else {
			present[key] = inv
			invOf[s.HashKey()] = inv
			closedList = append(closedList, inv)
		}
	}

	// Elements added purely as someone else's inverse still need their
	// own entry in invOf (their inverse is the generator that produced
	// them, or their own computed inverse if that's absent too).
	for _, s := range closedList {
		if _, ok := invOf[s.HashKey()]; ok {
			continue
		}
		inv, err := s.Inverse()
		if err != nil {
			return nil, nil, fmt.Errorf("closeUnderInverse: %w", ErrGeneratorSetNotInvertible)
		}
		if existing, ok := present[inv.HashKey()]; ok {
			invOf[s.HashKey()] = existing
		} else {
			invOf[s.HashKey()] = inv
		}
	}

	return invOf, closedList, nil
}

// fullGeneratorSet returns a fresh membership set over list's HashKeys,
// used as a vertex's shrinking pending-generators set.
func fullGeneratorSet(list []Element) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, s := range list {
		m[s.HashKey()] = true
	}

	return m
}
