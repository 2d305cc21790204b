package shell

import (
	"fmt"

	"github.com/podeks/ramangraph/colorgraph"
)

// Report holds the analyzer's per-radius statistics and scalar
// summaries.
type Report struct {
	// ShellSize[d] = |shell(d)|.
	ShellSize []int
	// InboundEdges[d] = edges between shell d and shell d-1.
	// InboundEdges[0] is always 0.
	InboundEdges []int
	// SameShellEdges[d] = edges within shell d.
	SameShellEdges []int

	VertexCount     int
	Bipartite       bool
	Girth           int // 0 means no cycle found (tree, up to max_distance)
	Diameter        int
	AverageDistance float64
}

// Analyze computes a Report for g. Returns ErrGraphIncomplete if g was
// never finished.
func Analyze(g *colorgraph.Graph) (*Report, error) {
	if !g.Finished() {
		return nil, fmt.Errorf("shell.Analyze: %w", ErrGraphIncomplete)
	}

	maxD := g.MaxDistanceFromRoot()
	s := make([]int, maxD+1)
	e := make([]int, maxD+1)
	t := make([]int, maxD+1)

	for d := 0; d <= maxD; d++ {
		lo, hi, _ := g.ShellIndices(d)
		s[d] = hi - lo
		sameCount := 0
		for v := lo; v < hi; v++ {
			if d+1 <= maxD {
				e[d+1] += len(g.NeighborsInNextShell(v))
			}
			sameCount += len(g.NeighborsInSameShell(v))
		}
		t[d] = sameCount / 2
	}

	bipartite := true
	for _, same := range t {
		if same > 0 {
			bipartite = false
			break
		}
	}

	// Girth detection: a same-shell edge at radius d closes an odd cycle
	// of length 2d+1; an inbound edge count exceeding |shell(d)| means
	// two BFS paths meet at a shell-d vertex, closing an even cycle of
	// length 2d. In a tree e[d] == s[d] exactly (one parent per vertex).
	girth := 0
	for d := 0; d <= maxD; d++ {
		candidate := 0
		if d >= 1 && e[d] > s[d] {
			candidate = 2 * d
		}
		if t[d] > 0 {
			odd := 2*d + 1
			if candidate == 0 || odd < candidate {
				candidate = odd
			}
		}
		if candidate > 0 {
			girth = candidate
			break
		}
	}

	n := g.VertexCount()
	sum := 0
	for d, sz := range s {
		sum += d * sz
	}
	avg := float64(sum) / float64(n)

	return &Report{
		ShellSize:       s,
		InboundEdges:    e,
		SameShellEdges:  t,
		VertexCount:     n,
		Bipartite:       bipartite,
		Girth:           girth,
		Diameter:        maxD,
		AverageDistance: avg,
	}, nil
}
