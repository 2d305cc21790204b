package catalog

import (
	"fmt"
	"io"

	"github.com/podeks/ramangraph/colorgraph"
	"github.com/podeks/ramangraph/group"
)

// WriteSparseAdjacency writes g's adjacency as 1-indexed
// "row_index col_index 1" lines, one per directed half-edge, in
// ascending vertex-then-neighbor order (a plain iteration-order adapter
// over an already-finished graph).
func WriteSparseAdjacency(w io.Writer, g *colorgraph.Graph) error {
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(v) {
			if _, err := fmt.Fprintf(w, "%d %d 1\n", v+1, u+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteElementList writes g's vertices, one per line in index order,
// using a space-separated unpunctuated serialization per variant
// (GL_n/PGL_n: n² entries then q; S_n: n entries).
func WriteElementList(w io.Writer, g *colorgraph.Graph) error {
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		elem, _ := g.VertexAt(i)
		line, err := serializeElement(elem)
		if err != nil {
			return fmt.Errorf("WriteElementList: vertex %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func serializeElement(elem group.Element) (string, error) {
	switch e := elem.(type) {
	case group.GLn:
		return matrixEntries(e.M, e.N) + fmt.Sprintf(" %d", e.Q), nil
	case group.PGLn:
		return matrixEntries(e.Rep, e.N) + fmt.Sprintf(" %d", e.Q), nil
	case group.Perm:
		return permEntries(e.Vals), nil
	case group.Quaternion:
		return fmt.Sprintf("%d %d %d %d %d", e.X0, e.X1, e.X2, e.X3, e.Q), nil
	case group.ProjQuaternion:
		return fmt.Sprintf("%d %d %d %d %d", e.X0, e.X1, e.X2, e.X3, e.Q), nil
	default:
		return "", fmt.Errorf("serializeElement: unsupported variant %T", elem)
	}
}

func matrixEntries(m interface{ At(int, int) int64 }, n int) string {
	s := ""
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%d", m.At(i, j))
		}
	}

	return s
}

func permEntries(vals []int) string {
	s := ""
	for _, v := range vals {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}

	return s
}
