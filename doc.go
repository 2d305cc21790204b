// Package ramangraph builds and analyzes Cayley graphs of finite groups,
// with emphasis on the LPS (Lubotzky-Phillips-Sarnak) construction of
// Ramanujan-style expander graphs.
//
// A Cayley graph is built from a finite group together with a
// generating set S: vertices are group elements, and an edge joins g to
// g·s for each s in S. This module provides:
//
//	arith/      — modular arithmetic over a short prime field F_q
//	bytefield/  — table-driven finite fields of order p^k <= 256,
//	              prime or extension
//	matfield/   — matrix operations over F_q (Gaussian elimination)
//	group/      — polymorphic group-element representations:
//	              GL_n(F_q), PGL_n(F_q), S_n, quaternions over F_q
//	threespace/ — BC3/octahedral orbit enumeration on Z^3, used by
//	              the LPS construction's admissible-quaternion search
//	lps/        — the LPS generator construction: quaternions of norm p
//	              projected into PGL_2(F_q) via the map π
//	cayley/     — the generic Cayley-graph builder (breadth-first
//	              enumeration of the connected component of a root)
//	colorgraph/ — the navigable, shell-indexed, generator-colored graph
//	              the builder produces
//	shell/      — per-radius statistics (girth, bipartiteness, diameter)
//	catalog/    — factory functions returning generating sets for named
//	              group families (GL_n, Sp_2m, S_n, LPS, Lubotzky L1, ...)
//
// Typical use: pick a group family from catalog, obtain a generating set
// and a root, hand both to cayley.Build, then run shell.Analyze on the
// result.
//
//	gens, _ := catalog.LPSGenerators(3, 5)
//	elems := make([]cayley.Element, len(gens))
//	for i, s := range gens {
//		elems[i] = s
//	}
//	root := group.NewPGLn(matfield.Identity(2), 5)
//	g, _ := cayley.Build(elems, root)
//	report, _ := shell.Analyze(g)
package ramangraph
