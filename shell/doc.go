// Package shell computes shell-expansion statistics: per-radius vertex
// and edge statistics derived from a finished colorgraph.Graph, and the
// scalar summaries (bipartiteness, girth, diameter, average distance)
// that follow from them.
package shell
