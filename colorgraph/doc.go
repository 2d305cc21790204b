// Package colorgraph provides the indexed color graph: an undirected,
// simple, rooted, shell-indexed graph whose edges carry generator-element
// colors. Vertices are addressed by insertion index; there are no
// back-references from a vertex to the graph that owns it (an
// arena-with-indices layout).
package colorgraph
