// Package cayley builds Cayley graphs by breadth-first enumeration: given
// a generating set S and a root element, it discovers the connected
// component of the root in the graph whose edges join g to g·s for each
// s in S, producing a shell-indexed colorgraph.Graph.
//
// There is exactly one builder here; Build and BuildWithSizeHint share
// the same expansion loop, and ObservableBuilder is a thin stateful
// wrapper adding listeners and cooperative cancellation around it.
package cayley
