// Package onestroke finds every way to draw a line figure without lifting
// the pen and without tracing any line twice.
//
// What is a one-stroke drawing?
//
//	A figure is a multigraph: corners are nodes, lines are edges. Drawing it
//	in one stroke means walking an Euler trail, a walk that uses every edge
//	exactly once. onestroke enumerates such trails, not just one of them.
//
// Why onestroke?
//
//   - Exhaustive and ordered - results come out in a fixed order for a given input
//   - Early stop - ask for N trails and the search stops at N
//   - Multigraphs - parallel lines and self-loops are first-class
//   - Boundary-friendly - a plain "a,b/c,d" text encoding in and out
//
// Packages:
//
//	graph/    - dense-index multigraph built from an edge list, Euler analysis
//	trail/    - backtracking trail search from a starting edge, Verify, Any
//	codec/    - "a,b/c,d" edge lists and "n0,n1/m0,m1" trail lists
//	solver/   - OneLine boundary call and multi-start Solve with de-duplication
//	sketch/   - UUID-identified nodes and lines of an editor, decoding trails
//	builder/  - deterministic figure fixtures: cycles, grids, wheels, the house
//	cmd/      - the onestroke command line (solve, line, shape, serve)
//
// Quick ASCII example:
//
//	    3───2
//	    │╲ ╱│
//	    │ ╳ │
//	    │╱ ╲│
//	    0───1
//
//	the square with both diagonals has four odd corners, so no stroke
//	exists. Add a roof over 3-2 and 0 and 1 become the only odd corners:
//	44 drawings start at each of them.
//
//	go install github.com/katalvlaran/onestroke/cmd/onestroke@latest
package onestroke
