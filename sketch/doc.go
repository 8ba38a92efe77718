// Package sketch is the data boundary of a drawing editor.
//
// A Sketch stores nodes under opaque UUID identifiers together with their
// positions, and undirected lines between them. Encode numbers the nodes
// densely in insertion order and produces the "a,b/c,d" edge string the
// solver consumes; the returned Encoding decodes integer trails back into
// paths of node identifiers.
//
// Lines are unique: a second line between the same two nodes, in either
// direction, is rejected, as is a line from a node to itself.
package sketch
