// Package codec converts between the typed engine values and the textual
// boundary encoding used by callers of the one-stroke solver.
//
// Encoding:
//
//	edges   "a,b/c,d/..."         one "from,to" pair per edge, joined by "/"
//	trails  "n0,n1,.../m0,m1,..." nodes joined by ",", trails joined by "/"
//
// Node identifiers are non-negative decimal integers. An empty (or
// whitespace-only) string is an empty list for both forms; Format of an
// empty list is "".
//
// Parsing uses a participle grammar over a three-rule lexer, so syntax
// errors carry a position. For canonical inputs Format(Parse(s)) == s, and
// Parse(Format(x)) == x for any value.
package codec
