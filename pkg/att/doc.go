/*
Package att reads and writes transducers in the AT&T tabular text format.

Each row is either a single field naming an accepting state, or four fields

	source  target  input  output

separated by arbitrary whitespace. The source state of the first row is the
start state of the transducer, whatever that row's shape. Symbols are stored
verbatim; the reserved epsilon symbol is domain.Epsilon.
*/
package att
