// Package dimacs reads and writes road graphs in the 9th DIMACS Implementation
// Challenge shortest-path format (USA-road-d.*.gr).
//
// The format is line oriented:
//
//	c <free text>          comment, ignored
//	p sp <N> <M>           problem line: N vertices, M arcs
//	a <u> <v> <w>          arc from u to v with non-negative integer weight w
//
// Arcs are listed directionally in the files (each road usually appears twice),
// but every arc is loaded as an undirected core.Edge; the MST algorithms do not
// care about the duplicate.
//
// Load picks the transport by file name: "*.gz" is streamed through gzip, anything
// else is memory-mapped read-only and parsed straight from the mapping.
//
// Errors:
//
//	ErrInputUnavailable - the file is missing, unreadable or not valid gzip.
//	                      Callers such as the benchmark harness skip the dataset.
//	ErrMalformed        - the content violates the format (with line number).
//	core.ErrVertexOutOfRange / core.ErrNegativeWeight - an arc the graph rejects.
package dimacs
