// Package bench times the MST algorithms over a set of datasets and renders the
// comparison table.
//
// For every dataset the harness loads the graph once, then runs each algorithm
// Runs times (3 by default) on the same immutable snapshot. Each run goes through
// prim_kruskal, which allocates fresh union-find / heap state, so no run observes
// another's leftovers. The wall-clock time of every run is recorded; the MST cost
// must be identical across runs.
//
// Datasets whose file is missing or unreadable (dimacs.ErrInputUnavailable) are
// logged and skipped; any other failure aborts the run.
package bench
