// Package clique implements a maximal-clique enumerator: a black box behind
// an adjacency predicate and a vertex count, returning every
// maximal clique of the graph exactly once, in unspecified order.
//
// The shape of the recursion (growing set R, candidate set P, excluded set
// X, with a pivot chosen from P ∪ X to prune the branching factor) follows
// the classic Bron-Kerbosch-with-pivoting algorithm. The recursion
// works against a plain adjacency predicate rather than a materialized
// graph type, since package complex only ever has an implicit adjacency
// (distance < scale), never a graph object.
package clique
