package clique

// MaximalCliques enumerates every maximal clique of the undirected graph
// described by n vertices [0, n) and an adjacency predicate adj(i, j), which
// must be symmetric and irreflexive (adj(i, i) is never consulted). Each
// maximal clique is returned exactly once, as an ascending-sorted slice of
// vertex indices; overall order is unspecified.
//
// Algorithm: Bron-Kerbosch with pivoting (Tomita's variant), recursing over
// three bitsets R (the clique under construction), P (candidates that could
// extend R), and X (vertices already excluded because every clique
// containing them and R was already reported). The pivot is chosen from
// P ∪ X to maximize |N(pivot) ∩ P|, which bounds the branching factor by
// restricting recursion to P \ N(pivot).
//
// Complexity: worst-case exponential in n (inherent to the problem - the
// number of maximal cliques itself can be exponential), but the pivoting
// rule keeps it close to the Moon-Moser bound of 3^(n/3) maximal cliques in
// practice for the point-cloud-derived graphs this package actually sees.
func MaximalCliques(n int, adj func(i, j int) bool) [][]int {
	if n <= 0 {
		return nil
	}

	rows := buildAdjacencyRows(n, adj)

	r := newBitset(n)
	p := newBitset(n)
	x := newBitset(n)
	for i := 0; i < n; i++ {
		p.set(i)
	}

	var out [][]int
	bronKerboschPivot(rows, r, p, x, &out)

	return out
}

// buildAdjacencyRows materializes adj into one bitset row per vertex, so the
// recursion only ever intersects bitsets instead of re-invoking the
// (possibly expensive) adjacency predicate.
func buildAdjacencyRows(n int, adj func(i, j int) bool) []bitset {
	rows := make([]bitset, n)
	for i := range rows {
		rows[i] = newBitset(n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj(i, j) {
				rows[i].set(j)
				rows[j].set(i)
			}
		}
	}

	return rows
}

// bronKerboschPivot recurses over (R, P, X), appending a fresh clique to out
// every time P and X are both empty. rows is the precomputed adjacency.
func bronKerboschPivot(rows []bitset, r, p, x bitset, out *[][]int) {
	if p.isEmpty() && x.isEmpty() {
		if members := r.members(); len(members) > 0 {
			*out = append(*out, members)
		}

		return
	}

	pivot := choosePivot(rows, p, x)
	candidates := p.andNot(rows[pivot])

	for _, v := range candidates.members() {
		rNext := r.clone()
		rNext.set(v)
		pNext := p.and(rows[v])
		xNext := x.and(rows[v])

		bronKerboschPivot(rows, rNext, pNext, xNext, out)

		p.clear(v)
		x.set(v)
	}
}

// choosePivot selects the vertex from P ∪ X with the largest
// |N(pivot) ∩ P|, the classic Tomita pivoting rule.
func choosePivot(rows []bitset, p, x bitset) int {
	best := -1
	bestScore := -1
	for _, v := range p.members() {
		score := rows[v].and(p).popcount()
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	for _, v := range x.members() {
		score := rows[v].and(p).popcount()
		if score > bestScore {
			best, bestScore = v, score
		}
	}

	return best
}
