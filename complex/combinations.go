// File: combinations.go
// Role: enumerate the downward closure of a maximal clique - every subset
// of size >= 2 is itself a simplex the Vietoris-Rips complex must contain.
package complex

// subsetsOfSize returns every size-k subset of verts (verts must already be
// sorted ascending), each itself sorted ascending, in lexicographic order.
func subsetsOfSize(verts []int, k int) [][]int {
	n := len(verts)
	if k > n || k <= 0 {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		for i, p := range idx {
			subset[i] = verts[p]
		}
		out = append(out, subset)

		// advance idx to the next combination, odometer-style from the right
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}

// downwardClosure adds every size-2-or-larger subset of clique (a
// maximal clique's vertex list, not assumed sorted) to into, bucketed by
// size and keyed by a stable
// string so duplicate subsets discovered via overlapping cliques collapse.
func downwardClosure(clique []int, into map[int]map[string][]int) {
	sorted := append([]int(nil), clique...)
	sortInts(sorted)
	for size := 2; size <= len(sorted); size++ {
		bucket := into[size]
		if bucket == nil {
			bucket = make(map[string][]int)
			into[size] = bucket
		}
		for _, subset := range subsetsOfSize(sorted, size) {
			bucket[vertKey(subset)] = subset
		}
	}
}

// sortInts sorts xs ascending in place via straight insertion sort - the
// slices here are clique-sized, never large enough to warrant sort.Ints'
// interface-dispatch overhead.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// vertKey renders a sorted vertex slice as a stable map key.
func vertKey(verts []int) string {
	buf := make([]byte, 0, len(verts)*5)
	for i, v := range verts {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}

	return string(buf)
}

// appendInt appends the decimal representation of v to buf without
// allocating via strconv/fmt - vertKey is called on every simplex subset
// discovered, a hot path for large point sets.
func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
