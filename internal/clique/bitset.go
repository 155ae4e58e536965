// File: bitset.go
// Role: fixed-size bit-set of vertex indices used to represent the R/P/X
// working sets of the Bron-Kerbosch recursion, plus per-vertex adjacency
// rows. One flat []uint64 per set; no external dependency.
package clique

import "math/bits"

// bitset is a fixed-capacity set of non-negative integers backed by a flat
// []uint64, one bit per element.
type bitset []uint64

// newBitset allocates a bitset capable of holding elements in [0, n).
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// set adds i to the set.
func (b bitset) set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

// clear removes i from the set.
func (b bitset) clear(i int) {
	b[i/64] &^= 1 << uint(i%64)
}

// has reports whether i is a member of the set.
func (b bitset) has(i int) bool {
	return b[i/64]&(1<<uint(i%64)) != 0
}

// clone returns an independent copy of b.
func (b bitset) clone() bitset {
	out := make(bitset, len(b))
	copy(out, b)

	return out
}

// and returns a new bitset holding the intersection of b and other.
func (b bitset) and(other bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] & other[i]
	}

	return out
}

// andNot returns a new bitset holding b with every element of other removed.
func (b bitset) andNot(other bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] &^ other[i]
	}

	return out
}

// isEmpty reports whether the set has no members.
func (b bitset) isEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}

	return true
}

// popcount returns the number of members of the set.
func (b bitset) popcount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}

// members returns the sorted (ascending) list of elements in the set.
func (b bitset) members() []int {
	out := make([]int, 0, b.popcount())
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}
