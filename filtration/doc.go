// Package filtration builds a core.Filtration from a descending list of
// scales: the Vietoris-Rips complex is constructed once, at the
// largest scale, and every simplex is then assigned the filtration index at
// which it first becomes admissible as the threshold shrinks toward the
// smallest scale.
//
// A simplex's admission is governed by its longest internal edge: a
// (k+1)-vertex simplex is present in the Vietoris-Rips complex at threshold
// s iff every one of its C(k+1,2) pairwise distances is < s, so the binding
// constraint is always the single longest pair. Build counts how many of
// scales[1:] that longest edge still reaches or exceeds (scales[0] is the
// construction scale itself and never excludes anything); that count is the
// simplex's Idx. Because a face's longest edge can never exceed its
// simplex's, Idx is non-decreasing from face to simplex, which is exactly
// the closure property package persistence depends on.
//
// Build recomputes the metric on demand ("light"); BuildCached precomputes
// the full pairwise-distance graph once ("fast"), mirroring package
// complex's split.
package filtration
