package core

// Simplex is a single (k+1)-vertex simplex stored inside layer k of a
// SimplicialComplex. Verts holds the vertex indices in ascending canonical
// order, fixed at construction so that structural equality between two
// simplices reduces to slice equality. Faces holds indices into the
// previous layer naming this simplex's codimension-1 faces; it is empty for
// edges (dimension 1), since an edge's faces are trivially its two
// endpoints and are never materialized as a layer of their own.
type Simplex struct {
	Verts []int
	Faces []int
}

// Dim returns the dimension of the simplex: |Verts| - 1.
func (s Simplex) Dim() int {
	return len(s.Verts) - 1
}

// SimplicialComplex is a pair (N, Layers): N is the vertex count, and
// Layers[k] is the ordered slice of (k+1)-dimensional simplices, so
// Layers[0] holds edges, Layers[1] holds triangles, and so on. An empty
// point set yields SimplicialComplex{N: 0, Layers: nil}, which is a valid,
// not erroneous, complex.
type SimplicialComplex struct {
	N      int
	Layers [][]Simplex
}

// Dim returns the highest dimension present, or -1 for an empty complex
// (no edges at all). Since Layers[k] holds dimension-(k+1) simplices, the
// highest dimension present is len(Layers), not len(Layers)-1.
func (sc *SimplicialComplex) Dim() int {
	if len(sc.Layers) == 0 {
		return -1
	}

	return len(sc.Layers)
}

// NumSimplices returns the number of dimension-k simplices. Edges (k=1)
// live in Layers[0], so this indexes Layers[k-1]; k=0 (vertices) returns N
// since vertices are never materialized as a layer. Returns 0 if k is
// otherwise out of range.
func (sc *SimplicialComplex) NumSimplices(k int) int {
	if k == 0 {
		return sc.N
	}
	idx := k - 1
	if idx < 0 || idx >= len(sc.Layers) {
		return 0
	}

	return len(sc.Layers[idx])
}

// FilteredSimplex is a Simplex annotated with the filtration index at which
// it enters the filtration. Idx == 0 means "present from the start."
type FilteredSimplex struct {
	Idx   int
	Verts []int
	Faces []int
}

// Dim returns the dimension of the filtered simplex.
func (s FilteredSimplex) Dim() int {
	return len(s.Verts) - 1
}

// Filtration is a ℕ-indexed nested sequence of sub-complexes, in one of two
// shapes:
//
//   - Simple:  General == false. Layers[k] holds filtered (k+1)-simplices
//     starting at k = 1 (edges); all N vertices implicitly carry Idx = 0.
//   - General: General == true. Layers[0] is the vertex layer (filtered
//     simplices with empty Verts/Faces, one per vertex); Layers[k] for
//     k >= 1 is as in the Simple shape.
//
// Ordering invariants (load-bearing for package persistence):
//   - Within each layer, simplices are sorted by Idx ascending.
//   - Each simplex's Faces slice is sorted ascending by the post-sort
//     position it names (package filtration produces this; it is the input
//     contract persistence.Barcodes relies on).
type Filtration struct {
	N       int
	General bool
	Layers  [][]FilteredSimplex
}

// Dim returns the highest simplex dimension present in the filtration.
func (f *Filtration) Dim() int {
	if f.General {
		return len(f.Layers) - 1
	}

	return len(f.Layers)
}

// EdgeLayer returns the index into Layers holding edges (dimension-1
// simplices), accounting for the General/Simple shape difference.
func (f *Filtration) EdgeLayer() int {
	if f.General {
		return 1
	}

	return 0
}

// Extended is the sum type {Finite(T), Infinity} with total ordering:
// Finite(a) < Finite(b) iff a < b; Finite(_) < Infinity; Infinity == Infinity.
// The zero value is Finite(zero value of T); set Infinite to represent the
// symbolic Infinity value.
type Extended[T comparable] struct {
	Value    T
	Infinite bool
}

// FiniteValue constructs a finite Extended[T] wrapping v.
func FiniteValue[T comparable](v T) Extended[T] {
	return Extended[T]{Value: v}
}

// InfiniteValue constructs the symbolic Infinity of Extended[T].
func InfiniteValue[T comparable]() Extended[T] {
	var zero T
	return Extended[T]{Value: zero, Infinite: true}
}

// IsInfinite reports whether e represents Infinity.
func (e Extended[T]) IsInfinite() bool {
	return e.Infinite
}

// Barcode is a (birth, death) pair for a topological feature. birth is an
// index (persistence.Barcodes) or a scale
// (persistence.ScaleBarcodes); death is either a finite index/scale or
// Infinity.
type Barcode[T comparable] struct {
	Birth T
	Death Extended[T]
}
