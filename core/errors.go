package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "core: ..." for consistency and easy grepping
// across logs. Sentinels are not %w-wrapped when returned directly; callers
// match them with errors.Is. Context, when essential, is added by the outer
// boundary via fmt.Errorf("...: %w", ErrX).

var (
	// ErrEmptyVertices indicates a simplex was constructed with no vertices.
	ErrEmptyVertices = errors.New("core: simplex has no vertices")

	// ErrVertexIndexOutOfRange indicates a vertex index >= N or < 0 was used
	// in a simplex.
	ErrVertexIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrFaceIndexOutOfRange indicates a face index does not name a valid
	// position in the previous layer.
	ErrFaceIndexOutOfRange = errors.New("core: face index out of range")

	// ErrDuplicateSimplex indicates the same vertex set appears twice within
	// a single layer.
	ErrDuplicateSimplex = errors.New("core: duplicate simplex in layer")

	// ErrNotClosed indicates a complex is missing a proper face of one of
	// its simplices (the closure invariant).
	ErrNotClosed = errors.New("core: complex is not closed under faces")

	// ErrUnsortedVerts indicates a simplex's vertex list is not in ascending
	// canonical order.
	ErrUnsortedVerts = errors.New("core: simplex vertices not in canonical ascending order")

	// ErrFiltrationNotSorted indicates a filtration layer is not sorted
	// ascending by filtration index, violating the ordering invariant
	// required by package persistence.
	ErrFiltrationNotSorted = errors.New("core: filtration layer not sorted by index")

	// ErrFacesNotDescending indicates a simplex's Faces slice in a
	// pre-filtration complex is not sorted descending.
	ErrFacesNotDescending = errors.New("core: faces not sorted descending")

	// ErrScalesNotDescending indicates a caller supplied an ascending or
	// unsorted scale list where a strictly descending list is required.
	ErrScalesNotDescending = errors.New("core: scales must be strictly descending")

	// ErrEmptyScales indicates an empty scale list was supplied where at
	// least one scale was required by the caller's intent (distinct from the
	// "empty scales is a valid empty filtration" case handled explicitly by
	// package filtration).
	ErrEmptyScales = errors.New("core: scale list is empty")
)
