package persistence

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "persistence: ..." per the corpus-wide
// convention. Sentinels are not %w-wrapped when returned directly; callers
// match them with errors.Is.
var (
	// ErrNilFiltration indicates a nil *core.Filtration was passed in.
	ErrNilFiltration = errors.New("persistence: nil filtration")

	// ErrFiltrationInvariant indicates the filtration does not satisfy the
	// ordering invariants required as input to the reduction
	// algorithm (per-layer ascending Idx, resolvable Faces back-pointers).
	ErrFiltrationInvariant = errors.New("persistence: filtration violates ordering invariant")

	// ErrEmptyScales indicates ScaleBarcodes was called with an empty scale
	// list against a non-empty filtration, so index-to-scale remapping has
	// nothing to map into.
	ErrEmptyScales = errors.New("persistence: empty scale list")
)
