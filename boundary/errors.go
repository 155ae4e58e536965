package boundary

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "boundary: ..." per the corpus-wide convention
// (see linalg/errors.go, core/errors.go); sentinels are matched via errors.Is.
var (
	// ErrNilComplex indicates a nil *core.SimplicialComplex was passed in.
	ErrNilComplex = errors.New("boundary: nil complex")
)
