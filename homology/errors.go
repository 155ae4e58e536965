package homology

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "homology: ..." per the corpus-wide convention.
var (
	// ErrNilComplex indicates a nil *core.SimplicialComplex was passed in.
	ErrNilComplex = errors.New("homology: nil complex")
)
