package linalg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "linalg: ..." for consistency and easy grepping
// across logs. Sentinels are not %w-wrapped when returned directly; callers
// match them with errors.Is; context, when essential, is added at the outer
// boundary via fmt.Errorf("...: %w", ErrX).
//
// ERROR PRIORITY (documented, enforced in tests):
// bad shape -> nil matrix -> dimension mismatch -> numeric failure (overflow/non-convergence).

var (
	// ErrBadShape is returned when requested matrix dimensions are invalid
	// (rows < 0 or cols < 0; a zero dimension is a valid degenerate shape).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrNilMatrix indicates a nil matrix argument or receiver was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates two matrices passed to a joint
	// operation (e.g. ImageInKernel) have incompatible dimensions.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOverflow indicates a fixed-width integer conversion would overflow.
	// No function in this package currently returns it: the IntMatrix
	// backend uses math/big, so SNF, rank and echelon cannot overflow.
	ErrOverflow = errors.New("linalg: integer overflow")
)
