package point

import "errors"

// The three error kinds spec.md §7 names. Callers distinguish them with
// errors.Is; this package never wraps them with additional context,
// matching the teacher's own plain sentinel-error style elsewhere in the
// crypto packages (e.g. curve25519.DecodeMontgomeryPoint's
// "invalid coordinate").
var (
	// ErrInvalidPoint is raised by decompression, FromEdwards/FromMontgomery
	// when coordinates do not satisfy the curve equation, and by
	// birational conversion at 2-torsion singularities.
	ErrInvalidPoint = errors.New("point: invalid point")

	// ErrInvalidHashInput is raised by Elligator decode when the input
	// hits the map's exceptional set.
	ErrInvalidHashInput = errors.New("point: invalid hash-to-curve input")

	// ErrEncodeRefused is raised by Elligator encode when canEncode(P) is
	// false.
	ErrEncodeRefused = errors.New("point: point cannot be encoded")
)
