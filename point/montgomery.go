package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// Montgomery is an x-only point in projective (X:Z) coordinates on a
// curve's Montgomery form, the representation the ladder (package
// point's ladder.go) operates on exclusively. The point at infinity is
// (1:0).
type Montgomery struct {
	Curve *curve.Params
	X, Z  *field.Element
}

// ZeroMontgomery returns the point at infinity, (1:0).
func ZeroMontgomery(c *curve.Params) *Montgomery {
	return &Montgomery{Curve: c, X: c.Field.One(), Z: c.Field.Zero()}
}

// FromMontgomeryAffine builds an x-only point from a Montgomery
// u-coordinate, without checking it lies on the curve (x-only
// representations cannot distinguish a curve point from its twist's,
// which is exactly why the ladder is safe to run on untrusted input --
// spec.md §4.4 relies on this).
func FromMontgomeryAffine(c *curve.Params, u *field.Element) *Montgomery {
	return &Montgomery{Curve: c, X: u.Clone(), Z: c.Field.One()}
}

// Clone returns an independent copy of the receiver.
func (p *Montgomery) Clone() *Montgomery {
	return &Montgomery{Curve: p.Curve, X: p.X.Clone(), Z: p.Z.Clone()}
}

// Affine returns the u-coordinate X/Z, leaving the receiver unscaled.
func (p *Montgomery) Affine() *field.Element {
	m := p.Curve.Field
	return m.Zero().Multiply(p.X, p.Z.Invert())
}
