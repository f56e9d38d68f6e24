// Package group implements the facade spec.md §4.7 (C7) names: it binds
// one curve.Params to the Edwards point representation and exposes the
// handful of entry points a caller needs to get a Point onto the curve
// -- from raw affine coordinates, from a hash-to-curve scalar, or from a
// compressed Decaf encoding -- without touching package point or
// package curve directly.
package group

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
	"github.com/emc2/safecurves-go/point"
)

// Group binds a curve to the Edwards point representation. A Group
// value is immutable and carries no per-call state, so it is safe to
// share across goroutines; every method that returns a Point returns a
// fresh one the caller exclusively owns, per spec.md §4.7's "callers
// never share mutable points with the facade".
type Group struct {
	Curve *curve.Params
}

// New binds a Group to c.
func New(c *curve.Params) *Group {
	return &Group{Curve: c}
}

// BasePoint returns a fresh clone of the curve's base point.
func (g *Group) BasePoint() *point.Edwards {
	return point.BaseEdwards(g.Curve)
}

// ZeroPoint returns a fresh clone of the neutral element.
func (g *Group) ZeroPoint() *point.Edwards {
	return point.ZeroEdwards(g.Curve)
}

// Scratchpad draws a per-field register file from the shared pool; the
// caller must Release it on every exit path.
func (g *Group) Scratchpad() *field.Scratchpad {
	return field.AcquireScratchpad(g.Curve.Field)
}

// Cofactor returns the curve's cofactor.
func (g *Group) Cofactor() int {
	return g.Curve.Cofactor
}

// PrimeOrder returns the order of the prime-order subgroup, or nil if
// this curve's table entry does not carry an independently verified
// value (see DESIGN.md's Open Question decision on this).
func (g *Group) PrimeOrder() *field.Element {
	return g.Curve.PrimeOrder
}

// FromEdwards builds a point from Edwards affine coordinates, rejecting
// inputs that do not satisfy the curve equation.
func (g *Group) FromEdwards(x, y *field.Element) (*point.Edwards, error) {
	return point.FromEdwardsAffine(g.Curve, x, y)
}

// FromMontgomery builds a point from Montgomery affine coordinates via
// the birational map, rejecting the 2-torsion singularity u = -1.
func (g *Group) FromMontgomery(u, v *field.Element) (*point.Edwards, error) {
	x, y, err := point.MontgomeryToEdwardsAffine(g.Curve.Field, u, v)
	if err != nil {
		return nil, err
	}
	return point.FromEdwardsAffine(g.Curve, x, y)
}

// FromCompressed decompresses a Decaf encoding into a point, applying
// every validation rule spec.md §4.3's "point validation on
// decompression" names.
func (g *Group) FromCompressed(sBytes []byte) (*point.Edwards, error) {
	return point.DecafDecompress(g.Curve, sBytes)
}

// FromHashBytes reduces an arbitrary-length byte string into the field
// (via SetWideBytes, so callers may pass raw hash output wider than
// the field) and applies FromHash.
func (g *Group) FromHashBytes(b []byte) (*point.Edwards, error) {
	return g.FromHash(g.Curve.Field.SetWideBytes(b))
}

// FromHash maps a field element to a point via whichever Elligator
// variant this curve's residue class supports, per spec.md §4.5/§4.6.
// Elligator-2 is preferred when both are available, since it is
// defined directly on the Montgomery form every curve here also
// carries; when only Elligator-1 is available, its Edwards-domain
// decode is used directly. A curve supporting neither is a
// construction-time error in package curve's table, not a condition
// this method needs to re-check.
func (g *Group) FromHash(r *field.Element) (*point.Edwards, error) {
	c := g.Curve
	switch {
	case c.HasElligator2:
		x, y, err := point.Elligator2Decode(c, r)
		if err != nil {
			return nil, err
		}
		return g.FromMontgomery(x, y)
	case c.HasElligator1:
		return point.Elligator1Decode(c, r)
	default:
		panic("group: curve " + c.Name + " supports no hash-to-curve map")
	}
}
