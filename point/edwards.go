// Package point implements the group-element representations and
// operations spec.md §4 names: projective and extended twisted-Edwards
// coordinates, projective (x-only) Montgomery coordinates, Decaf
// compression, the Montgomery ladder, and the Elligator-1/Elligator-2
// hash-to-curve maps. Every binary operation writes into its receiver,
// following the same chaining convention as package field's Elements.
package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// Edwards is a twisted-Edwards point in projective (X:Y:Z) coordinates,
// affine (x,y) = (X/Z, Y/Z), Z != 0. The neutral element is (0:1:1).
//
// Points are mutable and exclusively own their coordinates: Add/Double
// write into the receiver, and Clone is the only way to get an
// independent copy, matching spec.md's "Point" lifecycle note.
type Edwards struct {
	Curve   *curve.Params
	X, Y, Z *field.Element
}

// ZeroEdwards returns the neutral element (0:1:1) of the given curve.
func ZeroEdwards(c *curve.Params) *Edwards {
	m := c.Field
	return &Edwards{Curve: c, X: m.Zero(), Y: m.One(), Z: m.One()}
}

// BaseEdwards returns a fresh clone of the curve's base point, per
// spec.md §4.7's "base_point() (fresh clone)" contract.
func BaseEdwards(c *curve.Params) *Edwards {
	return &Edwards{
		Curve: c,
		X:     c.BaseEdwardsX.Clone(),
		Y:     c.BaseEdwardsY.Clone(),
		Z:     c.Field.One(),
	}
}

// FromEdwardsAffine builds a point from affine coordinates, rejecting
// inputs that do not satisfy a*x^2+y^2 = 1+d*x^2*y^2.
func FromEdwardsAffine(c *curve.Params, x, y *field.Element) (*Edwards, error) {
	m := c.Field
	x2 := m.Zero().Square(x)
	y2 := m.Zero().Square(y)
	lhs := m.Zero().Add(m.Zero().Multiply(c.EdwardsA, x2), y2)
	rhs := m.Zero().Add(m.One(), m.Zero().Multiply(c.EdwardsD, m.Zero().Multiply(x2, y2)))
	if lhs.Equal(rhs) != 1 {
		return nil, ErrInvalidPoint
	}
	return &Edwards{Curve: c, X: x.Clone(), Y: y.Clone(), Z: m.One()}, nil
}

// Clone returns an independent copy of the receiver.
func (p *Edwards) Clone() *Edwards {
	return &Edwards{Curve: p.Curve, X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone()}
}

// Affine scales the point to (X/Z : Y/Z : 1) in place and returns the
// resulting (x, y) pair. It is idempotent: calling it again on an
// already-affine point is a single harmless extra inversion of 1.
func (p *Edwards) Affine() (x, y *field.Element) {
	m := p.Curve.Field
	zInv := p.Z.Invert()
	p.X = m.Zero().Multiply(p.X, zInv)
	p.Y = m.Zero().Multiply(p.Y, zInv)
	p.Z = m.One()
	return p.X, p.Y
}

// IsZero reports whether the point is the neutral element, in time
// independent of its coordinates.
func (p *Edwards) IsZero() int {
	// Neutral iff X == 0 and Y == Z (both checked on unscaled
	// coordinates, since X/Z == 0 <=> X == 0 for Z != 0, and
	// Y/Z == 1 <=> Y == Z).
	return p.X.IsZero() & p.Y.Equal(p.Z)
}

// Equal reports whether p and q represent the same projective point, in
// time independent of their coordinates: X1*Z2 == X2*Z1 and
// Y1*Z2 == Y2*Z1.
func (p *Edwards) Equal(q *Edwards) int {
	m := p.Curve.Field
	lx := m.Zero().Multiply(p.X, q.Z)
	rx := m.Zero().Multiply(q.X, p.Z)
	ly := m.Zero().Multiply(p.Y, q.Z)
	ry := m.Zero().Multiply(q.Y, p.Z)
	return lx.Equal(rx) & ly.Equal(ry)
}

// Add sets the receiver to p+q using the projective twisted-Edwards
// addition law of spec.md §4.3:
//
//	A = Z1*Z2; B = A^2; C = X1*X2; D = Y1*Y2
//	E = d*C*D; F = B-E; G = B+E
//	X3 = A*F*((X1+Y1)*(X2+Y2) - C - D)
//	Y3 = A*G*(D - a*C)
//	Z3 = F*G
//
// This formula is unified (no separate doubling case is required for
// correctness), but Double below uses a cheaper dedicated formula on the
// hot path, per spec.md's note that doubling "avoids field inversions
// and exploit[s] T in the extended case."
func (r *Edwards) Add(p, q *Edwards) *Edwards {
	c := p.Curve
	m := c.Field

	A := m.Zero().Multiply(p.Z, q.Z)
	B := m.Zero().Square(A)
	C := m.Zero().Multiply(p.X, q.X)
	D := m.Zero().Multiply(p.Y, q.Y)
	E := m.Zero().Multiply(c.EdwardsD, m.Zero().Multiply(C, D))
	F := m.Zero().Subtract(B, E)
	G := m.Zero().Add(B, E)

	pxpy := m.Zero().Add(p.X, p.Y)
	qxqy := m.Zero().Add(q.X, q.Y)
	cross := m.Zero().Subtract(m.Zero().Multiply(pxpy, qxqy), C)
	cross = m.Zero().Subtract(cross, D)

	X3 := m.Zero().Multiply(m.Zero().Multiply(A, F), cross)
	Y3 := m.Zero().Multiply(m.Zero().Multiply(A, G), m.Zero().Subtract(D, m.Zero().Multiply(c.EdwardsA, C)))
	Z3 := m.Zero().Multiply(F, G)

	r.Curve, r.X, r.Y, r.Z = c, X3, Y3, Z3
	return r
}

// Double sets the receiver to 2*p, the p=q degenerate case of Add
// (A=Z1*Z2 becomes Z^2, so B=A^2 becomes Z^4, etc.), simplified to avoid
// recomputing the same products twice.
func (r *Edwards) Double(p *Edwards) *Edwards {
	c := p.Curve
	m := c.Field

	A := m.Zero().Square(p.Z)
	B := m.Zero().Square(A)
	C := m.Zero().Square(p.X)
	D := m.Zero().Square(p.Y)
	E := m.Zero().Multiply(c.EdwardsD, m.Zero().Multiply(C, D))
	F := m.Zero().Subtract(B, E)
	G := m.Zero().Add(B, E)

	xpy := m.Zero().Add(p.X, p.Y)
	cross := m.Zero().Subtract(m.Zero().Square(xpy), C)
	cross = m.Zero().Subtract(cross, D)

	X3 := m.Zero().Multiply(m.Zero().Multiply(A, F), cross)
	Y3 := m.Zero().Multiply(m.Zero().Multiply(A, G), m.Zero().Subtract(D, m.Zero().Multiply(c.EdwardsA, C)))
	Z3 := m.Zero().Multiply(F, G)

	r.Curve, r.X, r.Y, r.Z = c, X3, Y3, Z3
	return r
}

// Negate sets the receiver to -p: (-X:Y:Z).
func (r *Edwards) Negate(p *Edwards) *Edwards {
	m := p.Curve.Field
	r.Curve = p.Curve
	r.X = m.Zero().Negate(p.X)
	r.Y = p.Y.Clone()
	r.Z = p.Z.Clone()
	return r
}

// ClearCofactor sets the receiver to cofactor*p, computed by repeated
// doubling -- every curve this module tables has a power-of-two
// cofactor, so no general scalar multiplier is needed here.
func (r *Edwards) ClearCofactor(p *Edwards) *Edwards {
	acc := p.Clone()
	for h := p.Curve.Cofactor; h > 1; h /= 2 {
		acc.Double(acc)
	}
	r.Curve, r.X, r.Y, r.Z = acc.Curve, acc.X, acc.Y, acc.Z
	return r
}
