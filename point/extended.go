package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// Extended is a twisted-Edwards point in extended (X:Y:Z:T) coordinates,
// maintaining the invariant T*Z = X*Y after every operation. Its Add
// consumes T directly in the Hisil-Wong-Carter-Dawson formula below; the
// projective Edwards type carries no T. DecafCompress and MulX do not use
// this type: they take Edwards and Montgomery points respectively.
type Extended struct {
	Curve      *curve.Params
	X, Y, Z, T *field.Element
}

// ZeroExtended returns the neutral element (0:1:1:0).
func ZeroExtended(c *curve.Params) *Extended {
	m := c.Field
	return &Extended{Curve: c, X: m.Zero(), Y: m.One(), Z: m.One(), T: m.Zero()}
}

// FromProjective lifts a Projective Edwards point to extended
// coordinates by computing T = X*Y/Z... rescaled to avoid an inversion:
// multiplying every coordinate by Z keeps the ratios and lets
// T = X*Y*Z(old) / Z(old)^2 simplify to the affine-free form
// (X*Z : Y*Z : Z^2 : X*Y).
func FromProjective(p *Edwards) *Extended {
	m := p.Curve.Field
	return &Extended{
		Curve: p.Curve,
		X:     m.Zero().Multiply(p.X, p.Z),
		Y:     m.Zero().Multiply(p.Y, p.Z),
		Z:     m.Zero().Square(p.Z),
		T:     m.Zero().Multiply(p.X, p.Y),
	}
}

// ToProjective drops T, yielding the equivalent Projective Edwards point.
func (p *Extended) ToProjective() *Edwards {
	return &Edwards{Curve: p.Curve, X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone()}
}

// Clone returns an independent copy of the receiver.
func (p *Extended) Clone() *Extended {
	return &Extended{Curve: p.Curve, X: p.X.Clone(), Y: p.Y.Clone(), Z: p.Z.Clone(), T: p.T.Clone()}
}

// Affine scales the point to (X/Z : Y/Z : 1 : X*Y) in place and returns
// the resulting (x, y) pair.
func (p *Extended) Affine() (x, y *field.Element) {
	m := p.Curve.Field
	zInv := p.Z.Invert()
	p.X = m.Zero().Multiply(p.X, zInv)
	p.Y = m.Zero().Multiply(p.Y, zInv)
	p.Z = m.One()
	p.T = m.Zero().Multiply(p.X, p.Y)
	return p.X, p.Y
}

// IsZero reports whether the point is the neutral element.
func (p *Extended) IsZero() int {
	return p.X.IsZero() & p.Y.Equal(p.Z)
}

// Equal reports whether p and q represent the same projective point.
func (p *Extended) Equal(q *Extended) int {
	m := p.Curve.Field
	lx := m.Zero().Multiply(p.X, q.Z)
	rx := m.Zero().Multiply(q.X, p.Z)
	ly := m.Zero().Multiply(p.Y, q.Z)
	ry := m.Zero().Multiply(q.Y, p.Z)
	return lx.Equal(rx) & ly.Equal(ry)
}

// Add sets the receiver to p+q using the general-a Hisil-Wong-Carter-
// Dawson extended addition formula spec.md §4.3 names:
//
//	A = X1*X2; B = Y1*Y2; C = d*T1*T2; D = Z1*Z2
//	E = (X1+Y1)*(X2+Y2)-A-B; F = D-C; G = D+C; H = B-a*A
//	X3 = E*F; Y3 = G*H; T3 = E*H; Z3 = F*G
//
// T is recomputed as part of this formula on every call, preserving
// T*Z = X*Y exactly, rather than derived afterward from X3*Y3/Z3.
func (r *Extended) Add(p, q *Extended) *Extended {
	c := p.Curve
	m := c.Field

	A := m.Zero().Multiply(p.X, q.X)
	B := m.Zero().Multiply(p.Y, q.Y)
	C := m.Zero().Multiply(c.EdwardsD, m.Zero().Multiply(p.T, q.T))
	D := m.Zero().Multiply(p.Z, q.Z)

	xpy1 := m.Zero().Add(p.X, p.Y)
	xpy2 := m.Zero().Add(q.X, q.Y)
	E := m.Zero().Subtract(m.Zero().Subtract(m.Zero().Multiply(xpy1, xpy2), A), B)
	F := m.Zero().Subtract(D, C)
	G := m.Zero().Add(D, C)
	H := m.Zero().Subtract(B, m.Zero().Multiply(c.EdwardsA, A))

	r.Curve = c
	r.X = m.Zero().Multiply(E, F)
	r.Y = m.Zero().Multiply(G, H)
	r.T = m.Zero().Multiply(E, H)
	r.Z = m.Zero().Multiply(F, G)
	return r
}

// Double sets the receiver to 2*p via Add(p, p); the extended formula
// above is already a unified law, so no dedicated doubling formula is
// used here (the projective Edwards type has one, although its Add is
// unified too).
func (r *Extended) Double(p *Extended) *Extended {
	return r.Add(p, p)
}

// Negate sets the receiver to -p: (-X:Y:Z:-T).
func (r *Extended) Negate(p *Extended) *Extended {
	m := p.Curve.Field
	r.Curve = p.Curve
	r.X = m.Zero().Negate(p.X)
	r.Y = p.Y.Clone()
	r.Z = p.Z.Clone()
	r.T = m.Zero().Negate(p.T)
	return r
}

// ClearCofactor sets the receiver to cofactor*p, via repeated doubling.
func (r *Extended) ClearCofactor(p *Extended) *Extended {
	acc := p.Clone()
	for h := p.Curve.Cofactor; h > 1; h /= 2 {
		acc.Double(acc)
	}
	r.Curve, r.X, r.Y, r.Z, r.T = acc.Curve, acc.X, acc.Y, acc.Z, acc.T
	return r
}
