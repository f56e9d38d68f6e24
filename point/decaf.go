package point

import "github.com/emc2/safecurves-go/curve"

// DecafCompress encodes a cofactor-4 Edwards point to its unique
// per-coset field-element representative, per spec.md §4.3:
//
//	r = 1/sqrt((a-d)*(Z+Y)*(Z-Y))
//	s = (Z-Y)*r, folded to the representative with s <= (p-1)/2
//
// s depends only on Y and Z, never on X: that is exactly what makes
// points differing by a 4-torsion element (which negates X without
// touching Y/Z) compress to the same s.
func DecafCompress(p *Edwards) []byte {
	c := p.Curve
	m := c.Field

	zPlusY := m.Zero().Add(p.Z, p.Y)
	zMinusY := m.Zero().Subtract(p.Z, p.Y)
	amd := m.Zero().Subtract(c.EdwardsA, c.EdwardsD)
	radicand := m.Zero().Multiply(amd, m.Zero().Multiply(zPlusY, zMinusY))

	r := m.Zero().Sqrt(radicand).Invert()
	s := m.Zero().Multiply(zMinusY, r)
	// Fold to the magnitude-canonical representative, s <= (p-1)/2, the
	// same convention Decompress checks below. s is public (it's the
	// function's output), so a variable-time compare is fine here.
	if s.Cmp(m.HalfP()) > 0 {
		s = m.Zero().Negate(s)
	}

	return s.Bytes()
}

// DecafDecompress decodes a Decaf encoding back to an Edwards point.
// Compress establishes s^2 = (1-y)/((a-d)*(1+y)), whose inverse is
//
//	y = (1 - (a-d)*s^2) / (1 + (a-d)*s^2)
//
// and x is then recovered from the curve equation itself:
//
//	x^2 = (1-y^2) / (a - d*y^2)
//
// s must be canonical and at most (p-1)/2, the denominator of either
// quotient must be nonzero, and x^2 must be a quadratic residue; any
// violation raises ErrInvalidPoint.
func DecafDecompress(c *curve.Params, sBytes []byte) (*Edwards, error) {
	m := c.Field
	s, err := m.SetBytes(sBytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if s.Cmp(m.HalfP()) > 0 {
		return nil, ErrInvalidPoint
	}

	amd := m.Zero().Subtract(c.EdwardsA, c.EdwardsD)
	s2 := m.Zero().Square(s)
	amds2 := m.Zero().Multiply(amd, s2)

	yDenom := m.Zero().Add(m.One(), amds2)
	if yDenom.IsZero() == 1 {
		return nil, ErrInvalidPoint
	}
	yNumer := m.Zero().Subtract(m.One(), amds2)
	y := m.Zero().Multiply(yNumer, yDenom.Invert())

	y2 := m.Zero().Square(y)
	xDenom := m.Zero().Subtract(c.EdwardsA, m.Zero().Multiply(c.EdwardsD, y2))
	if xDenom.IsZero() == 1 {
		return nil, ErrInvalidPoint
	}
	x2 := m.Zero().Multiply(m.Zero().Subtract(m.One(), y2), xDenom.Invert())
	if x2.Legendre() == -1 {
		return nil, ErrInvalidPoint
	}
	x := m.Zero().Sqrt(x2).Abs()

	return FromEdwardsAffine(c, x, y)
}
