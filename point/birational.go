package point

import "github.com/emc2/safecurves-go/field"

// EdwardsToMontgomeryAffine converts an Edwards affine point (x, y) to
// its birationally-equivalent Montgomery affine point (u, v), per
// spec.md §4.3: u = (1+y)/(1-y), v = u/x. 1-y = 0 happens exactly at the
// Edwards 2-torsion point (0,-1), which has no Montgomery image; that
// case raises ErrInvalidPoint rather than dividing by zero.
func EdwardsToMontgomeryAffine(m *field.Modulus, x, y *field.Element) (u, v *field.Element, err error) {
	oneMinusY := m.Zero().Subtract(m.One(), y)
	if oneMinusY.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	onePlusY := m.Zero().Add(m.One(), y)
	u = m.Zero().Multiply(onePlusY, oneMinusY.Invert())
	v = m.Zero().Multiply(u, x.Invert())
	return u, v, nil
}

// MontgomeryToEdwardsAffine converts a Montgomery affine point (u, v) to
// its birationally-equivalent Edwards affine point (x, y): x = u/v,
// y = (u-1)/(u+1). u+1 = 0 happens exactly at the Montgomery 2-torsion
// point (-1, 0), which has no Edwards image; that case raises
// ErrInvalidPoint.
func MontgomeryToEdwardsAffine(m *field.Modulus, u, v *field.Element) (x, y *field.Element, err error) {
	uPlus1 := m.Zero().Add(u, m.One())
	if uPlus1.IsZero() == 1 {
		return nil, nil, ErrInvalidPoint
	}
	x = m.Zero().Multiply(u, v.Invert())
	uMinus1 := m.Zero().Subtract(u, m.One())
	y = m.Zero().Multiply(uMinus1, uPlus1.Invert())
	return x, y, nil
}

// EdwardsToMontgomery converts an Edwards point to the equivalent
// Montgomery x-only point, discarding v (the ladder never needs it).
func EdwardsToMontgomery(p *Edwards) (*Montgomery, error) {
	x, y := p.Clone().Affine()
	m := p.Curve.Field
	u, _, err := EdwardsToMontgomeryAffine(m, x, y)
	if err != nil {
		return nil, err
	}
	return &Montgomery{Curve: p.Curve, X: u, Z: m.One()}, nil
}

// MontgomeryToEdwards converts an x-only Montgomery point back to
// Edwards form, given the v-coordinate recovered separately (e.g. from
// the curve equation, since x-only representations do not carry it).
func MontgomeryToEdwards(c *Montgomery, v *field.Element) (*Edwards, error) {
	m := c.Curve.Field
	u := c.Affine()
	x, y, err := MontgomeryToEdwardsAffine(m, u, v)
	if err != nil {
		return nil, err
	}
	return &Edwards{Curve: c.Curve, X: x, Y: y, Z: m.One()}, nil
}
