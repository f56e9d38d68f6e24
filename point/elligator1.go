package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// Elligator1Decode maps a field element t to an Edwards point, per
// spec.md §4.5. It is defined only for curves with p = 3 mod 4 (callers
// are expected to have checked c.HasElligator1, the same way the group
// facade only wires this map to curves whose table entry set it).
//
//	u = (1-t)/(1+t)
//	v = (u^4 + (r^2-2)*u^2 + 1) * u
//	l1 = legendre(v); l2 = legendre(u^2 + 1/c^2)
//	Y = sqrt(l1*v)*l1*l2; X = l1*u
//	x = (c-1)*s*X*(1+X)/Y
//	y = (r*X - (1+X)^2) / (r*X + (1+X)^2)
//
// t = -1 is the map's exceptional point (1+t = 0) and is rejected with
// ErrInvalidHashInput.
func Elligator1Decode(c *curve.Params, t *field.Element) (*Edwards, error) {
	m := c.Field

	onePlusT := m.Zero().Add(m.One(), t)
	if onePlusT.IsZero() == 1 {
		return nil, ErrInvalidHashInput
	}
	oneMinusT := m.Zero().Subtract(m.One(), t)
	u := m.Zero().Multiply(oneMinusT, onePlusT.Invert())

	u2 := m.Zero().Square(u)
	u4 := m.Zero().Square(u2)
	r2minus2 := m.Zero().Subtract(m.Zero().Square(c.ElligatorR), m.FromInt64(2))
	v := m.Zero().Add(u4, m.Zero().Multiply(r2minus2, u2))
	v = m.Zero().Add(v, m.One())
	v = m.Zero().Multiply(v, u)

	l1 := m.FromInt64(int64(v.Legendre()))
	cInv := c.ElligatorC.Invert()
	cInv2 := m.Zero().Square(cInv)
	l2 := m.FromInt64(int64(m.Zero().Add(u2, cInv2).Legendre()))

	l1v := m.Zero().Multiply(l1, v)
	Y := m.Zero().Multiply(m.Zero().Sqrt(l1v), m.Zero().Multiply(l1, l2))
	X := m.Zero().Multiply(l1, u)

	onePlusX := m.Zero().Add(m.One(), X)
	cMinus1 := m.Zero().Subtract(c.ElligatorC, m.One())
	xNum := m.Zero().Multiply(cMinus1, m.Zero().Multiply(c.ElligatorS, m.Zero().Multiply(X, onePlusX)))
	x := m.Zero().Multiply(xNum, Y.Invert())

	rX := m.Zero().Multiply(c.ElligatorR, X)
	onePlusXSq := m.Zero().Square(onePlusX)
	yNum := m.Zero().Subtract(rX, onePlusXSq)
	yDen := m.Zero().Add(rX, onePlusXSq)
	y := m.Zero().Multiply(yNum, yDen.Invert())

	return FromEdwardsAffine(c, x, y)
}

// Elligator1Encode maps an Edwards point to a field-element pre-image,
// returning the non-negative representative of the two that differ by
// negation (spec.md §4.5's "the absolute value folds the +/-t
// equivalence"). It returns ErrEncodeRefused when canEncode(P) is false.
//
//	e = (y-1)/(2*(y+1))
//	X = sqrt((1+e*r)^2 - 1) - (1+e*r)
//	z = legendre((c-1)*s*X*(1+X)*x*(X^2+1/c^2))
//	u = z*X; t = |(1-u)/(1+u)|
func Elligator1Encode(p *Edwards) (*field.Element, error) {
	c := p.Curve
	m := c.Field
	x, y := p.Clone().Affine()

	if !Elligator1CanEncode(p) {
		return nil, ErrEncodeRefused
	}

	onePlusY := m.Zero().Add(m.One(), y)
	yMinus1 := m.Zero().Subtract(y, m.One())
	e := m.Zero().Multiply(yMinus1, m.Zero().MulSmall(onePlusY, 2).Invert())

	onePlusER := m.Zero().Add(m.One(), m.Zero().Multiply(e, c.ElligatorR))
	radicand := m.Zero().Subtract(m.Zero().Square(onePlusER), m.One())
	X := m.Zero().Subtract(m.Zero().Sqrt(radicand), onePlusER)

	cMinus1 := m.Zero().Subtract(c.ElligatorC, m.One())
	onePlusX := m.Zero().Add(m.One(), X)
	cInv2 := m.Zero().Square(c.ElligatorC.Invert())
	X2plusCInv2 := m.Zero().Add(m.Zero().Square(X), cInv2)

	zArg := m.Zero().Multiply(cMinus1, m.Zero().Multiply(c.ElligatorS, X))
	zArg = m.Zero().Multiply(zArg, onePlusX)
	zArg = m.Zero().Multiply(zArg, x)
	zArg = m.Zero().Multiply(zArg, X2plusCInv2)
	z := m.FromInt64(int64(zArg.Legendre()))

	u := m.Zero().Multiply(z, X)
	oneMinusU := m.Zero().Subtract(m.One(), u)
	onePlusU := m.Zero().Add(m.One(), u)
	t := m.Zero().Multiply(oneMinusU, onePlusU.Invert())

	return t.Abs(), nil
}

// Elligator1CanEncode reports whether p has a pre-image under
// Elligator1Decode, per spec.md §4.5:
//
//	y+1 != 0; (1+e*r)^2-1 is a quadratic residue; and if e*r = -2,
//	additionally x = 2*s*(c-1)*legendre(c)/r.
func Elligator1CanEncode(p *Edwards) bool {
	c := p.Curve
	m := c.Field
	x, y := p.Clone().Affine()

	onePlusY := m.Zero().Add(m.One(), y)
	if onePlusY.IsZero() == 1 {
		return false
	}

	yMinus1 := m.Zero().Subtract(y, m.One())
	e := m.Zero().Multiply(yMinus1, m.Zero().MulSmall(onePlusY, 2).Invert())
	eR := m.Zero().Multiply(e, c.ElligatorR)
	onePlusER := m.Zero().Add(m.One(), eR)
	radicand := m.Zero().Subtract(m.Zero().Square(onePlusER), m.One())
	if radicand.Legendre() == -1 {
		return false
	}

	negTwo := m.FromInt64(-2)
	if eR.Equal(negTwo) == 1 {
		cMinus1 := m.Zero().Subtract(c.ElligatorC, m.One())
		lc := m.FromInt64(int64(c.ElligatorC.Legendre()))
		rhs := m.Zero().MulSmall(m.Zero().Multiply(c.ElligatorS, cMinus1), 2)
		rhs = m.Zero().Multiply(rhs, lc)
		rhs = m.Zero().Multiply(rhs, c.ElligatorR.Invert())
		if x.Equal(rhs) != 1 {
			return false
		}
	}

	return true
}
