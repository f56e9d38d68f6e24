package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// Elligator2Decode maps a field element r to an affine Montgomery point
// (x, y), per spec.md §4.6. It is defined only for curves with
// p = 5 mod 8 and B = 1 (c.HasElligator2); callers are expected to have
// checked that, the same way the group facade only wires this map to
// qualifying curves.
//
//	v = -A/(1+2*r^2)
//	e = legendre((v^2+A*v+1)*v)
//	x = e*v + (e-1)*A/2
//	y = -e*sqrt((x^2+A*x+1)*x)
//
// 1+2*r^2 = 0 is the map's exceptional input and is rejected with
// ErrInvalidHashInput.
func Elligator2Decode(c *curve.Params, r *field.Element) (x, y *field.Element, err error) {
	m := c.Field
	A := c.MontgomeryA

	twoR2 := m.Zero().MulSmall(m.Zero().Square(r), 2)
	denom := m.Zero().Add(m.One(), twoR2)
	if denom.IsZero() == 1 {
		return nil, nil, ErrInvalidHashInput
	}

	v := m.Zero().Multiply(m.Zero().Negate(A), denom.Invert())

	v2 := m.Zero().Square(v)
	Av := m.Zero().Multiply(A, v)
	vInner := m.Zero().Add(m.Zero().Add(v2, Av), m.One())
	e := m.FromInt64(int64(m.Zero().Multiply(vInner, v).Legendre()))

	eMinus1 := m.Zero().Subtract(e, m.One())
	halfA := m.Zero().DivSmall(A, 2)
	x = m.Zero().Add(m.Zero().Multiply(e, v), m.Zero().Multiply(eMinus1, halfA))

	x2 := m.Zero().Square(x)
	Ax := m.Zero().Multiply(A, x)
	xInner := m.Zero().Add(m.Zero().Add(x2, Ax), m.One())
	xInner = m.Zero().Multiply(xInner, x)
	y = m.Zero().Multiply(m.Zero().Negate(e), m.Zero().Sqrt(xInner))

	return x, y, nil
}

// Elligator2Encode maps an affine Montgomery point (x, y) to a
// pre-image r, per spec.md §4.6. It returns ErrEncodeRefused when
// canEncode(x, y) is false.
//
//	if y is a quadratic residue: r = sqrt(x / (-2*(x+A)))
//	else:                        r = sqrt(-(x+A) / (2*x))
//
// Both candidates are computed and combined with Select rather than a
// data-dependent branch, per spec.md §4.6's "implemented by mask/or on
// both candidates" note.
func Elligator2Encode(c *curve.Params, x, y *field.Element) (*field.Element, error) {
	if !Elligator2CanEncode(c, x, y) {
		return nil, ErrEncodeRefused
	}
	m := c.Field
	A := c.MontgomeryA

	xPlusA := m.Zero().Add(x, A)
	cand1 := m.Zero().Sqrt(m.Zero().Multiply(x, m.Zero().MulSmall(xPlusA, -2).Invert()))
	cand2 := m.Zero().Sqrt(m.Zero().Multiply(m.Zero().Negate(xPlusA), m.Zero().MulSmall(x, 2).Invert()))

	isQR := 0
	if y.Legendre() == 1 {
		isQR = 1
	}
	return m.Zero().Select(cand1, cand2, isQR), nil
}

// Elligator2CanEncode reports whether the affine Montgomery point
// (x, y) has a pre-image under Elligator2Decode, per spec.md §4.6:
//
//	x != -A; not both y = 0 and x != 0; -2*x*(x+A) is a quadratic
//	residue; and y = legendre(y)*sqrt(x^3+A*x^2+x).
func Elligator2CanEncode(c *curve.Params, x, y *field.Element) bool {
	m := c.Field
	A := c.MontgomeryA

	negA := m.Zero().Negate(A)
	if x.Equal(negA) == 1 {
		return false
	}
	if y.IsZero() == 1 && x.IsZero() != 1 {
		return false
	}

	xPlusA := m.Zero().Add(x, A)
	negTwoXxA := m.Zero().MulSmall(m.Zero().Multiply(x, xPlusA), -2)
	if negTwoXxA.Legendre() == -1 {
		return false
	}

	x2 := m.Zero().Square(x)
	Ax2 := m.Zero().Multiply(A, x2)
	x3 := m.Zero().Multiply(x2, x)
	rhsInner := m.Zero().Add(m.Zero().Add(x3, Ax2), x)
	rhs := m.Zero().Multiply(m.FromInt64(int64(y.Legendre())), m.Zero().Sqrt(rhsInner))
	if y.Equal(rhs) != 1 {
		return false
	}

	return true
}
