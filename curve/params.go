// Package curve holds the immutable per-curve constant tables spec.md
// treats as a thin, out-of-scope collaborator ("any implementer
// reproducing the core interfaces will instantiate these by table") --
// the curve-parameter catalogue itself is not the hard part; package
// point and package group are.
package curve

import "github.com/emc2/safecurves-go/field"

// Params is the immutable record spec.md §3 names: a field modulus, the
// twisted-Edwards and birationally-equivalent Montgomery coefficients, a
// base point of the prime-order subgroup, the curve's cofactor and prime
// subgroup order, and the three derived Elligator-1 parameters.
//
// A Params value is shared (by pointer) across every Point and Group built
// over that curve; it carries no mutable state, so sharing it needs no
// synchronization.
type Params struct {
	Name string

	Field *field.Modulus

	// Twisted Edwards: a*x^2 + y^2 = 1 + d*x^2*y^2.
	EdwardsA *field.Element
	EdwardsD *field.Element

	// Montgomery: v^2 = u^3 + A*u^2 + B*u, birationally equivalent to the
	// Edwards form above via A = 2*(a+d)/(a-d), B = 4/(a-d).
	MontgomeryA *field.Element
	MontgomeryB *field.Element

	// LadderConst is (MontgomeryA+2)/4, the constant spec.md §4.4's
	// ladder step consumes directly.
	LadderConst *field.Element

	Cofactor   int
	PrimeOrder *field.Element // order n of the prime-order subgroup, mod p

	// BaseEdwardsX, BaseEdwardsY are the Edwards affine coordinates of the
	// base point of the prime-order subgroup.
	BaseEdwardsX *field.Element
	BaseEdwardsY *field.Element

	// Elligator-1 parameters, derived from d at construction time per
	// spec.md §3's formulas -- never hand-entered, so they can't drift
	// from d. Only meaningful when HasElligator1.
	ElligatorS *field.Element
	ElligatorR *field.Element
	ElligatorC *field.Element

	// HasElligator1 / HasElligator2 record which hash-to-curve family this
	// curve's (p mod 4, p mod 8) residue class supports, per spec.md
	// §4.5/§4.6's domain restrictions: Elligator-1 needs p = 3 mod 4,
	// Elligator-2 needs p = 5 mod 8 and B = 1.
	HasElligator1 bool
	HasElligator2 bool
}

// edwardsParams is the small set of curated, per-curve inputs a table
// entry supplies; everything else in Params is derived from these.
type edwardsParams struct {
	name     string
	m        *field.Modulus
	a, d     int64 // small enough for every curve this module tables
	cofactor int
	baseX    int64  // -1 means "derive the smallest valid base point"
	order    string // decimal literal, or "" if not independently verified
}

// newEdwardsCurve builds a full Params from a curated twisted-Edwards
// definition, deriving the Montgomery form, the ladder constant, the
// Elligator-1 triple, and (when baseX is not given) a base point, exactly
// as spec.md §3 specifies rather than by hand-transcribing derived
// values that could drift out of sync with (a, d).
func newEdwardsCurve(ep edwardsParams) *Params {
	p := buildParams(ep)

	if ep.baseX >= 0 {
		p.BaseEdwardsX = p.Field.FromInt64(ep.baseX)
		p.BaseEdwardsY = edwardsYForX(p, p.BaseEdwardsX)
	} else {
		p.BaseEdwardsX, p.BaseEdwardsY = deriveBasePoint(p)
	}

	return p
}

// newEdwardsCurveWithMontgomeryBase is newEdwardsCurve, but the base
// point is named by its Montgomery u-coordinate (as spec.md's M-383
// scenario does) instead of its Edwards x. v is recovered from the
// Montgomery curve equation and (u, v) converted to Edwards coordinates
// through the same birational map package point uses for conversion.
func newEdwardsCurveWithMontgomeryBase(ep edwardsParams, montU int64) *Params {
	p := buildParams(ep)
	m := p.Field

	u := m.FromInt64(montU)
	u2 := m.Zero().Square(u)
	u3 := m.Zero().Multiply(u2, u)
	rhs := m.Zero().Add(u3, m.Zero().Multiply(p.MontgomeryA, u2))
	rhs = m.Zero().Add(rhs, m.Zero().Multiply(p.MontgomeryB, u))
	v := m.Zero().Sqrt(rhs).Abs()

	// x = u/v, y = (u-1)/(u+1), per spec.md §4.3's birational map.
	p.BaseEdwardsX = m.Zero().Multiply(u, v.Invert())
	uMinus1 := m.Zero().Subtract(u, m.One())
	uPlus1 := m.Zero().Add(u, m.One())
	p.BaseEdwardsY = m.Zero().Multiply(uMinus1, uPlus1.Invert())

	return p
}

// buildParams computes every curve constant that does not depend on the
// choice of base point.
func buildParams(ep edwardsParams) *Params {
	m := ep.m
	a := m.FromInt64(ep.a)
	d := m.FromInt64(ep.d)

	amd := m.Zero().Subtract(a, d) // a - d
	apd := m.Zero().Add(a, d)      // a + d
	amdInv := amd.Invert()

	montA := m.Zero().Multiply(apd, m.FromInt64(2))
	montA = montA.Multiply(montA, amdInv)

	montB := m.Zero().Multiply(m.FromInt64(4), amdInv)

	ladderConst := m.Zero().Add(montA, m.FromInt64(2))
	ladderConst = m.Zero().Multiply(ladderConst, m.FromInt64(4).Invert())

	s, r, c := elligator1Params(m, d)

	p := &Params{
		Name:          ep.name,
		Field:         m,
		EdwardsA:      a,
		EdwardsD:      d,
		MontgomeryA:   montA,
		MontgomeryB:   montB,
		LadderConst:   ladderConst,
		Cofactor:      ep.cofactor,
		ElligatorS:    s,
		ElligatorR:    r,
		ElligatorC:    c,
		HasElligator1: true,
	}

	if ep.order != "" {
		p.PrimeOrder = m.MustFromDecimal(ep.order)
	}

	return p
}

// edwardsYForX solves the curve equation for y given x, returning the
// even (IsNegative()==0) canonical root: y^2 = (1 - a*x^2) / (1 - d*x^2).
func edwardsYForX(p *Params, x *field.Element) *field.Element {
	m := p.Field
	x2 := m.Zero().Square(x)
	num := m.Zero().Subtract(m.One(), m.Zero().Multiply(p.EdwardsA, x2))
	den := m.Zero().Subtract(m.One(), m.Zero().Multiply(p.EdwardsD, x2))
	ratio := m.Zero().Multiply(num, den.Invert())
	y := m.Zero().Sqrt(ratio)
	return y.Abs()
}

// deriveBasePoint produces a nothing-up-my-sleeve generator of the
// prime-order subgroup: the smallest x >= 2 for which the curve equation
// has a solution, cofactor-cleared by repeated affine doubling (every
// cofactor this module tables is a power of two, so that is exactly
// log2(cofactor) doublings -- no scalar multiplier is needed, and so no
// dependency on package point's ladder).
func deriveBasePoint(p *Params) (x, y *field.Element) {
	m := p.Field
	for candidate := int64(2); candidate < 64; candidate++ {
		cx := m.FromInt64(candidate)
		x2 := m.Zero().Square(cx)
		num := m.Zero().Subtract(m.One(), m.Zero().Multiply(p.EdwardsA, x2))
		den := m.Zero().Subtract(m.One(), m.Zero().Multiply(p.EdwardsD, x2))
		if den.IsZero() == 1 {
			continue
		}
		ratio := m.Zero().Multiply(num, den.Invert())
		if ratio.Legendre() != 1 {
			continue
		}
		cy := m.Zero().Sqrt(ratio).Abs()

		px, py := cx, cy
		for h := p.Cofactor; h > 1; h /= 2 {
			px, py = affineDouble(p, px, py)
		}
		return px, py
	}
	panic("curve: no small base point candidate found for " + p.Name)
}

// affineDouble doubles an affine twisted-Edwards point using the same
// unified addition law affineAdd implements, specialized to P+P.
func affineDouble(p *Params, x, y *field.Element) (*field.Element, *field.Element) {
	return affineAdd(p, x, y, x, y)
}

// affineAdd is the textbook unified twisted-Edwards affine addition law:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
//
// It is used only for the one-time, public base-point derivation above --
// the hot-path point arithmetic in package point uses projective/extended
// coordinates and never calls this.
func affineAdd(p *Params, x1, y1, x2, y2 *field.Element) (*field.Element, *field.Element) {
	m := p.Field

	x1y2 := m.Zero().Multiply(x1, y2)
	y1x2 := m.Zero().Multiply(y1, x2)
	y1y2 := m.Zero().Multiply(y1, y2)
	x1x2 := m.Zero().Multiply(x1, x2)

	dProd := m.Zero().Multiply(p.EdwardsD, m.Zero().Multiply(x1x2, y1y2))

	xNum := m.Zero().Add(x1y2, y1x2)
	xDen := m.Zero().Add(m.One(), dProd)

	yNum := m.Zero().Subtract(y1y2, m.Zero().Multiply(p.EdwardsA, x1x2))
	yDen := m.Zero().Subtract(m.One(), dProd)

	x3 := m.Zero().Multiply(xNum, xDen.Invert())
	y3 := m.Zero().Multiply(yNum, yDen.Invert())
	return x3, y3
}

// elligator1Params derives (s, r, c) from d exactly per spec.md §3:
//
//	c = ((-d)^(1/2) - 1) / ((-d)^(1/2) + 1)
//	s = (2/c)^(1/2)
//	r = c + 1/c
func elligator1Params(m *field.Modulus, d *field.Element) (s, r, c *field.Element) {
	negD := m.Zero().Negate(d)
	sqrtNegD := m.Zero().Sqrt(negD)

	cNum := m.Zero().Subtract(sqrtNegD, m.One())
	cDen := m.Zero().Add(sqrtNegD, m.One())
	c = m.Zero().Multiply(cNum, cDen.Invert())

	twoOverC := m.Zero().Multiply(m.FromInt64(2), c.Invert())
	s = m.Zero().Sqrt(twoOverC)

	r = m.Zero().Add(c, c.Invert())
	return s, r, c
}
