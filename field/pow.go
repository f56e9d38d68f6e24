package field

import "math/big"

// pow raises base to a fixed, public exponent via square-and-multiply,
// iterating MSB to LSB over exactly bitLen bits. Every call with a given
// (exponent, bitLen) pair performs the exact same sequence of squarings
// and multiplications regardless of base's value, which is what makes
// Fermat inversion and the fixed-chain square roots in spec.md §4.1
// constant-time with respect to the (secret) base -- the only thing that
// varies between calls is the exponent, and the exponent is always one of
// a handful of curve-fixed public constants (p-2, (p+1)/4, (p+3)/8,
// (p-1)/2), never secret data.
func pow(base *Element, exp *big.Int, bitLen int) *Element {
	m := base.m
	acc := m.One()
	b := base.Clone()
	for i := bitLen - 1; i >= 0; i-- {
		acc.Square(acc)
		if exp.Bit(i) == 1 {
			acc.Multiply(acc, b)
		}
	}
	return acc
}

func expBitLen(exp *big.Int) int {
	return exp.BitLen()
}

// Invert returns a^-1 via Fermat's little theorem (a^(p-2)). Invert(0)
// returns 0, per spec.md §4.1's stated convention -- callers that care
// must check IsZero first.
func (e *Element) Invert() *Element {
	return pow(e, e.m.invExp, expBitLen(e.m.invExp))
}

// sqrtNonCanonical computes a square root candidate using the curve's
// fixed exponent chain, without verifying the input was actually a
// quadratic residue -- callers must check Legendre first, per spec.md
// §4.1's failure semantics ("sqrt of a non-residue yields an unspecified
// field element").
func (e *Element) sqrtNonCanonical() *Element {
	m := e.m
	cand := pow(e, m.sqrtExp, expBitLen(m.sqrtExp))
	if m.kind == residue3Mod4 {
		return cand
	}
	// 5 mod 8: cand^2 is ±e. If it's -e, multiply by sqrt(-1) to correct.
	sq := cand.Clone().Square(cand)
	matches := sq.Equal(e)
	corrected := cand.Clone().Multiply(cand, m.sqrtMinus1)
	return cand.Select(cand, corrected, matches)
}

// Sqrt sets the receiver to a square root of a, per the curve's residue
// class, and returns it. The caller is responsible for having verified
// a.Legendre() != -1; see sqrtNonCanonical.
func (e *Element) Sqrt(a *Element) *Element {
	return e.Set(a.sqrtNonCanonical())
}

// Legendre returns -1, 0, or +1 according to whether e is a non-residue,
// zero, or a quadratic residue modulo p.
func (e *Element) Legendre() int {
	if e.IsZero() == 1 {
		return 0
	}
	r := pow(e, e.m.halfExp, expBitLen(e.m.halfExp))
	if r.Equal(e.m.One()) == 1 {
		return 1
	}
	return -1
}
