package field

import "math/bits"

// Add sets the receiver to a+b and returns it.
func (e *Element) Add(a, b *Element) *Element {
	a.requireSameField(b)
	e.requireSameModulusOrAdopt(a)
	e.limbs = a.m.reduce(addVar(a.limbs, b.limbs))
	return e
}

// Subtract sets the receiver to a-b and returns it.
func (e *Element) Subtract(a, b *Element) *Element {
	a.requireSameField(b)
	e.requireSameModulusOrAdopt(a)
	nb := a.m.reduce(subVar(a.m.p, b.limbs))
	e.limbs = a.m.reduce(addVar(a.limbs, nb))
	return e
}

// Negate sets the receiver to -a and returns it.
func (e *Element) Negate(a *Element) *Element {
	e.requireSameModulusOrAdopt(a)
	e.limbs = a.m.reduce(subVar(a.m.p, a.limbs))
	return e
}

// Multiply sets the receiver to a*b and returns it.
func (e *Element) Multiply(a, b *Element) *Element {
	a.requireSameField(b)
	e.requireSameModulusOrAdopt(a)
	e.limbs = a.m.reduce(mulVar(a.limbs, b.limbs))
	return e
}

// Square sets the receiver to a^2 and returns it.
func (e *Element) Square(a *Element) *Element {
	return e.Multiply(a, a)
}

// MulSmall sets the receiver to a*n, for a small public signed integer n,
// and returns it.
func (e *Element) MulSmall(a *Element, n int64) *Element {
	e.requireSameModulusOrAdopt(a)
	if n < 0 {
		e.limbs = a.m.reduce(mulSmallVar(a.limbs, uint64(-n)))
		return e.Negate(e)
	}
	e.limbs = a.m.reduce(mulSmallVar(a.limbs, uint64(n)))
	return e
}

// DivSmall sets the receiver to a/n, for a small public nonzero integer n,
// via multiplication by n's modular inverse.
func (e *Element) DivSmall(a *Element, n int64) *Element {
	inv := a.m.newFromInt64(n).Invert()
	return e.Multiply(a, inv)
}

// mulVar is the schoolbook limb multiplier: O(len(a)*len(b)) 64x64->128
// partial products accumulated via lukechampine.com/uint128, the same
// widening-multiply primitive the teacher uses for its one 128-bit
// computation (p2pool/mempool.GetBlockReward).
func mulVar(a, b []uint64) []uint64 {
	out := make([]uint64, len(a)+len(b))
	for i, av := range a {
		row := mulSmallVar(b, av)
		out = addShifted(out, row, i)
	}
	return out
}

// addShifted adds src into dst starting at limb offset shift, extending
// dst if necessary, and returns the (possibly reallocated) result.
func addShifted(dst, src []uint64, shift int) []uint64 {
	need := shift + len(src)
	if need > len(dst) {
		grown := make([]uint64, need)
		copy(grown, dst)
		dst = grown
	}
	var carry uint64
	for i, sv := range src {
		sum, c0 := bits.Add64(dst[shift+i], sv, carry)
		dst[shift+i] = sum
		carry = c0
	}
	// Propagate any remaining carry for a fixed number of steps (the full
	// remaining width) rather than stopping early once carry hits zero,
	// so this loop's length depends only on the (public) slice lengths
	// involved, never on the (possibly secret) limb values.
	for i := shift + len(src); i < len(dst); i++ {
		sum, c0 := bits.Add64(dst[i], carry, 0)
		dst[i] = sum
		carry = c0
	}
	return dst
}

// reduce folds a wide (possibly more than m.limbs words) non-negative
// value down to the canonical range [0, p), exploiting p = 2^bits - c:
// any bits at or above position `bits` are worth c times as much once
// shifted down, so three fixed folds (always performed, regardless of
// how many are actually needed for a given input width) are enough to
// bring every operand this package produces within two subtractions of
// p. The fold count and subtraction count are fixed by the call site
// (i.e. by which operation called reduce), never by the element's value,
// so this is constant-time with respect to secret field elements.
func (m *Modulus) reduce(wide []uint64) []uint64 {
	w := wide
	for i := 0; i < 3; i++ {
		lo := maskLowBits(w, m.bits)
		hi := shiftRightVar(w, m.bits)
		if len(hi) == 0 {
			w = lo
			continue
		}
		hiC := mulSmallVar(hi, m.c)
		w = addVar(lo, hiC)
	}
	w = trimLen(w, m.limbs+1)
	for i := 0; i < 3; i++ {
		w = condSubP(w, m)
	}
	return trimLen(w, m.limbs)
}

// condSubP subtracts p from w (padded to len(w)) if and only if w >= p,
// selecting branchlessly between w and w-p so the operation takes the
// same path regardless of the comparison's outcome.
func condSubP(w []uint64, m *Modulus) []uint64 {
	pPadded := trimLen(m.p, len(w))
	diff, borrow := subBorrow(w, pPadded)
	// borrow == 1 means w < p, so diff underflowed and is not what we
	// want; select w unchanged in that case, diff otherwise.
	keepMask := uint64(0) - borrow // all-ones if w < p
	useMask := ^keepMask
	out := make([]uint64, len(w))
	for i := range out {
		out[i] = (w[i] & keepMask) | (diff[i] & useMask)
	}
	return out
}

// subBorrow is subVar plus the final borrow-out bit (0 or 1).
func subBorrow(a, b []uint64) (diff []uint64, borrowOut uint64) {
	diff = make([]uint64, len(a))
	var borrow uint64
	for i := range a {
		var bv uint64
		if i < len(b) {
			bv = b[i]
		}
		d, b0 := bits.Sub64(a[i], bv, borrow)
		diff[i] = d
		borrow = b0
	}
	return diff, borrow
}
