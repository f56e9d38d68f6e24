package field

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Little-endian, variable-length uint64 limb helpers used by Modulus and
// Element. None of these branch on the numeric value of their inputs --
// only on lengths, which are always determined by the calling code path
// (curve bit width, operation shape) and never by secret data.

func cloneLimbs(a []uint64) []uint64 {
	out := make([]uint64, len(a))
	copy(out, a)
	return out
}

func trimLen(a []uint64, n int) []uint64 {
	out := make([]uint64, n)
	copy(out, a)
	return out
}

// addVar returns a+b as a slice one word longer than the longer operand.
func addVar(a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		sum, c0 := bits.Add64(av, bv, carry)
		out[i] = sum
		carry = c0
	}
	out[n] = carry
	return out
}

// subVar returns a-b (requires a>=b as unsigned multi-limb integers),
// padded/truncated to len(a) words. The caller is responsible for ensuring
// a >= b; underflow wraps silently, matching two's-complement semantics,
// which is what the modular-reduction callers rely on.
func subVar(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	var borrow uint64
	for i := range a {
		var bv uint64
		if i < len(b) {
			bv = b[i]
		}
		d, b0 := bits.Sub64(a[i], bv, borrow)
		out[i] = d
		borrow = b0
	}
	return out
}

// cmpVar returns -1, 0, +1 comparing a and b as unsigned integers of
// possibly-unequal limb length.
func cmpVar(a, b []uint64) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av > bv {
			return 1
		}
		if av < bv {
			return -1
		}
	}
	return 0
}

// mulSmallVar multiplies a variable-length limb slice by a single 64-bit
// word, returning a slice one word longer.
func mulSmallVar(a []uint64, c uint64) []uint64 {
	out := make([]uint64, len(a)+1)
	var carry uint128.Uint128
	for i, av := range a {
		p := uint128.From64(av).Mul64(c)
		p = p.Add(carry)
		out[i] = p.Lo
		carry = uint128.From64(p.Hi)
	}
	out[len(a)] = carry.Lo
	return out
}

// shiftRightVar returns words>>n, trimmed to the minimum length needed to
// hold the result (which may be the empty slice).
func shiftRightVar(words []uint64, n int) []uint64 {
	wordShift := n / 64
	bitShift := uint(n % 64)
	if wordShift >= len(words) {
		return nil
	}
	src := words[wordShift:]
	out := make([]uint64, len(src))
	if bitShift == 0 {
		copy(out, src)
		return out
	}
	for i := range src {
		lo := src[i] >> bitShift
		var hi uint64
		if i+1 < len(src) {
			hi = src[i+1] << (64 - bitShift)
		}
		out[i] = lo | hi
	}
	return out
}

// maskLowBits returns the low k bits of words, as ceil(k/64) limbs.
func maskLowBits(words []uint64, k int) []uint64 {
	limbs := (k + 63) / 64
	out := make([]uint64, limbs)
	n := limbs
	if len(words) < n {
		n = len(words)
	}
	copy(out, words[:n])
	if bitIdx := uint(k % 64); bitIdx != 0 && limbs > 0 {
		out[limbs-1] &= (uint64(1) << bitIdx) - 1
	}
	return out
}

// isZeroVar reports whether every limb is zero. Used only on public
// structural values (bit lengths), never on secret field elements --
// see Element.IsZero for the constant-time equivalent over secret data.
func isZeroVar(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}
