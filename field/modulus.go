// Package field implements constant-time prime-field arithmetic for the
// family of primes p = 2^k - c used by the curves this module supports.
//
// A Modulus is an immutable description of one such prime; an Element is a
// residue class modulo a particular Modulus. Two Elements may only be
// combined if they share the same Modulus (by pointer identity) -- callers
// that need to mix fields (there is exactly one per curve) are doing
// something the type system will not catch, so Element's arithmetic
// methods panic on a Modulus mismatch rather than silently producing
// garbage.
package field

import "math/big"

// residueKind distinguishes the two square-root exponentiation chains
// spec.md §4.1 names: p = 3 mod 4 (used by every Edwards curve here) and
// p = 5 mod 8 (used by every Montgomery curve here).
type residueKind int

const (
	residue3Mod4 residueKind = iota
	residue5Mod8
)

// Modulus describes a prime p = 2^Bits - C, and precomputes everything the
// field engine needs to operate modulo it: canonical limb width, the
// fixed exponent chains for Fermat inversion and square root, and (for
// 5-mod-8 primes) a precomputed square root of -1.
type Modulus struct {
	name string

	bits  int
	c     uint64
	limbs int // ceil(bits/64)
	bytes int // ceil(bits/8)

	p []uint64 // canonical little-endian limbs of p, length == limbs

	invExp  *big.Int // p - 2, for Invert via Fermat
	kind    residueKind
	sqrtExp *big.Int // (p+1)/4 for 3-mod-4, (p+3)/8 for 5-mod-8
	halfExp *big.Int // (p-1)/2, for Legendre

	sqrtMinus1 *Element // only set for residue5Mod8 moduli
}

// NewModulus builds the Modulus for p = 2^bits - c, with residue class
// determined by p mod 4 / p mod 8. It panics if neither 3-mod-4 nor
// 5-mod-8 holds, since this module supports no other curve shape.
func NewModulus(name string, bits int, c uint64) *Modulus {
	p := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	p.Sub(p, new(big.Int).SetUint64(c))

	m := &Modulus{
		name:  name,
		bits:  bits,
		c:     c,
		limbs: (bits + 63) / 64,
		bytes: (bits + 7) / 8,
	}
	m.p = bigIntToLimbs(p, m.limbs)

	m.invExp = new(big.Int).Sub(p, big.NewInt(2))
	m.halfExp = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)

	mod4 := new(big.Int).Mod(p, big.NewInt(4))
	mod8 := new(big.Int).Mod(p, big.NewInt(8))
	switch {
	case mod4.Cmp(big.NewInt(3)) == 0:
		m.kind = residue3Mod4
		m.sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
	case mod8.Cmp(big.NewInt(5)) == 0:
		m.kind = residue5Mod8
		m.sqrtExp = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(3)), 3)
	default:
		panic("field: modulus " + name + " is neither 3 mod 4 nor 5 mod 8")
	}

	if m.kind == residue5Mod8 {
		// 2 is a non-residue when p = 5 mod 8, so 2^((p-1)/4) squares to
		// 2^((p-1)/2) = -1. sqrtNonCanonical cannot be used here: its
		// 5-mod-8 branch reads m.sqrtMinus1 itself.
		quarterExp := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2)
		m.sqrtMinus1 = pow(m.newFromInt64(2), quarterExp, expBitLen(quarterExp))
	}

	return m
}

// MustFromDecimal parses a base-10 literal into a canonical field element,
// panicking if the literal is malformed or out of range. It exists for
// curve-table construction, where orders and other wide constants are
// pasted from the curve's defining literature as decimal strings rather
// than built up arithmetically.
func (m *Modulus) MustFromDecimal(s string) *Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: malformed decimal literal " + s)
	}
	if v.Sign() < 0 || v.BitLen() > m.bits {
		panic("field: decimal literal " + s + " out of range for " + m.name)
	}
	padded := make([]byte, m.bytes)
	b := v.Bytes()
	copy(padded[m.bytes-len(b):], b)
	e, err := m.SetBytes(padded)
	if err != nil {
		panic(err)
	}
	return e
}

// HalfP returns the canonical field element equal to the integer
// (p-1)/2, the upper bound of the canonical range Decaf encodings must
// fall within (spec.md §4.3's point-validation rule).
func (m *Modulus) HalfP() *Element {
	return m.Zero().DivSmall(m.Zero().Negate(m.One()), 2)
}

// Is3Mod4 reports whether p = 3 (mod 4), the residue class Elligator-1
// requires.
func (m *Modulus) Is3Mod4() bool { return m.kind == residue3Mod4 }

// Is5Mod8 reports whether p = 5 (mod 8), the residue class Elligator-2
// requires.
func (m *Modulus) Is5Mod8() bool { return m.kind == residue5Mod8 }

// Bits returns the bit length k of p = 2^k - c.
func (m *Modulus) Bits() int { return m.bits }

// Bytes returns ceil(k/8), the canonical big-endian encoding length.
func (m *Modulus) Bytes() int { return m.bytes }

// Name returns the modulus' human-readable label, e.g. "2^521-1".
func (m *Modulus) Name() string { return m.name }

// bigIntToLimbs converts a non-negative big.Int to little-endian 64-bit
// limbs. It goes through Bytes() rather than Bits() so the result does not
// depend on the platform's big.Word size.
func bigIntToLimbs(v *big.Int, limbs int) []uint64 {
	out := make([]uint64, limbs)
	b := v.Bytes() // big-endian
	for i, j := 0, len(b)-1; j >= 0 && i < limbs*8; i, j = i+1, j-1 {
		out[i/8] |= uint64(b[j]) << (uint(i%8) * 8)
	}
	return out
}

func limbsToBigInt(limbs []uint64) *big.Int {
	v := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(limbs[i]))
	}
	return v
}
