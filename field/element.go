package field

// Element is a residue class modulo some Modulus. The zero value is
// usable only as the receiver of Set or an arithmetic method, which gives
// it the operand's Modulus; construct operands with Modulus.Zero,
// Modulus.One, or Modulus.SetBytes. Elements are value-like: Clone gives an independent
// copy, and every arithmetic method writes its result into the receiver
// and also returns it, so calls chain the way the teacher's
// curve.Field[F] contract (monero/crypto/curve/field.go) expects.
type Element struct {
	m     *Modulus
	limbs []uint64 // length m.limbs, canonical range [0, p) between calls
}

func (m *Modulus) newElement() *Element {
	return &Element{m: m, limbs: make([]uint64, m.limbs)}
}

// Zero returns the additive identity of the field.
func (m *Modulus) Zero() *Element {
	return m.newElement()
}

// One returns the multiplicative identity of the field.
func (m *Modulus) One() *Element {
	e := m.newElement()
	e.limbs[0] = 1
	return e
}

// FromInt64 returns the element representing a small public integer. It
// exists for curve-table construction, where coefficients, cofactors, and
// the like are always small enough to fit an int64 -- anything wider goes
// through SetBytes/SetWideBytes instead.
func (m *Modulus) FromInt64(v int64) *Element {
	return m.newFromInt64(v)
}

func (m *Modulus) newFromInt64(v int64) *Element {
	e := m.newElement()
	if v >= 0 {
		e.limbs[0] = uint64(v)
		return e
	}
	neg := m.newElement()
	neg.limbs[0] = uint64(-v)
	return m.Zero().Subtract(e, neg)
}

func (e *Element) requireSameField(o *Element) {
	if e.m != o.m {
		panic("field: operands belong to different moduli")
	}
}

// Modulus returns the field this element belongs to.
func (e *Element) Modulus() *Modulus { return e.m }

// Set copies a into the receiver and returns the receiver.
func (e *Element) Set(a *Element) *Element {
	e.requireSameModulusOrAdopt(a)
	copy(e.limbs, a.limbs)
	return e
}

// requireSameModulusOrAdopt lets a freshly zero-valued Element (e.g.
// &Element{}) adopt its Modulus from the
// first operand it is Set from, while still panicking on a genuine
// cross-field mismatch.
func (e *Element) requireSameModulusOrAdopt(a *Element) {
	if e.m == nil {
		e.m = a.m
		if e.limbs == nil {
			e.limbs = make([]uint64, a.m.limbs)
		}
	} else if e.m != a.m {
		panic("field: operands belong to different moduli")
	}
}

// Clone returns an independent copy of the receiver.
func (e *Element) Clone() *Element {
	return &Element{m: e.m, limbs: cloneLimbs(e.limbs)}
}

// IsZero returns 1 if the element is zero, 0 otherwise, in time
// independent of the element's value.
func (e *Element) IsZero() int {
	var acc uint64
	for _, w := range e.limbs {
		acc |= w
	}
	return int(1 - ctNeqToBit(acc))
}

// ctNeqToBit returns 1 if w != 0, 0 if w == 0, branchless.
func ctNeqToBit(w uint64) uint64 {
	// (w | -w) has its top bit set iff w != 0.
	nw := (^w) + 1
	return (w | nw) >> 63
}

// Equal returns 1 if the two elements (reduced to canonical range) are
// equal, 0 otherwise, in time independent of their values.
func (e *Element) Equal(o *Element) int {
	e.requireSameField(o)
	diff := e.Clone().Subtract(e, o)
	return diff.IsZero()
}

// mask zeroes every limb when bit == 0, and leaves them unchanged when
// bit == 1. bit must be 0 or 1; any other value is undefined.
func (e *Element) mask(bit int) *Element {
	m := uint64(0) - uint64(bit&1)
	for i := range e.limbs {
		e.limbs[i] &= m
	}
	return e
}

// or bitwise-ORs o into the receiver, in place.
func (e *Element) or(o *Element) *Element {
	e.requireSameField(o)
	for i := range e.limbs {
		e.limbs[i] |= o.limbs[i]
	}
	return e
}

// Select sets the receiver to a if bit == 1, or to b if bit == 0, in time
// independent of bit.
func (e *Element) Select(a, b *Element, bit int) *Element {
	e.requireSameField(a)
	e.requireSameField(b)
	ta := a.Clone().mask(bit)
	tb := b.Clone().mask(1 - bit)
	e.Set(ta).or(tb)
	return e
}

// Swap exchanges the receiver and o in place when bit == 1, and leaves
// both unchanged when bit == 0, in time independent of bit. This is the
// primitive the Montgomery ladder's conditional swap (spec.md §4.4) is
// built from.
func (e *Element) Swap(o *Element, bit int) {
	e.requireSameField(o)
	m := uint64(0) - uint64(bit&1)
	for i := range e.limbs {
		d := (e.limbs[i] ^ o.limbs[i]) & m
		e.limbs[i] ^= d
		o.limbs[i] ^= d
	}
}

// IsNegative reports the element's sign bit: the parity of its canonical
// representative. This is the convention spec.md §4.3's Decaf procedure
// and §4.6's Elligator-2 "canonical parity bit" rely on, matching the
// sign convention FiloSottile's edwards25519.Element.IsNegative and
// bytemare's decaf448 DecafElement.IsNegative use for the same purpose.
func (e *Element) IsNegative() int {
	return int(e.limbs[0] & 1)
}

// Abs returns |e|: e unchanged if it is even (IsNegative() == 0), or -e
// if it is odd, so the result is always the even representative of the
// pair {e, -e}.
func (e *Element) Abs() *Element {
	neg := e.Clone().Negate(e)
	return e.Select(neg, e, e.IsNegative())
}

// Cmp compares the canonical values of e and o, returning -1, 0, or 1.
// Unlike the rest of this package, Cmp is variable-time: it exists for
// public-input range checks (e.g. a Decaf encoding's canonical-range
// requirement), never for comparing secret-dependent values.
func (e *Element) Cmp(o *Element) int {
	e.requireSameField(o)
	ce := e.m.reduce(trimLen(e.limbs, e.m.limbs+1))
	co := o.m.reduce(trimLen(o.limbs, o.m.limbs+1))
	return cmpVar(ce, co)
}

// String renders the element's canonical value in decimal, for debugging
// and test failure messages only -- never on a secret-dependent path.
func (e *Element) String() string {
	return limbsToBigInt(e.limbs).String()
}
