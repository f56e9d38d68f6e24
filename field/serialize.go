package field

import "fmt"

// Bytes returns the element's canonical big-endian encoding, Modulus.Bytes()
// long, top bits zero-padded -- the encoding named in spec.md §6.
func (e *Element) Bytes() []byte {
	canon := e.m.reduce(trimLen(e.limbs, e.m.limbs+1))
	out := make([]byte, e.m.bytes)
	for i := 0; i < e.m.bytes; i++ {
		limb := canon[i/8]
		out[e.m.bytes-1-i] = byte(limb >> (uint(i%8) * 8))
	}
	return out
}

// SetBytes decodes a canonical big-endian encoding produced by Bytes.
// It rejects any encoding representing a value >= p, per spec.md §6's
// "non-canonical encodings must be rejected".
func (m *Modulus) SetBytes(b []byte) (*Element, error) {
	if len(b) != m.bytes {
		return nil, fmt.Errorf("field: invalid encoding length %d, want %d", len(b), m.bytes)
	}
	limbs := make([]uint64, m.limbs)
	for i := 0; i < m.bytes; i++ {
		limbs[i/8] |= uint64(b[m.bytes-1-i]) << (uint(i%8) * 8)
	}
	if cmpVar(limbs, m.p) >= 0 {
		return nil, fmt.Errorf("field: encoding is not canonical (>= p)")
	}
	return &Element{m: m, limbs: limbs}, nil
}

// SetWideBytes decodes an over-length big-endian buffer (e.g. raw hash
// output wider than the field) by reducing it modulo p, for use as an
// Elligator/hash-to-field preimage where the input is not required to be
// already-reduced.
func (m *Modulus) SetWideBytes(b []byte) *Element {
	limbs := make([]uint64, (len(b)+7)/8)
	for i := 0; i < len(b); i++ {
		limbs[i/8] |= uint64(b[len(b)-1-i]) << (uint(i%8) * 8)
	}
	// reduce's fixed three folds only cover inputs up to twice the field's
	// limb width, so fold longer inputs down to that width first. The loop
	// count depends only on len(b).
	for len(limbs) > 2*m.limbs {
		hi := shiftRightVar(limbs, m.bits)
		limbs = addVar(maskLowBits(limbs, m.bits), mulSmallVar(hi, m.c))
	}
	return &Element{m: m, limbs: m.reduce(limbs)}
}
