package point

import "github.com/emc2/safecurves-go/field"

// MulX computes the Montgomery x-coordinate of k*P via the constant-time
// Montgomery ladder spec.md §4.4 specifies. kBits is processed
// most-significant first; its length is fixed by the caller (normally
// the curve's field bit length, per the "fixed function of the curve's
// prime-order bit length, not of k's magnitude" requirement) rather than
// by k's own magnitude, so no branch, memory access, or early exit here
// depends on k.
//
// This mirrors the teacher's curve25519.MontgomeryUnclampedScalarMult
// ladder loop (cswap via XOR-masked exchange, one ladder step per bit, a
// final swap conditioned on the last bit processed), only
// generalized from a fixed 255-bit/x25519-specific chain to an arbitrary
// field and curve via the passed-in LadderConst.
func MulX(p *Montgomery, kBits []byte, bitLen int) *Montgomery {
	c := p.Curve
	m := c.Field

	x1 := p.X.Clone()

	x2 := m.One()
	z2 := m.Zero()
	x3 := p.X.Clone()
	z3 := m.One()

	swap := 0
	for pos := bitLen - 1; pos >= 0; pos-- {
		b := int((kBits[pos/8] >> uint(pos%8)) & 1)
		swap ^= b
		x2.Swap(x3, swap)
		z2.Swap(z3, swap)
		swap = b

		x2, z2, x3, z3 = ladderStep(m, c.LadderConst, x1, x2, z2, x3, z3)
	}
	x2.Swap(x3, swap)
	z2.Swap(z3, swap)

	return &Montgomery{Curve: c, X: x2, Z: z2}
}

// ladderStep computes one iteration of the differential add-and-double
// ladder step spec.md §4.3 specifies:
//
//	A = X_P+Z_P; B = X_P-Z_P; C = X_Q+Z_Q; D = X_Q-Z_Q
//	DA = D*A; CB = C*B
//	X_{P+Q} = Z_{P-Q}*(DA+CB)^2; Z_{P+Q} = X_{P-Q}*(DA-CB)^2
//	AA = A^2; BB = B^2; E = AA-BB
//	X_{2P} = AA*BB; Z_{2P} = E*(BB + ladderConst*E)
//
// with P = (x2,z2), Q = (x3,z3), P-Q = (x1,1) (the ladder's invariant:
// the difference between the two running values is always the original
// input point).
func ladderStep(m *field.Modulus, ladderConst, x1, x2, z2, x3, z3 *field.Element) (nx2, nz2, nx3, nz3 *field.Element) {
	A := m.Zero().Add(x2, z2)
	B := m.Zero().Subtract(x2, z2)
	C := m.Zero().Add(x3, z3)
	D := m.Zero().Subtract(x3, z3)

	DA := m.Zero().Multiply(D, A)
	CB := m.Zero().Multiply(C, B)

	sum := m.Zero().Add(DA, CB)
	diff := m.Zero().Subtract(DA, CB)

	// P-Q is always the fixed input point (x1 : 1), the ladder's
	// invariant difference, so Z_{P-Q} = 1 and X_{P-Q} = x1.
	nx3 = m.Zero().Square(sum)
	nz3 = m.Zero().Multiply(x1, m.Zero().Square(diff))

	AA := m.Zero().Square(A)
	BB := m.Zero().Square(B)
	E := m.Zero().Subtract(AA, BB)

	nx2 = m.Zero().Multiply(AA, BB)
	inner := m.Zero().Add(BB, m.Zero().Multiply(ladderConst, E))
	nz2 = m.Zero().Multiply(E, inner)

	return nx2, nz2, nx3, nz3
}
