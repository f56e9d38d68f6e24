package point

import (
	"testing"

	"github.com/emc2/safecurves-go/curve"
)

// scalarMultEdwards computes k*p by textbook double-and-add, MSB first
// over kBytes. It exists only for these tests: the library's own
// scalar multiplication is the constant-time ladder in ladder.go, which
// operates on the x-only Montgomery representation rather than Edwards
// points directly.
func scalarMultEdwards(p *Edwards, kBytes []byte) *Edwards {
	acc := ZeroEdwards(p.Curve)
	for _, byteVal := range kBytes {
		for bit := 7; bit >= 0; bit-- {
			acc.Double(acc)
			if (byteVal>>uint(bit))&1 == 1 {
				acc.Add(acc, p)
			}
		}
	}
	return acc
}

func TestEdwardsNeutralElement(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		zero := ZeroEdwards(c)

		sum := ZeroEdwards(c).Add(g, zero)
		if sum.Equal(g) != 1 {
			t.Errorf("%s: G + 0 != G", c.Name)
		}
		sum2 := ZeroEdwards(c).Add(zero, g)
		if sum2.Equal(g) != 1 {
			t.Errorf("%s: 0 + G != G", c.Name)
		}
	}
}

func TestEdwardsInverse(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		negG := ZeroEdwards(c).Negate(g)
		sum := ZeroEdwards(c).Add(g, negG)
		if sum.IsZero() != 1 {
			t.Errorf("%s: G + (-G) != 0", c.Name)
		}
	}
}

func TestEdwardsDoubleMatchesAdd(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		viaDouble := ZeroEdwards(c).Double(g)
		viaAdd := ZeroEdwards(c).Add(g, g)
		if viaDouble.Equal(viaAdd) != 1 {
			t.Errorf("%s: Double(G) != Add(G, G)", c.Name)
		}
	}
}

func TestEdwardsAssociativitySampled(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		p := scalarMultEdwards(g, []byte{3})
		q := scalarMultEdwards(g, []byte{5})
		r := scalarMultEdwards(g, []byte{7})

		left := ZeroEdwards(c).Add(ZeroEdwards(c).Add(p, q), r)
		right := ZeroEdwards(c).Add(p, ZeroEdwards(c).Add(q, r))
		if left.Equal(right) != 1 {
			t.Errorf("%s: (P+Q)+R != P+(Q+R)", c.Name)
		}
	}
}

func TestScalarIdentities(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		one := scalarMultEdwards(g, []byte{1})
		if one.Equal(g) != 1 {
			t.Errorf("%s: 1*G != G", c.Name)
		}
		zeroMul := scalarMultEdwards(g, []byte{0})
		if zeroMul.IsZero() != 1 {
			t.Errorf("%s: 0*G != 0", c.Name)
		}
	}
}

func TestClosureStaysOnCurve(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		sum := ZeroEdwards(c).Add(g, g)
		x, y := sum.Clone().Affine()
		if _, err := FromEdwardsAffine(c, x, y); err != nil {
			t.Errorf("%s: 2*G is not on the curve: %v", c.Name, err)
		}
	}
}

func TestExtendedMatchesProjectiveAddition(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		h := scalarMultEdwards(g, []byte{3})

		projSum := ZeroEdwards(c).Add(g, h)

		extG := FromProjective(g)
		extH := FromProjective(h)
		extSum := ZeroExtended(c).Add(extG, extH)
		backToProj := extSum.ToProjective()

		if backToProj.Equal(projSum) != 1 {
			t.Errorf("%s: extended addition disagrees with projective addition", c.Name)
		}
	}
}

func TestCofactorClearingLandsInPrimeOrderSubgroup(t *testing.T) {
	c := curve.Curve1174
	g := BaseEdwards(c)
	cleared := ZeroEdwards(c).ClearCofactor(g)

	order := c.PrimeOrder.Bytes()
	shouldBeZero := scalarMultEdwards(cleared, order)
	if shouldBeZero.IsZero() != 1 {
		t.Error("Curve1174: cofactor*G is not annihilated by the prime order")
	}
}

func TestCurve1174PrimeOrderAnnihilatesBasePoint(t *testing.T) {
	c := curve.Curve1174
	g := BaseEdwards(c)
	result := scalarMultEdwards(g, c.PrimeOrder.Bytes())
	if result.IsZero() != 1 {
		t.Error("Curve1174: primeOrder * G should be the zero point")
	}
}

func TestBirationalRoundTrip(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		x, y := g.Clone().Affine()

		u, v, err := EdwardsToMontgomeryAffine(c.Field, x, y)
		if err != nil {
			t.Fatalf("%s: EdwardsToMontgomeryAffine: %v", c.Name, err)
		}
		x2, y2, err := MontgomeryToEdwardsAffine(c.Field, u, v)
		if err != nil {
			t.Fatalf("%s: MontgomeryToEdwardsAffine: %v", c.Name, err)
		}
		if x2.Equal(x) != 1 || y2.Equal(y) != 1 {
			t.Errorf("%s: Montgomery->Edwards->Montgomery round trip is not identity", c.Name)
		}
	}
}

func TestMontgomeryLadderDoublingSelfConsistent(t *testing.T) {
	c := curve.M383
	g := BaseEdwards(c)

	viaEdwards := ZeroEdwards(c).Double(g)
	viaEdwardsX, viaEdwardsY := viaEdwards.Affine()
	viaEdwardsU, _, err := EdwardsToMontgomeryAffine(c.Field, viaEdwardsX, viaEdwardsY)
	if err != nil {
		t.Fatalf("EdwardsToMontgomeryAffine: %v", err)
	}

	mp := FromMontgomeryAffine(c, c.Field.FromInt64(12))
	kBits := []byte{2}
	ladderResult := MulX(mp, kBits, 8)

	if ladderResult.Affine().Equal(viaEdwardsU) != 1 {
		t.Error("M-383: mulX(2, G) disagrees with doubling G in Edwards form and converting")
	}
}

func TestDecafRoundTrip(t *testing.T) {
	for _, c := range curve.All {
		g := BaseEdwards(c)
		h := scalarMultEdwards(g, []byte{3})

		enc := DecafCompress(h)
		dec, err := DecafDecompress(c, enc)
		if err != nil {
			t.Fatalf("%s: DecafDecompress: %v", c.Name, err)
		}
		if dec.Equal(h) != 1 {
			t.Errorf("%s: Decaf round trip is not identity", c.Name)
		}
	}
}

func TestDecafZeroPointRoundTrip(t *testing.T) {
	c := curve.E521
	zero := ZeroEdwards(c)

	enc := DecafCompress(zero)
	for _, b := range enc {
		if b != 0 {
			t.Fatal("E-521: compress(0,1) should be the all-zero byte string")
		}
	}

	dec, err := DecafDecompress(c, enc)
	if err != nil {
		t.Fatalf("E-521: decompress(0): %v", err)
	}
	if dec.IsZero() != 1 {
		t.Error("E-521: decompress(0) should be the identity")
	}
}

func TestDecafRejectsNonCanonicalInput(t *testing.T) {
	c := curve.Curve1174
	raw := make([]byte, c.Field.Bytes())
	for i := range raw {
		raw[i] = 0xff
	}
	if _, err := DecafDecompress(c, raw); err != ErrInvalidPoint {
		t.Errorf("expected ErrInvalidPoint for an out-of-range encoding, got %v", err)
	}
}

func TestElligator1DecodeZero(t *testing.T) {
	c := curve.Curve1174
	p, err := Elligator1Decode(c, c.Field.Zero())
	if err != nil {
		t.Fatalf("Elligator1Decode(0): %v", err)
	}
	// t=0 isn't the map's exceptional input (that's t=-1, covered by
	// TestElligator1DecodeRejectsMinusOne below); FromEdwardsAffine inside
	// Elligator1Decode already rejects an off-curve result, so a nil error
	// here is itself the guarantee that decode(0) landed on a valid point.
	if p.IsZero() == 1 {
		t.Error("Elligator1Decode(0) should not be the identity")
	}
}

func TestElligator1DecodeRejectsMinusOne(t *testing.T) {
	c := curve.Curve1174
	minusOne := c.Field.Zero().Negate(c.Field.One())
	if _, err := Elligator1Decode(c, minusOne); err != ErrInvalidHashInput {
		t.Errorf("expected ErrInvalidHashInput for t=-1, got %v", err)
	}
}

func TestElligator2DecodeEncodeRoundTrip(t *testing.T) {
	c := curve.M383
	for seed := int64(2); seed < 10; seed++ {
		r := c.Field.FromInt64(seed)
		x, y, err := Elligator2Decode(c, r)
		if err != nil {
			t.Fatalf("Elligator2Decode(%d): %v", seed, err)
		}
		if !Elligator2CanEncode(c, x, y) {
			continue
		}
		got, err := Elligator2Encode(c, x, y)
		if err != nil {
			t.Fatalf("Elligator2Encode after decode(%d): %v", seed, err)
		}
		negR := c.Field.Zero().Negate(r)
		if got.Equal(r) != 1 && got.Equal(negR) != 1 {
			t.Errorf("encode(decode(%d)) = %s, want %s or %s", seed, got, r, negR)
		}
	}
}

func TestElligator2DecodeRejectsExceptionalInput(t *testing.T) {
	c := curve.M383
	m := c.Field
	// 1 + 2*r^2 = 0  =>  r^2 = -1/2.
	negHalf := m.Zero().DivSmall(m.Zero().Negate(m.One()), 2)
	if negHalf.Legendre() != 1 {
		t.Skip("-1/2 is not a square on this curve's field; exceptional input cannot be constructed directly")
	}
	r := m.Zero().Sqrt(negHalf)
	if _, _, err := Elligator2Decode(c, r); err != ErrInvalidHashInput {
		t.Errorf("expected ErrInvalidHashInput, got %v", err)
	}
}
