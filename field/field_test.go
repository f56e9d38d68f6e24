package field

import "testing"

var (
	m251  = NewModulus("2^251-9", 251, 9)     // 3 mod 4, Curve1174's field
	m383f = NewModulus("2^383-187", 383, 187) // 5 mod 8, M-383's field
)

func TestArithmeticIdentities(t *testing.T) {
	for _, m := range []*Modulus{m251, m383f} {
		a := m.FromInt64(12345)
		b := m.FromInt64(6789)

		sum := m.Zero().Add(a, b)
		diff := m.Zero().Subtract(sum, b)
		if diff.Equal(a) != 1 {
			t.Errorf("%s: (a+b)-b != a", m.Name())
		}

		prod := m.Zero().Multiply(a, b)
		quot := m.Zero().Multiply(prod, b.Invert())
		if quot.Equal(a) != 1 {
			t.Errorf("%s: (a*b)/b != a", m.Name())
		}

		neg := m.Zero().Negate(a)
		if m.Zero().Add(a, neg).IsZero() != 1 {
			t.Errorf("%s: a + (-a) != 0", m.Name())
		}

		sq := m.Zero().Square(a)
		mul := m.Zero().Multiply(a, a)
		if sq.Equal(mul) != 1 {
			t.Errorf("%s: a^2 != a*a", m.Name())
		}
	}
}

func TestInvertZero(t *testing.T) {
	if m251.Zero().Invert().IsZero() != 1 {
		t.Error("inv(0) should be 0 by convention")
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	for _, m := range []*Modulus{m251, m383f} {
		for seed := int64(2); seed < 50; seed++ {
			x := m.FromInt64(seed)
			sq := m.Zero().Square(x)
			if sq.Legendre() != 1 {
				continue
			}
			root := m.Zero().Sqrt(sq)
			rootSq := m.Zero().Square(root)
			if rootSq.Equal(sq) != 1 {
				t.Errorf("%s: sqrt(x^2)^2 != x^2 for seed %d", m.Name(), seed)
			}
		}
	}
}

func TestLegendreOfSquareIsResidue(t *testing.T) {
	for _, m := range []*Modulus{m251, m383f} {
		for seed := int64(1); seed < 30; seed++ {
			x := m.FromInt64(seed)
			sq := m.Zero().Square(x)
			if sq.Legendre() != 1 {
				t.Errorf("%s: legendre(x^2) != 1 for seed %d", m.Name(), seed)
			}
		}
	}
}

func TestAbsIsEven(t *testing.T) {
	for _, m := range []*Modulus{m251, m383f} {
		for seed := int64(1); seed < 30; seed++ {
			x := m.FromInt64(seed)
			neg := m.Zero().Negate(x)
			if m.Zero().Set(neg).Abs().IsNegative() != 0 {
				t.Errorf("%s: Abs() did not produce the even representative", m.Name())
			}
		}
	}
}

func TestSelectAndSwap(t *testing.T) {
	a := m251.FromInt64(11)
	b := m251.FromInt64(22)

	sel0 := m251.Zero().Select(a, b, 0)
	sel1 := m251.Zero().Select(a, b, 1)
	if sel0.Equal(b) != 1 || sel1.Equal(a) != 1 {
		t.Error("Select did not pick the expected operand")
	}

	x, y := a.Clone(), b.Clone()
	x.Swap(y, 0)
	if x.Equal(a) != 1 || y.Equal(b) != 1 {
		t.Error("Swap(bit=0) should leave operands unchanged")
	}
	x.Swap(y, 1)
	if x.Equal(b) != 1 || y.Equal(a) != 1 {
		t.Error("Swap(bit=1) should exchange operands")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, m := range []*Modulus{m251, m383f} {
		x := m.FromInt64(123456789)
		enc := x.Bytes()
		if len(enc) != m.Bytes() {
			t.Fatalf("%s: encoding length %d, want %d", m.Name(), len(enc), m.Bytes())
		}
		back, err := m.SetBytes(enc)
		if err != nil {
			t.Fatalf("%s: SetBytes: %v", m.Name(), err)
		}
		if back.Equal(x) != 1 {
			t.Errorf("%s: Bytes/SetBytes round trip failed", m.Name())
		}
	}
}

func TestSetBytesRejectsNonCanonical(t *testing.T) {
	raw := make([]byte, m251.Bytes())
	for i := range raw {
		raw[i] = 0xff
	}
	if _, err := m251.SetBytes(raw); err == nil {
		t.Error("SetBytes should reject an encoding >= p")
	}
}

func TestHalfPAndCmp(t *testing.T) {
	half := m251.HalfP()
	twice := m251.Zero().MulSmall(half, 2)
	expected := m251.Zero().Negate(m251.One())
	if twice.Equal(expected) != 1 {
		t.Error("2*HalfP() should equal -1")
	}
	if half.Cmp(m251.Zero()) <= 0 {
		t.Error("HalfP() should be greater than zero")
	}
}

func TestResidueClassDetection(t *testing.T) {
	if !m251.Is3Mod4() || m251.Is5Mod8() {
		t.Error("2^251-9 should be classified 3 mod 4 only")
	}
	if !m383f.Is5Mod8() || m383f.Is3Mod4() {
		t.Error("2^383-187 should be classified 5 mod 8 only")
	}
}

func TestMustFromDecimalMatchesFromInt64(t *testing.T) {
	got := m251.MustFromDecimal("12345")
	want := m251.FromInt64(12345)
	if got.Equal(want) != 1 {
		t.Error("MustFromDecimal(\"12345\") != FromInt64(12345)")
	}
}

func TestScratchpadPool(t *testing.T) {
	s := AcquireScratchpad(m251)
	s.R0.Set(m251.FromInt64(7))
	s.Release()

	s2 := AcquireScratchpad(m251)
	defer s2.Release()
	if s2.R0.Modulus() != m251 {
		t.Error("scratchpad register lost its modulus across acquire/release")
	}
}
