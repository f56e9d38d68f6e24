package curve

import "testing"

func TestTableEntriesSatisfyCurveEquation(t *testing.T) {
	for _, c := range All {
		x2 := c.Field.Zero().Square(c.BaseEdwardsX)
		y2 := c.Field.Zero().Square(c.BaseEdwardsY)
		lhs := c.Field.Zero().Add(c.Field.Zero().Multiply(c.EdwardsA, x2), y2)
		rhs := c.Field.Zero().Add(c.Field.One(), c.Field.Zero().Multiply(c.EdwardsD, c.Field.Zero().Multiply(x2, y2)))
		if lhs.Equal(rhs) != 1 {
			t.Errorf("%s: base point does not satisfy a*x^2+y^2 = 1+d*x^2*y^2", c.Name)
		}
	}
}

func TestBirationalCoefficientsAreConsistent(t *testing.T) {
	for _, c := range All {
		m := c.Field
		amd := m.Zero().Subtract(c.EdwardsA, c.EdwardsD)
		apd := m.Zero().Add(c.EdwardsA, c.EdwardsD)

		wantA := m.Zero().Multiply(m.Zero().MulSmall(apd, 2), amd.Invert())
		if wantA.Equal(c.MontgomeryA) != 1 {
			t.Errorf("%s: MontgomeryA does not match 2*(a+d)/(a-d)", c.Name)
		}

		wantB := m.Zero().Multiply(m.FromInt64(4), amd.Invert())
		if wantB.Equal(c.MontgomeryB) != 1 {
			t.Errorf("%s: MontgomeryB does not match 4/(a-d)", c.Name)
		}

		wantLadder := m.Zero().Multiply(m.Zero().Add(c.MontgomeryA, m.FromInt64(2)), m.FromInt64(4).Invert())
		if wantLadder.Equal(c.LadderConst) != 1 {
			t.Errorf("%s: LadderConst does not match (A+2)/4", c.Name)
		}
	}
}

func TestElligator1ParamsDerivedFromD(t *testing.T) {
	for _, c := range All {
		if !c.HasElligator1 {
			continue
		}
		m := c.Field
		r := m.Zero().Add(c.ElligatorC, c.ElligatorC.Invert())
		if r.Equal(c.ElligatorR) != 1 {
			t.Errorf("%s: ElligatorR != c + 1/c", c.Name)
		}
		s2 := m.Zero().Square(c.ElligatorS)
		twoOverC := m.Zero().Multiply(m.FromInt64(2), c.ElligatorC.Invert())
		if s2.Equal(twoOverC) != 1 {
			t.Errorf("%s: ElligatorS^2 != 2/c", c.Name)
		}
	}
}

func TestElligatorEligibilityMatchesResidueClass(t *testing.T) {
	for _, c := range All {
		if c.HasElligator1 != c.Field.Is3Mod4() {
			t.Errorf("%s: HasElligator1 = %v, Is3Mod4() = %v", c.Name, c.HasElligator1, c.Field.Is3Mod4())
		}
		wantE2 := c.Field.Is5Mod8() && c.MontgomeryB.Equal(c.Field.One()) == 1
		if c.HasElligator2 != wantE2 {
			t.Errorf("%s: HasElligator2 = %v, want %v", c.Name, c.HasElligator2, wantE2)
		}
	}
}

func TestCofactorIsPowerOfTwo(t *testing.T) {
	for _, c := range All {
		h := c.Cofactor
		if h <= 0 {
			t.Fatalf("%s: non-positive cofactor", c.Name)
		}
		for h > 1 {
			if h%2 != 0 {
				t.Fatalf("%s: cofactor %d is not a power of two", c.Name, c.Cofactor)
			}
			h /= 2
		}
	}
}

func TestCurve1174PrimeOrderIsOdd(t *testing.T) {
	if Curve1174.PrimeOrder == nil {
		t.Fatal("Curve1174.PrimeOrder should be set")
	}
	// A prime subgroup order is odd; check the low bit of its canonical
	// byte encoding directly rather than via field arithmetic, since
	// oddness is a property of the integer, not the residue class.
	enc := Curve1174.PrimeOrder.Bytes()
	if enc[len(enc)-1]&1 != 1 {
		t.Error("Curve1174.PrimeOrder should be odd")
	}
}

func TestUnverifiedOrdersAreLeftNil(t *testing.T) {
	for _, c := range []*Params{E222, E382, M383, E521} {
		if c.PrimeOrder != nil {
			t.Errorf("%s: PrimeOrder should be nil (no independently verified literal)", c.Name)
		}
	}
}
