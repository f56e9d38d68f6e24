package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emc2/safecurves-go/curve"
)

func TestBaseAndZeroPointsAreFresh(t *testing.T) {
	g := New(curve.Curve1174)

	p1 := g.BasePoint()
	p2 := g.BasePoint()
	p1.X = p1.Curve.Field.FromInt64(999)

	assert.NotEqual(t, p1.X, p2.X, "BasePoint() should return an independent clone each call")
	assert.Equal(t, 1, g.ZeroPoint().IsZero(), "ZeroPoint() should be the neutral element")
}

func TestFromEdwardsRejectsOffCurvePoints(t *testing.T) {
	g := New(curve.Curve1174)
	m := curve.Curve1174.Field

	_, err := g.FromEdwards(m.FromInt64(2), m.FromInt64(3))
	require.Error(t, err)
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	g := New(curve.Curve1174)
	p := g.BasePoint()

	enc := Compress(p)
	dec, err := enc.Decompress(curve.Curve1174)
	require.NoError(t, err)
	assert.Equal(t, 1, dec.Equal(p))
}

func TestFromCompressedRejectsTooLargeInput(t *testing.T) {
	g := New(curve.Curve1174)
	raw := make([]byte, curve.Curve1174.Field.Bytes())
	for i := range raw {
		raw[i] = 0xff
	}
	_, err := g.FromCompressed(raw)
	require.Error(t, err)
}

func TestFromHashUsesElligator2WhenAvailable(t *testing.T) {
	g := New(curve.M383)
	require.True(t, curve.M383.HasElligator2)

	p, err := g.FromHash(curve.M383.Field.FromInt64(3))
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestFromHashUsesElligator1WhenOnlyThatIsAvailable(t *testing.T) {
	g := New(curve.Curve1174)
	require.True(t, curve.Curve1174.HasElligator1)
	require.False(t, curve.Curve1174.HasElligator2)

	p, err := g.FromHash(curve.Curve1174.Field.Zero())
	require.NoError(t, err)
	assert.Equal(t, 1, p.IsZero())
}

func TestCompressedPointJSONRoundTrip(t *testing.T) {
	g := New(curve.Curve1174)
	p := g.BasePoint()
	enc := Compress(p)

	b, err := enc.MarshalJSON()
	require.NoError(t, err)

	var decoded CompressedPoint
	require.NoError(t, decoded.UnmarshalJSON(b))
	assert.Equal(t, enc, decoded)
}

func TestCompressedPointValueScanRoundTrip(t *testing.T) {
	g := New(curve.Curve1174)
	enc := Compress(g.BasePoint())

	v, err := enc.Value()
	require.NoError(t, err)

	var scanned CompressedPoint
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, enc, scanned)
}

func TestCofactorAndPrimeOrderAccessors(t *testing.T) {
	g := New(curve.Curve1174)
	assert.Equal(t, 4, g.Cofactor())
	assert.NotNil(t, g.PrimeOrder())

	g2 := New(curve.E222)
	assert.Nil(t, g2.PrimeOrder())
}
