package point

import (
	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/field"
)

// EdwardsOps, MontgomeryOps, Elligator1Ops, Elligator2Ops, and DecafOps
// are the capability traits spec.md §9 calls for in place of the
// source's deep generic class hierarchy: one small interface per axis
// (coordinate representation, hash-to-curve variant, Decaf overlay),
// each satisfied by a single blanket implementation bound to a
// *curve.Params rather than by per-curve code, following the same
// small-interface shape as the teacher's curve25519.PointOperations.
type EdwardsOps interface {
	Base() *Edwards
	Zero() *Edwards
	FromEdwardsAffine(x, y *field.Element) (*Edwards, error)
	Add(p, q *Edwards) *Edwards
	Double(p *Edwards) *Edwards
	Negate(p *Edwards) *Edwards
	ClearCofactor(p *Edwards) *Edwards
}

type MontgomeryOps interface {
	FromMontgomeryAffine(u *field.Element) *Montgomery
	MulX(p *Montgomery, kBits []byte, bitLen int) *Montgomery
}

type Elligator1Ops interface {
	DecodeElligator1(t *field.Element) (*Edwards, error)
	EncodeElligator1(p *Edwards) (*field.Element, error)
	CanEncodeElligator1(p *Edwards) bool
}

type Elligator2Ops interface {
	DecodeElligator2(r *field.Element) (x, y *field.Element, err error)
	EncodeElligator2(x, y *field.Element) (*field.Element, error)
	CanEncodeElligator2(x, y *field.Element) bool
}

type DecafOps interface {
	Compress(p *Edwards) []byte
	Decompress(sBytes []byte) (*Edwards, error)
}

// CurveOps is the blanket implementation of every trait above, one per
// curve.Params: each method is a thin forwarder to the corresponding
// free function, closing over the curve the trait was bound to. A
// single CurveOps value satisfies all five interfaces at once, so
// callers hold just the subset of interface types they need.
type CurveOps struct {
	c *curve.Params
}

// Ops returns the capability traits bound to c. Calling an Elligator
// method unsupported by c (check c.HasElligator1/c.HasElligator2
// first) is a programmer error, not a recoverable runtime condition.
func Ops(c *curve.Params) *CurveOps {
	return &CurveOps{c: c}
}

func (o *CurveOps) Base() *Edwards { return BaseEdwards(o.c) }
func (o *CurveOps) Zero() *Edwards { return ZeroEdwards(o.c) }

func (o *CurveOps) FromEdwardsAffine(x, y *field.Element) (*Edwards, error) {
	return FromEdwardsAffine(o.c, x, y)
}

func (o *CurveOps) Add(p, q *Edwards) *Edwards { return ZeroEdwards(o.c).Add(p, q) }
func (o *CurveOps) Double(p *Edwards) *Edwards { return ZeroEdwards(o.c).Double(p) }
func (o *CurveOps) Negate(p *Edwards) *Edwards { return ZeroEdwards(o.c).Negate(p) }
func (o *CurveOps) ClearCofactor(p *Edwards) *Edwards {
	return ZeroEdwards(o.c).ClearCofactor(p)
}

func (o *CurveOps) FromMontgomeryAffine(u *field.Element) *Montgomery {
	return FromMontgomeryAffine(o.c, u)
}

func (o *CurveOps) MulX(p *Montgomery, kBits []byte, bitLen int) *Montgomery {
	return MulX(p, kBits, bitLen)
}

func (o *CurveOps) DecodeElligator1(t *field.Element) (*Edwards, error) {
	return Elligator1Decode(o.c, t)
}
func (o *CurveOps) EncodeElligator1(p *Edwards) (*field.Element, error) {
	return Elligator1Encode(p)
}
func (o *CurveOps) CanEncodeElligator1(p *Edwards) bool {
	return Elligator1CanEncode(p)
}

func (o *CurveOps) DecodeElligator2(r *field.Element) (x, y *field.Element, err error) {
	return Elligator2Decode(o.c, r)
}
func (o *CurveOps) EncodeElligator2(x, y *field.Element) (*field.Element, error) {
	return Elligator2Encode(o.c, x, y)
}
func (o *CurveOps) CanEncodeElligator2(x, y *field.Element) bool {
	return Elligator2CanEncode(o.c, x, y)
}

func (o *CurveOps) Compress(p *Edwards) []byte { return DecafCompress(p) }
func (o *CurveOps) Decompress(sBytes []byte) (*Edwards, error) {
	return DecafDecompress(o.c, sBytes)
}
