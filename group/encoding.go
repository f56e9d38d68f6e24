package group

import (
	"database/sql/driver"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/emc2/safecurves-go/curve"
	"github.com/emc2/safecurves-go/point"
)

// CompressedPoint is a Decaf-compressed point encoding, per spec.md §6:
// a single field element s in [0, (p-1)/2], big-endian, Modulus.Bytes()
// long. Unlike the teacher's MontgomeryPoint, this is not a fixed-size
// array: the encoding length varies by curve (32 bytes for Curve1174,
// 66 for E-521, ...), so CompressedPoint carries its bytes directly
// rather than as a [N]byte.
type CompressedPoint []byte

// Compress encodes p as a CompressedPoint.
func Compress(p *point.Edwards) CompressedPoint {
	return CompressedPoint(point.DecafCompress(p))
}

// Decompress decodes a CompressedPoint back to a point on c.
func (s CompressedPoint) Decompress(c *curve.Params) (*point.Edwards, error) {
	return point.DecafDecompress(c, s)
}

func (s CompressedPoint) String() string {
	return fasthex.EncodeToString(s)
}

func (s *CompressedPoint) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	buf, ok := src.([]byte)
	if !ok {
		return errors.New("group: CompressedPoint.Scan: invalid type")
	}
	*s = append(CompressedPoint(nil), buf...)
	return nil
}

func (s CompressedPoint) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return []byte(s), nil
}

func (s CompressedPoint) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(s)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:len(buf)-1], s)
	return buf, nil
}

func (s *CompressedPoint) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		*s = nil
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("group: CompressedPoint.UnmarshalJSON: not a JSON string")
	}
	inner := b[1 : len(b)-1]
	out := make([]byte, len(inner)/2)
	if _, err := fasthex.Decode(out, inner); err != nil {
		return err
	}
	*s = out
	return nil
}

// HashInput is a field element used as the pre-image of a hash-to-curve
// map (Elligator-1's t or Elligator-2's r), encoded big-endian per
// spec.md §6. Like CompressedPoint, its length varies by curve.
type HashInput []byte

func (h HashInput) String() string {
	return fasthex.EncodeToString(h)
}

func (h *HashInput) Scan(src any) error {
	if src == nil {
		*h = nil
		return nil
	}
	buf, ok := src.([]byte)
	if !ok {
		return errors.New("group: HashInput.Scan: invalid type")
	}
	*h = append(HashInput(nil), buf...)
	return nil
}

func (h HashInput) Value() (driver.Value, error) {
	if len(h) == 0 {
		return nil, nil
	}
	return []byte(h), nil
}

func (h HashInput) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(h)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:len(buf)-1], h)
	return buf, nil
}

func (h *HashInput) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		*h = nil
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("group: HashInput.UnmarshalJSON: not a JSON string")
	}
	inner := b[1 : len(b)-1]
	out := make([]byte, len(inner)/2)
	if _, err := fasthex.Decode(out, inner); err != nil {
		return err
	}
	*h = out
	return nil
}
