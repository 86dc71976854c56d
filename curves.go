package tonecodec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/tonecodec/internal/beio"
)

// Point is a curve control point. Values span the full 16-bit range; the
// editor keeps them in 0..255 but the format does not.
type Point struct {
	X, Y uint16
}

// Curve is an ordered run of control points. The order is traversal order
// along the curve and is not sorted by X.
type Curve struct {
	Points []Point
}

// CurveSet is the content of a curves (.acv) file.
type CurveSet struct {
	Version uint16
	Curves  []Curve
}

// Validate checks that the curve count and every point count fit in the
// 16-bit fields of the file layout.
func (s *CurveSet) Validate() error {
	if len(s.Curves) > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrTooManyCurves, len(s.Curves))
	}
	for i, c := range s.Curves {
		if len(c.Points) > math.MaxUint16 {
			return fmt.Errorf("%w: curve %d has %d", ErrTooManyPoints, i, len(c.Points))
		}
	}
	return nil
}

// CurveCodec converts curves files.
//
// Layout, all fields big-endian uint16 with no padding:
//
//	version
//	curve count
//	per curve: point count, then per point Y followed by X
//
// Real files may carry extra curve metadata after the last declared point.
// It is not parsed.
type CurveCodec struct{}

// Decode parses a curves file.
func (CurveCodec) Decode(data []byte) (*CurveSet, error) {
	r := beio.NewReader(data)
	read := func(field string) (uint16, error) {
		v, err := r.ReadUint16()
		if errors.Is(err, beio.ErrShortBuffer) {
			return 0, &TruncatedError{Field: field, Offset: r.Offset(), Len: len(data)}
		}
		return v, err
	}

	version, err := read("version")
	if err != nil {
		return nil, err
	}
	count, err := read("curve count")
	if err != nil {
		return nil, err
	}

	set := &CurveSet{Version: version, Curves: make([]Curve, 0, min(int(count), r.Remaining()/2))}
	for c := 0; c < int(count); c++ {
		n, err := read(fmt.Sprintf("curve %d point count", c))
		if err != nil {
			return nil, err
		}
		// Bound the allocation by what the input can actually hold.
		if r.Remaining() < int(n)*4 {
			return nil, &TruncatedError{
				Field:  fmt.Sprintf("curve %d points", c),
				Offset: r.Offset(),
				Len:    len(data),
			}
		}
		points := make([]Point, n)
		for p := range points {
			if points[p].Y, err = read("point y"); err != nil {
				return nil, err
			}
			if points[p].X, err = read("point x"); err != nil {
				return nil, err
			}
		}
		set.Curves = append(set.Curves, Curve{Points: points})
	}

	if extra := r.Remaining(); extra > 0 {
		Logger().Warn("tonecodec: ignoring trailing curve data", "bytes", extra, "offset", r.Offset())
	}
	Logger().Debug("tonecodec: decoded curves", "version", version, "curves", count)
	return set, nil
}

// Render formats the curve set, X before Y in each pair:
//
//	Curves Count:2
//	Control Points coordinates (X,Y):
//	Curve 0: (000,000) (255,255)
//	Curve 1: (000,010) (128,140) (255,250)
func (CurveCodec) Render(s *CurveSet) string {
	var b strings.Builder
	b.WriteString("Curves Count:")
	b.WriteString(strconv.Itoa(len(s.Curves)))
	b.WriteString(newline)
	b.WriteString("Control Points coordinates (X,Y):")
	for i, c := range s.Curves {
		b.WriteString(newline)
		fmt.Fprintf(&b, "Curve %d: ", i)
		for _, p := range c.Points {
			fmt.Fprintf(&b, "(%03d,%03d) ", p.X, p.Y)
		}
	}
	return b.String()
}

// Parse is not implemented for curves text and always returns ErrUnsupported.
func (CurveCodec) Parse(string) (*CurveSet, error) {
	return nil, fmt.Errorf("%w: parsing curves text", ErrUnsupported)
}

// Encode is not implemented for curves and always returns ErrUnsupported.
func (CurveCodec) Encode(*CurveSet) ([]byte, error) {
	return nil, fmt.Errorf("%w: encoding curves", ErrUnsupported)
}

// LoadCurves reads and decodes a curves file. The file is held under an
// exclusive, non-blocking lock while it is read; if another process holds
// it, LoadCurves fails immediately with ErrUnreadable.
func LoadCurves(path string) (*CurveSet, error) {
	data, err := readLocked(path)
	if err != nil {
		return nil, err
	}
	return CurveCodec{}.Decode(data)
}
