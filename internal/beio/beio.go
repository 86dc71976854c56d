// Package beio reads and writes big-endian 16-bit fields.
//
// Both tone file formats store every multi-byte integer most-significant
// byte first, independent of the host byte order.
package beio

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when fewer than 2 bytes remain.
var ErrShortBuffer = errors.New("beio: short buffer")

// ReadUint16 reads the field at off and returns it with the offset of the
// next field.
func ReadUint16(buf []byte, off int) (uint16, int, error) {
	if off < 0 || len(buf)-off < 2 {
		return 0, off, ErrShortBuffer
	}
	return binary.BigEndian.Uint16(buf[off : off+2]), off + 2, nil
}

// AppendUint16 appends v to dst, MSB first.
func AppendUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// Reader is a forward-only cursor over a byte slice.
// The offset is not advanced by a failed read.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadUint16 reads the next field.
func (r *Reader) ReadUint16() (uint16, error) {
	v, next, err := ReadUint16(r.buf, r.off)
	if err != nil {
		return 0, err
	}
	r.off = next
	return v, nil
}

// Offset returns the position of the next unread byte.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Writer accumulates big-endian fields.
type Writer struct {
	buf []byte
}

// WriteUint16 appends v, MSB first.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = AppendUint16(w.buf, v)
}

// Bytes returns the accumulated bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of accumulated bytes.
func (w *Writer) Len() int { return len(w.buf) }
