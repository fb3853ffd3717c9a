package parcel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Parcel errors.
var (
	ErrTruncated     = errors.New("truncated parcel stream")
	ErrInvalidLength = errors.New("invalid string length")
	ErrTooLarge      = errors.New("string too large for parcel")
)

// TruncatedStreamError reports a read that ran past the end of the stream.
type TruncatedStreamError struct {
	// Offset is the position where the failed read started.
	Offset int

	// Need is the number of bytes the read required.
	Need int

	// Have is the number of bytes that were left.
	Have int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("%v: need %d bytes at offset %d, have %d", ErrTruncated, e.Need, e.Offset, e.Have)
}

// Is reports whether target is ErrTruncated.
func (e *TruncatedStreamError) Is(target error) bool {
	return target == ErrTruncated
}

// Parcelable is implemented by types that flatten themselves into a parcel.
type Parcelable interface {
	WriteParcel(w *Writer)
	ReadParcel(r *Reader) error
}

// Marshal flattens p into a new byte slice.
func Marshal(p Parcelable) []byte {
	w := NewWriter()
	p.WriteParcel(w)
	return w.Bytes()
}

// Unmarshal reads p from data. Bytes after the last field p reads are
// ignored so several parcelables can share one stream.
func Unmarshal(data []byte, p Parcelable) error {
	return p.ReadParcel(NewReader(data))
}

// Writer appends parcel fields to a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// WriteInt32 appends a 4-byte big-endian integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteBool appends 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
		return
	}
	w.WriteUint8(0)
}

// WriteString appends a length-prefixed UTF-8 string.
// Strings longer than math.MaxInt32 bytes panic with ErrTooLarge.
func (w *Writer) WriteString(s string) {
	if len(s) > math.MaxInt32 {
		panic(ErrTooLarge)
	}
	w.WriteInt32(int32(len(s)))
	w.buf = append(w.buf, s...)
}

// Bytes returns the encoded stream. The slice aliases the writer buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Reader consumes parcel fields sequentially.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Offset returns the current read position.
func (r *Reader) Offset() int { return r.off }

func (r *Reader) next(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, &TruncatedStreamError{Offset: r.off, Need: n, Have: r.Remaining()}
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadInt32 reads a 4-byte big-endian integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() (string, error) {
	start := r.off
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		r.off = start
		return "", fmt.Errorf("%w: %d at offset %d", ErrInvalidLength, n, start)
	}
	b, err := r.next(int(n))
	if err != nil {
		r.off = start
		return "", err
	}
	return string(b), nil
}
