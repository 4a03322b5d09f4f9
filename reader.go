package wire

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Reader decodes consecutive fields from a ByteBuf and tracks the first error.
// After an error, all subsequent reads become no-ops and leave their
// destinations untouched, so a Decode method can read every field and check
// Err once at the end.
type Reader struct {
	b     *ByteBuf
	start int
	err   error
}

// NewReader returns a Reader consuming from b.
func NewReader(b *ByteBuf) *Reader {
	return &Reader{b: b, start: b.r}
}

// Buf returns the underlying buffer.
func (r *Reader) Buf() *ByteBuf { return r.b }
func (r *Reader) Err() error    { return r.err }

// Count returns the number of bytes consumed since the Reader was created.
func (r *Reader) Count() int { return r.b.r - r.start }

// IsUnderflow reports whether reading stopped because the buffer ran dry.
func (r *Reader) IsUnderflow() bool { return errors.Is(r.err, ErrBufferUnderflow) }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Rewind moves the read cursor back to where the Reader started and clears
// the error, so an incomplete frame can be retried once more bytes arrive.
func (r *Reader) Rewind() {
	r.b.r = r.start
	r.err = nil
}

// --- Primitive Read Operations ---

func readScalar[T Scalar](r *Reader, dest *T) {
	if r.err != nil {
		return
	}
	v, err := get[T](r.b, r.b.ByteOrder())
	if err != nil {
		r.err = err
		return
	}
	*dest = v
}

func (r *Reader) ReadUint8(dest *uint8)     { readScalar(r, dest) }
func (r *Reader) ReadUint16(dest *uint16)   { readScalar(r, dest) }
func (r *Reader) ReadUint32(dest *uint32)   { readScalar(r, dest) }
func (r *Reader) ReadUint64(dest *uint64)   { readScalar(r, dest) }
func (r *Reader) ReadInt8(dest *int8)       { readScalar(r, dest) }
func (r *Reader) ReadInt16(dest *int16)     { readScalar(r, dest) }
func (r *Reader) ReadInt32(dest *int32)     { readScalar(r, dest) }
func (r *Reader) ReadInt64(dest *int64)     { readScalar(r, dest) }
func (r *Reader) ReadFloat32(dest *float32) { readScalar(r, dest) }
func (r *Reader) ReadFloat64(dest *float64) { readScalar(r, dest) }
func (r *Reader) ReadChar(dest *Char)       { readScalar(r, dest) }

func (r *Reader) ReadBool(dest *bool) {
	var v uint8
	readScalar(r, &v)
	if r.err == nil {
		*dest = v != 0
	}
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	p, err := r.b.ReadBytes(n)
	r.setError(err)
	return p
}

func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil {
		return
	}
	r.setError(r.b.ReadBytesTo(dest))
}

// Align discards bytes until the consumed count is a multiple of n.
func (r *Reader) Align(n int) {
	if r.err != nil || n <= 1 {
		return
	}
	c := r.Count()
	r.setError(r.b.Skip(Roundup(c, n) - c))
}

func (r *Reader) ReadFixedString(dest *string, n int, opts ...FixedOption) {
	if r.err != nil {
		return
	}
	s, err := GetFixedString(r.b, n, opts...)
	if err != nil {
		r.err = err
		return
	}
	*dest = s
}

func (r *Reader) ReadZeroPaddedString(dest *string, n int) {
	if r.err != nil {
		return
	}
	s, err := GetZeroPaddedString(r.b, n)
	if err != nil {
		r.err = err
		return
	}
	*dest = s
}

// ReadObject decodes a nested message in place.
func (r *Reader) ReadObject(v BinaryCodec) {
	if r.err != nil {
		return
	}
	r.setError(v.Decode(r.b))
}

// --- Prefixed fields ---
//
// Methods cannot carry type parameters, so fields with a chosen prefix width
// are read through these functions.

func ReadString[W constraints.Unsigned](r *Reader, dest *string) {
	if r.err != nil {
		return
	}
	s, err := GetString[W](r.b)
	if err != nil {
		r.err = err
		return
	}
	*dest = s
}

func ReadStringList[CW, LW constraints.Unsigned](r *Reader, dest *[]string) {
	if r.err != nil {
		return
	}
	list, err := GetStringList[CW, LW](r.b)
	if err != nil {
		r.err = err
		return
	}
	*dest = list
}

func ReadFixedStringList[CW constraints.Unsigned](r *Reader, dest *[]string, n int, opts ...FixedOption) {
	if r.err != nil {
		return
	}
	list, err := GetFixedStringList[CW](r.b, n, opts...)
	if err != nil {
		r.err = err
		return
	}
	*dest = list
}

func ReadBasicTypeList[CW constraints.Unsigned, T Scalar](r *Reader, dest *[]T) {
	if r.err != nil {
		return
	}
	list, err := GetBasicTypeList[CW, T](r.b)
	if err != nil {
		r.err = err
		return
	}
	*dest = list
}

func ReadObjectList[CW constraints.Unsigned, T any, PT interface {
	*T
	BinaryCodec
}](r *Reader, dest *[]T) {
	if r.err != nil {
		return
	}
	list, err := GetObjectList[CW, T, PT](r.b)
	if err != nil {
		r.err = err
		return
	}
	*dest = list
}
