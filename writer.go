package wire

import "golang.org/x/exp/constraints"

// Writer encodes consecutive fields into a ByteBuf and tracks the first error.
// After an error, all subsequent write operations become no-ops.
//
// Scalar writes on a ByteBuf cannot fail; errors come from prefix overflow,
// positional patches and nested Encode calls.
type Writer struct {
	b     *ByteBuf
	start int
	err   error
}

// NewWriter returns a Writer appending to b.
func NewWriter(b *ByteBuf) *Writer {
	return &Writer{b: b, start: len(b.data)}
}

func (w *Writer) Buf() *ByteBuf { return w.b }
func (w *Writer) Err() error    { return w.err }

// Count returns the number of bytes written since the Writer was created.
func (w *Writer) Count() int { return len(w.b.data) - w.start }

// Offset returns the absolute write position, for a later patch with the At methods.
func (w *Writer) Offset() int { return len(w.b.data) }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result returns the bytes written and the final error state.
func (w *Writer) Result() (int, error) {
	return w.Count(), w.err
}

// --- Primitive Write Operations ---

func writeScalar[T Scalar](w *Writer, v T) {
	if w.err != nil {
		return
	}
	put(w.b, v, w.b.ByteOrder())
}

func (w *Writer) WriteUint8(v uint8)     { writeScalar(w, v) }
func (w *Writer) WriteUint16(v uint16)   { writeScalar(w, v) }
func (w *Writer) WriteUint32(v uint32)   { writeScalar(w, v) }
func (w *Writer) WriteUint64(v uint64)   { writeScalar(w, v) }
func (w *Writer) WriteInt8(v int8)       { writeScalar(w, v) }
func (w *Writer) WriteInt16(v int16)     { writeScalar(w, v) }
func (w *Writer) WriteInt32(v int32)     { writeScalar(w, v) }
func (w *Writer) WriteInt64(v int64)     { writeScalar(w, v) }
func (w *Writer) WriteFloat32(v float32) { writeScalar(w, v) }
func (w *Writer) WriteFloat64(v float64) { writeScalar(w, v) }
func (w *Writer) WriteChar(v Char)       { writeScalar(w, v) }

func (w *Writer) WriteBool(v bool) {
	if v {
		writeScalar(w, uint8(1))
	} else {
		writeScalar(w, uint8(0))
	}
}

// WriteBytes writes a raw byte run.
func (w *Writer) WriteBytes(p []byte) {
	if w.err != nil {
		return
	}
	w.b.WriteBytes(p)
}

// WriteZeros writes n zero bytes, often for padding.
func (w *Writer) WriteZeros(n int) {
	if w.err != nil {
		return
	}
	w.b.WriteZeros(n)
}

// Align writes zero bytes until the written count is a multiple of n.
func (w *Writer) Align(n int) {
	if n > 1 {
		c := w.Count()
		w.WriteZeros(Roundup(c, n) - c)
	}
}

func (w *Writer) WriteFixedString(s string, n int, opts ...FixedOption) {
	if w.err != nil {
		return
	}
	PutFixedString(w.b, s, n, opts...)
}

func (w *Writer) WriteZeroPaddedString(s string, n int) {
	if w.err != nil {
		return
	}
	PutZeroPaddedString(w.b, s, n)
}

// WriteObject appends a nested message.
func (w *Writer) WriteObject(v BinaryCodec) {
	if w.err != nil {
		return
	}
	w.setError(v.Encode(w.b))
}

// PatchUint16 overwrites a previously reserved uint16, typically a length
// field whose value is only known after the payload is written.
func (w *Writer) PatchUint16(pos int, v uint16) {
	if w.err != nil {
		return
	}
	w.setError(w.b.WriteUint16At(pos, v))
}

func (w *Writer) PatchUint32(pos int, v uint32) {
	if w.err != nil {
		return
	}
	w.setError(w.b.WriteUint32At(pos, v))
}

// --- Prefixed fields ---

func WriteString[W constraints.Unsigned](w *Writer, s string) {
	if w.err != nil {
		return
	}
	w.setError(PutString[W](w.b, s))
}

func WriteStringList[CW, LW constraints.Unsigned](w *Writer, list []string) {
	if w.err != nil {
		return
	}
	w.setError(PutStringList[CW, LW](w.b, list))
}

func WriteFixedStringList[CW constraints.Unsigned](w *Writer, list []string, n int, opts ...FixedOption) {
	if w.err != nil {
		return
	}
	w.setError(PutFixedStringList[CW](w.b, list, n, opts...))
}

func WriteBasicTypeList[CW constraints.Unsigned, T Scalar](w *Writer, list []T) {
	if w.err != nil {
		return
	}
	w.setError(PutBasicTypeList[CW](w.b, list))
}

func WriteObjectList[CW constraints.Unsigned, T any, PT interface {
	*T
	BinaryCodec
}](w *Writer, list []T) {
	if w.err != nil {
		return
	}
	w.setError(PutObjectList[CW, T, PT](w.b, list))
}
