package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultCapacity is the storage reserved by NewByteBuf when no hint is given.
const DefaultCapacity = 256

// MinRead is the minimum slice size passed to a Read call by ByteBuf.ReadFrom.
const MinRead = 512

// ByteBuf is a growable byte buffer with independent read and write cursors.
//
// The write cursor is len(data) and capacity is cap(data), so the invariant
// 0 <= read cursor <= write cursor <= capacity holds by construction.
// All reads are bounded by the write cursor and fail with ErrBufferUnderflow
// without consuming anything; writes grow storage as needed.
//
// A ByteBuf is not safe for concurrent use. It belongs to exactly one
// encode or decode call chain at a time.
type ByteBuf struct {
	data  []byte
	r     int
	order binary.ByteOrder
}

var (
	_ io.Writer       = (*ByteBuf)(nil)
	_ io.ByteWriter   = (*ByteBuf)(nil)
	_ io.StringWriter = (*ByteBuf)(nil)
	_ io.Reader       = (*ByteBuf)(nil)
	_ io.ByteReader   = (*ByteBuf)(nil)
	_ io.WriterTo     = (*ByteBuf)(nil)
	_ io.ReaderFrom   = (*ByteBuf)(nil)
)

// NewByteBuf returns an empty buffer with room for capacity bytes.
// A capacity <= 0 reserves DefaultCapacity.
func NewByteBuf(capacity int) *ByteBuf {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ByteBuf{data: make([]byte, 0, capacity), order: Order}
}

// Wrap returns a buffer whose readable region is p.
// The buffer reads p in place; the first write that needs more room copies it.
func Wrap(p []byte) *ByteBuf {
	return &ByteBuf{data: p[:len(p):len(p)], order: Order}
}

// WithByteOrder sets the declared byte order used by the order-less accessors
// and by every codec primitive, and returns the buffer for chaining.
func (b *ByteBuf) WithByteOrder(order binary.ByteOrder) *ByteBuf {
	if order == nil {
		order = Order
	}
	b.order = order
	return b
}

// ByteOrder reports the declared byte order.
func (b *ByteBuf) ByteOrder() binary.ByteOrder {
	if b.order == nil {
		return Order
	}
	return b.order
}

// IsBigEndian reports whether the declared byte order is big-endian.
func (b *ByteBuf) IsBigEndian() bool {
	return b.ByteOrder().Uint16([]byte{0x00, 0x01}) == 1
}

func (b *ByteBuf) ReadableBytes() int { return len(b.data) - b.r }
func (b *ByteBuf) WritableBytes() int { return cap(b.data) - len(b.data) }
func (b *ByteBuf) ReaderIndex() int   { return b.r }
func (b *ByteBuf) WriterIndex() int   { return len(b.data) }
func (b *ByteBuf) Cap() int           { return cap(b.data) }

// Bytes returns the readable region without copying it.
// The slice is only valid until the next write.
func (b *ByteBuf) Bytes() []byte { return b.data[b.r:] }

// Reset rewinds both cursors to zero. Storage is kept for reuse.
func (b *ByteBuf) Reset() {
	b.data = b.data[:0]
	b.r = 0
}

// SetReaderIndex moves the read cursor to an absolute position within the written region.
// Stream decoders use it to rewind after an incomplete frame.
func (b *ByteBuf) SetReaderIndex(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("%w: reader index %d, size %d", ErrOutOfRange, pos, len(b.data))
	}
	b.r = pos
	return nil
}

// Compact drops the consumed prefix, sliding the readable region to the start of storage.
func (b *ByteBuf) Compact() {
	if b.r == 0 {
		return
	}
	n := copy(b.data, b.data[b.r:])
	b.data = b.data[:n]
	b.r = 0
}

// grow extends the written region by n bytes and returns the offset of the new bytes.
// When capacity runs out it at least doubles, or grows to fit exactly if doubling is not enough.
func (b *ByteBuf) grow(n int) int {
	l := len(b.data)
	if l+n > cap(b.data) {
		c := 2 * cap(b.data)
		if c < l+n {
			c = l + n
		}
		nb := make([]byte, l, c)
		copy(nb, b.data)
		b.data = nb
	}
	b.data = b.data[:l+n]
	return l
}

// Grow guarantees room for another n bytes without a further allocation.
func (b *ByteBuf) Grow(n int) {
	if n <= 0 {
		return
	}
	l := b.grow(n)
	b.data = b.data[:l]
}

// next consumes n readable bytes.
func (b *ByteBuf) next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if avail := len(b.data) - b.r; avail < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d readable", ErrBufferUnderflow, n, avail)
	}
	p := b.data[b.r : b.r+n]
	b.r += n
	return p, nil
}

// at returns the n written bytes starting at pos.
func (b *ByteBuf) at(pos, n int) ([]byte, error) {
	if pos < 0 || n > len(b.data)-pos {
		return nil, fmt.Errorf("%w: %d bytes at %d, size %d", ErrOutOfRange, n, pos, len(b.data))
	}
	return b.data[pos : pos+n], nil
}

// WriteBytes appends p.
func (b *ByteBuf) WriteBytes(p []byte) {
	copy(b.data[b.grow(len(p)):], p)
}

// WriteZeros appends n zero bytes, typically for padding.
func (b *ByteBuf) WriteZeros(n int) {
	if n <= 0 {
		return
	}
	clear(b.data[b.grow(n):])
}

// WriteBytesAt overwrites already-written bytes at pos with p.
func (b *ByteBuf) WriteBytesAt(pos int, p []byte) error {
	dst, err := b.at(pos, len(p))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// ReadBytes consumes n bytes and returns them as a new slice.
func (b *ByteBuf) ReadBytes(n int) ([]byte, error) {
	p, err := b.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), p...), nil
}

// ReadBytesTo fills dst from the readable region.
func (b *ByteBuf) ReadBytesTo(dst []byte) error {
	p, err := b.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// Peek returns the next n readable bytes without consuming them.
func (b *ByteBuf) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if avail := len(b.data) - b.r; avail < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d readable", ErrBufferUnderflow, n, avail)
	}
	return b.data[b.r : b.r+n], nil
}

// Skip consumes n bytes without copying them.
func (b *ByteBuf) Skip(n int) error {
	_, err := b.next(n)
	return err
}

// --- io interfaces ---

// Write implements io.Writer. It never fails.
func (b *ByteBuf) Write(p []byte) (int, error) {
	b.WriteBytes(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (b *ByteBuf) WriteString(s string) (int, error) {
	return copy(b.data[b.grow(len(s)):], s), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *ByteBuf) WriteByte(c byte) error {
	b.data[b.grow(1)] = c
	return nil
}

// Read implements io.Reader. Unlike the typed reads it follows stream
// semantics: a short read is not an error and an empty buffer returns io.EOF.
func (b *ByteBuf) Read(p []byte) (int, error) {
	if b.r >= len(b.data) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.r:])
	b.r += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (b *ByteBuf) ReadByte() (byte, error) {
	if b.r >= len(b.data) {
		return 0, io.EOF
	}
	c := b.data[b.r]
	b.r++
	return c, nil
}

// WriteTo implements io.WriterTo, draining the readable region into w.
func (b *ByteBuf) WriteTo(w io.Writer) (int64, error) {
	if b.r >= len(b.data) {
		return 0, nil
	}
	n, err := w.Write(b.data[b.r:])
	if n < 0 || n > len(b.data)-b.r {
		return 0, ErrInvalidRead
	}
	b.r += n
	if err != nil {
		return int64(n), err
	}
	if b.r < len(b.data) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// ReadFrom implements io.ReaderFrom, appending everything r yields until io.EOF.
func (b *ByteBuf) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	for {
		b.Grow(MinRead)
		l := len(b.data)
		m, err := r.Read(b.data[l:cap(b.data)])
		if m < 0 || m > cap(b.data)-l {
			return n, ErrInvalidRead
		}
		b.data = b.data[:l+m]
		n += int64(m)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
