package wire

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// fits reports whether n can be stored in a prefix of type W.
func fits[W constraints.Unsigned](n int) bool {
	var w W
	if unsafe.Sizeof(w) >= 8 {
		return n >= 0
	}
	return n >= 0 && uint64(n) <= uint64(math.MaxUint64)>>(64-8*unsafe.Sizeof(w))
}

// putPrefix writes a length or count prefix of width W in the buffer's order.
func putPrefix[W constraints.Unsigned](b *ByteBuf, n int) error {
	if !fits[W](n) {
		var w W
		return fmt.Errorf("%w: %d in a %d-byte prefix", ErrLengthOverflow, n, unsafe.Sizeof(w))
	}
	switch unsafe.Sizeof(W(0)) {
	case 1:
		put(b, uint8(n), b.ByteOrder())
	case 2:
		put(b, uint16(n), b.ByteOrder())
	case 4:
		put(b, uint32(n), b.ByteOrder())
	default:
		put(b, uint64(n), b.ByteOrder())
	}
	return nil
}

// getPrefix reads a prefix of width W. Values that cannot index memory are reported as underflow,
// since no buffer can hold that many bytes.
func getPrefix[W constraints.Unsigned](b *ByteBuf) (int, error) {
	var (
		n   uint64
		err error
	)
	switch unsafe.Sizeof(W(0)) {
	case 1:
		var v uint8
		v, err = get[uint8](b, b.ByteOrder())
		n = uint64(v)
	case 2:
		var v uint16
		v, err = get[uint16](b, b.ByteOrder())
		n = uint64(v)
	case 4:
		var v uint32
		v, err = get[uint32](b, b.ByteOrder())
		n = uint64(v)
	default:
		n, err = get[uint64](b, b.ByteOrder())
	}
	if err != nil {
		return 0, err
	}
	if n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: prefix %d", ErrBufferUnderflow, n)
	}
	return int(n), nil
}

// PutString writes s as a W-wide byte length followed by its raw bytes.
func PutString[W constraints.Unsigned](b *ByteBuf, s string) error {
	if err := putPrefix[W](b, len(s)); err != nil {
		return err
	}
	_, _ = b.WriteString(s)
	return nil
}

// GetString reads a string written by PutString with the same W.
// If the payload is not fully readable the read cursor is restored.
func GetString[W constraints.Unsigned](b *ByteBuf) (string, error) {
	mark := b.r
	n, err := getPrefix[W](b)
	if err != nil {
		return "", err
	}
	p, err := b.next(n)
	if err != nil {
		b.r = mark
		return "", err
	}
	return string(p), nil
}

// PadSide selects where fixed-width string padding goes.
type PadSide uint8

const (
	PadRightSide PadSide = iota
	PadLeftSide
)

// FixedOptions configures fixed-width string fields.
// The zero value is not the default; use DefaultFixedOptions or the FixedOption helpers.
type FixedOptions struct {
	Pad  byte    // byte appended (or prepended) up to the fixed length
	Trim byte    // byte stripped on read
	Side PadSide // side that receives the padding
}

// DefaultFixedOptions pads and trims spaces on the right.
func DefaultFixedOptions() FixedOptions {
	return FixedOptions{Pad: ' ', Trim: ' ', Side: PadRightSide}
}

// ZeroFixedOptions is the legacy layout: NUL padding on the right.
func ZeroFixedOptions() FixedOptions {
	return FixedOptions{Pad: 0, Trim: 0, Side: PadRightSide}
}

type FixedOption func(*FixedOptions)

// PadWith sets both the pad and the trim byte to c.
func PadWith(c byte) FixedOption {
	return func(o *FixedOptions) { o.Pad, o.Trim = c, c }
}

// TrimWith sets the trim byte independently of the pad byte.
func TrimWith(c byte) FixedOption {
	return func(o *FixedOptions) { o.Trim = c }
}

func PadLeft() FixedOption  { return func(o *FixedOptions) { o.Side = PadLeftSide } }
func PadRight() FixedOption { return func(o *FixedOptions) { o.Side = PadRightSide } }

// WithFixedOptions replaces the whole option set.
func WithFixedOptions(opts FixedOptions) FixedOption {
	return func(o *FixedOptions) { *o = opts }
}

func buildFixedOptions(opts []FixedOption) FixedOptions {
	o := DefaultFixedOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func putFixed(b *ByteBuf, s string, n int, o FixedOptions) {
	if n <= 0 {
		return
	}
	if len(s) >= n {
		_, _ = b.WriteString(s[:n])
		return
	}
	pad := n - len(s)
	if o.Side == PadLeftSide {
		fill(b.data[b.grow(pad):], o.Pad)
		_, _ = b.WriteString(s)
		return
	}
	_, _ = b.WriteString(s)
	fill(b.data[b.grow(pad):], o.Pad)
}

func getFixed(b *ByteBuf, n int, o FixedOptions) (string, error) {
	if n <= 0 {
		return "", nil
	}
	p, err := b.next(n)
	if err != nil {
		return "", err
	}
	if o.Side == PadLeftSide {
		i := 0
		for i < len(p) && p[i] == o.Trim {
			i++
		}
		return string(p[i:]), nil
	}
	j := len(p)
	for j > 0 && p[j-1] == o.Trim {
		j--
	}
	return string(p[:j]), nil
}

func fill(p []byte, c byte) {
	for i := range p {
		p[i] = c
	}
}

// PutFixedString writes exactly n bytes: s truncated to n, or padded up to n.
// Without options it pads with spaces on the right.
func PutFixedString(b *ByteBuf, s string, n int, opts ...FixedOption) {
	putFixed(b, s, n, buildFixedOptions(opts))
}

// GetFixedString consumes n bytes and strips padding from the configured side.
// A field made only of padding yields "".
func GetFixedString(b *ByteBuf, n int, opts ...FixedOption) (string, error) {
	return getFixed(b, n, buildFixedOptions(opts))
}

// PutZeroPaddedString writes s in n bytes, NUL padded on the right.
func PutZeroPaddedString(b *ByteBuf, s string, n int) {
	putFixed(b, s, n, ZeroFixedOptions())
}

// GetZeroPaddedString reads n bytes and drops trailing NULs.
func GetZeroPaddedString(b *ByteBuf, n int) (string, error) {
	return getFixed(b, n, ZeroFixedOptions())
}
