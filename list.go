package wire

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Lists are a CW-wide element count followed by the elements back to back.
// Every Get restores the read cursor when the list is not fully readable,
// so a stream decoder can wait for more bytes and retry.

// capHint bounds a preallocation by what the buffer could possibly hold,
// so a corrupt count cannot trigger a huge allocation.
func capHint(count, readable, minElem int) int {
	if minElem <= 0 {
		minElem = 1
	}
	if most := readable / minElem; count > most {
		return most
	}
	return count
}

// MaxEmptyElements bounds how many elements occupying no bytes a single list
// Get accepts. Past it, the count is treated as corrupt.
const MaxEmptyElements = 1 << 16

// PutStringList writes a CW-wide count followed by LW-prefixed strings.
// Nothing is written if the count or any length overflows its prefix.
func PutStringList[CW, LW constraints.Unsigned](b *ByteBuf, list []string) error {
	if !fits[CW](len(list)) {
		return fmt.Errorf("%w: list of %d strings", ErrLengthOverflow, len(list))
	}
	for i, s := range list {
		if !fits[LW](len(s)) {
			return fmt.Errorf("%w: string %d has %d bytes", ErrLengthOverflow, i, len(s))
		}
	}
	_ = putPrefix[CW](b, len(list))
	for _, s := range list {
		_ = PutString[LW](b, s)
	}
	return nil
}

// GetStringList reads a list written by PutStringList with the same widths.
func GetStringList[CW, LW constraints.Unsigned](b *ByteBuf) ([]string, error) {
	mark := b.r
	count, err := getPrefix[CW](b)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, capHint(count, b.ReadableBytes(), 1))
	for i := 0; i < count; i++ {
		s, err := GetString[LW](b)
		if err != nil {
			b.r = mark
			return nil, fmt.Errorf("string %d of %d: %w", i, count, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// PutFixedStringList writes a CW-wide count followed by n-byte fixed strings
// sharing one pad configuration.
func PutFixedStringList[CW constraints.Unsigned](b *ByteBuf, list []string, n int, opts ...FixedOption) error {
	if err := putPrefix[CW](b, len(list)); err != nil {
		return err
	}
	o := buildFixedOptions(opts)
	for _, s := range list {
		putFixed(b, s, n, o)
	}
	return nil
}

// GetFixedStringList reads a list written by PutFixedStringList.
func GetFixedStringList[CW constraints.Unsigned](b *ByteBuf, n int, opts ...FixedOption) ([]string, error) {
	mark := b.r
	count, err := getPrefix[CW](b)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		if count > MaxEmptyElements {
			b.r = mark
			return nil, fmt.Errorf("%w: %d zero-width strings", ErrCorruptCount, count)
		}
		return make([]string, count), nil
	}
	if count > b.ReadableBytes()/n {
		b.r = mark
		return nil, fmt.Errorf("%w: %d strings of %d bytes, %d readable", ErrBufferUnderflow, count, n, b.ReadableBytes())
	}
	o := buildFixedOptions(opts)
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := getFixed(b, n, o)
		if err != nil {
			b.r = mark
			return nil, fmt.Errorf("fixed string %d of %d: %w", i, count, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// PutBasicTypeList writes a CW-wide count followed by scalars of type T.
func PutBasicTypeList[CW constraints.Unsigned, T Scalar](b *ByteBuf, list []T) error {
	if err := putPrefix[CW](b, len(list)); err != nil {
		return err
	}
	order := b.ByteOrder()
	size := SizeOf[T]()
	off := b.grow(size * len(list))
	for i, v := range list {
		encodeScalar(b.data[off+i*size:], v, order)
	}
	return nil
}

// GetBasicTypeList reads a list written by PutBasicTypeList.
func GetBasicTypeList[CW constraints.Unsigned, T Scalar](b *ByteBuf) ([]T, error) {
	mark := b.r
	count, err := getPrefix[CW](b)
	if err != nil {
		return nil, err
	}
	size := SizeOf[T]()
	if count > b.ReadableBytes()/size {
		b.r = mark
		return nil, fmt.Errorf("%w: %d elements of %d bytes, %d readable", ErrBufferUnderflow, count, size, b.ReadableBytes())
	}
	p, _ := b.next(count * size)
	order := b.ByteOrder()
	out := make([]T, count)
	for i := range out {
		out[i] = decodeScalar[T](p[i*size:], order)
	}
	return out, nil
}

// PutObjectList writes a CW-wide count followed by each element's own encoding.
func PutObjectList[CW constraints.Unsigned, T any, PT interface {
	*T
	BinaryCodec
}](b *ByteBuf, list []T) error {
	if err := putPrefix[CW](b, len(list)); err != nil {
		return err
	}
	for i := range list {
		if err := PT(&list[i]).Encode(b); err != nil {
			return fmt.Errorf("object %d of %d: %w", i, len(list), err)
		}
	}
	return nil
}

// GetObjectList reads count zero-valued elements and decodes each in place, in order.
func GetObjectList[CW constraints.Unsigned, T any, PT interface {
	*T
	BinaryCodec
}](b *ByteBuf) ([]T, error) {
	mark := b.r
	count, err := getPrefix[CW](b)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, capHint(count, b.ReadableBytes(), 1))
	empty := 0
	for i := 0; i < count; i++ {
		var v T
		before := b.r
		if err := PT(&v).Decode(b); err != nil {
			b.r = mark
			return nil, fmt.Errorf("object %d of %d: %w", i, count, err)
		}
		if b.r == before {
			if empty++; empty > MaxEmptyElements {
				b.r = mark
				return nil, fmt.Errorf("%w: more than %d empty objects in a list of %d", ErrCorruptCount, MaxEmptyElements, count)
			}
		}
		out = append(out, v)
	}
	return out, nil
}
