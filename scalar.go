package wire

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Char is a single-byte character field. It is encoded like uint8 but
// displayed quoted, which distinguishes it from small integers.
type Char byte

// Scalar is the set of fixed-width values a ByteBuf reads and writes directly.
// Floats travel as their raw IEEE-754 bit pattern.
type Scalar interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | Char
}

// SizeOf returns the wire width of T in bytes.
func SizeOf[T Scalar]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// encodeScalar is the single place that turns a value into bytes.
func encodeScalar[T Scalar](p []byte, v T, order binary.ByteOrder) {
	switch x := any(v).(type) {
	case int8:
		p[0] = byte(x)
	case uint8:
		p[0] = x
	case Char:
		p[0] = byte(x)
	case int16:
		order.PutUint16(p, uint16(x))
	case uint16:
		order.PutUint16(p, x)
	case int32:
		order.PutUint32(p, uint32(x))
	case uint32:
		order.PutUint32(p, x)
	case float32:
		order.PutUint32(p, math.Float32bits(x))
	case int64:
		order.PutUint64(p, uint64(x))
	case uint64:
		order.PutUint64(p, x)
	case float64:
		order.PutUint64(p, math.Float64bits(x))
	}
}

// decodeScalar is the single place that turns bytes into a value.
func decodeScalar[T Scalar](p []byte, order binary.ByteOrder) T {
	var v T
	switch d := any(&v).(type) {
	case *int8:
		*d = int8(p[0])
	case *uint8:
		*d = p[0]
	case *Char:
		*d = Char(p[0])
	case *int16:
		*d = int16(order.Uint16(p))
	case *uint16:
		*d = order.Uint16(p)
	case *int32:
		*d = int32(order.Uint32(p))
	case *uint32:
		*d = order.Uint32(p)
	case *float32:
		*d = math.Float32frombits(order.Uint32(p))
	case *int64:
		*d = int64(order.Uint64(p))
	case *uint64:
		*d = order.Uint64(p)
	case *float64:
		*d = math.Float64frombits(order.Uint64(p))
	}
	return v
}

func put[T Scalar](b *ByteBuf, v T, order binary.ByteOrder) {
	n := SizeOf[T]()
	off := b.grow(n)
	encodeScalar(b.data[off:off+n], v, order)
}

func putAt[T Scalar](b *ByteBuf, pos int, v T, order binary.ByteOrder) error {
	p, err := b.at(pos, SizeOf[T]())
	if err != nil {
		return err
	}
	encodeScalar(p, v, order)
	return nil
}

func get[T Scalar](b *ByteBuf, order binary.ByteOrder) (T, error) {
	p, err := b.next(SizeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeScalar[T](p, order), nil
}

// Put appends v in the buffer's declared byte order.
func Put[T Scalar](b *ByteBuf, v T) { put(b, v, b.ByteOrder()) }

// PutLE appends v little-endian regardless of the declared order.
func PutLE[T Scalar](b *ByteBuf, v T) { put(b, v, LE) }

// PutBE appends v big-endian regardless of the declared order.
func PutBE[T Scalar](b *ByteBuf, v T) { put(b, v, BE) }

// PutOrder appends v big-endian when bigEndian is set, little-endian otherwise.
func PutOrder[T Scalar](b *ByteBuf, v T, bigEndian bool) { put(b, v, orderOf(bigEndian)) }

// PutAt overwrites the already-written bytes at pos with v in the declared order.
// It fails with ErrOutOfRange if pos+SizeOf[T]() exceeds the written size.
func PutAt[T Scalar](b *ByteBuf, pos int, v T) error { return putAt(b, pos, v, b.ByteOrder()) }

func PutLEAt[T Scalar](b *ByteBuf, pos int, v T) error { return putAt(b, pos, v, LE) }
func PutBEAt[T Scalar](b *ByteBuf, pos int, v T) error { return putAt(b, pos, v, BE) }

func PutOrderAt[T Scalar](b *ByteBuf, pos int, v T, bigEndian bool) error {
	return putAt(b, pos, v, orderOf(bigEndian))
}

// Get consumes one T in the declared byte order.
// It fails with ErrBufferUnderflow if fewer than SizeOf[T]() bytes are readable.
func Get[T Scalar](b *ByteBuf) (T, error) { return get[T](b, b.ByteOrder()) }

func GetLE[T Scalar](b *ByteBuf) (T, error) { return get[T](b, LE) }
func GetBE[T Scalar](b *ByteBuf) (T, error) { return get[T](b, BE) }

func GetOrder[T Scalar](b *ByteBuf, bigEndian bool) (T, error) {
	return get[T](b, orderOf(bigEndian))
}

// GetBasicType reads one top-level scalar field with no prefix.
func GetBasicType[T Scalar](b *ByteBuf) (T, error) { return Get[T](b) }
