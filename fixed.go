package wire

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a concurrent map makes it safe to share across goroutines.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed provides a generic `BinaryCodec` implementation for any struct `Payload`
// composed of fixed-size fields, eliminating boilerplate for simple records
// such as market data snapshots.
//
// Constraint: The `Payload` type MUST NOT contain variable-size fields like slices,
// maps, or strings, as this will cause `binary.Size` to fail.
// Fields are laid out in declaration order using the buffer's byte order.
type Fixed[Payload any] struct {
	Payload Payload
}

// Statically assert that Fixed implements BinaryCodec and Sizer.
var (
	_ BinaryCodec = (*Fixed[struct{}])(nil)
	_ Sizer       = (*Fixed[struct{}])(nil)
)

// Size returns the fixed size of the payload in bytes.
// The result is cached to avoid reflection overhead on subsequent calls.
func (c *Fixed[Payload]) Size() int {
	payloadType := reflect.TypeOf((*Payload)(nil)).Elem()

	if size, ok := sizeCache.Load(payloadType); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(payloadType, size)
	return size
}

// Encode appends the payload in one piece.
func (c *Fixed[Payload]) Encode(b *ByteBuf) error {
	size := c.Size()
	if size < 0 {
		return fmt.Errorf("wire: %T is not a fixed-size payload", c.Payload)
	}
	off := b.grow(size)
	if _, err := binary.Encode(b.data[off:off+size], b.ByteOrder(), &c.Payload); err != nil {
		b.data = b.data[:off]
		return err
	}
	return nil
}

// Decode consumes exactly Size bytes, or nothing on underflow.
func (c *Fixed[Payload]) Decode(b *ByteBuf) error {
	size := c.Size()
	if size < 0 {
		return fmt.Errorf("wire: %T is not a fixed-size payload", c.Payload)
	}
	p, err := b.next(size)
	if err != nil {
		return err
	}
	_, err = binary.Decode(p, b.ByteOrder(), &c.Payload)
	return err
}

func (c *Fixed[Payload]) Equal(other BinaryCodec) bool {
	o, ok := other.(*Fixed[Payload])
	if !ok || o == nil {
		return false
	}
	return reflect.DeepEqual(c.Payload, o.Payload)
}

func (c *Fixed[Payload]) String() string {
	return fmt.Sprintf("%+v", c.Payload)
}
