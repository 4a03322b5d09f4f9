package wire

import "fmt"

// BinaryCodec is the contract every concrete message type implements.
//
// Decode mutates the receiver, so implementations use pointer receivers and
// a Factory hands out fresh zero values to decode into.
type BinaryCodec interface {
	// Encode appends the message to b.
	Encode(b *ByteBuf) error
	// Decode consumes the message from b.
	Decode(b *ByteBuf) error
	// Equal reports structural equality with another message of a comparable type.
	Equal(other BinaryCodec) bool

	// String renders the canonical display form.
	fmt.Stringer
}

// Sizer is an interface for types that can report their binary size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}
