package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Marshal encodes v into a new byte slice using the given byte order
// (the default Order when nil).
func Marshal(v BinaryCodec, order binary.ByteOrder) ([]byte, error) {
	b := AcquireByteBuf().WithByteOrder(order)
	defer ReleaseByteBuf(b)

	if s, ok := v.(Sizer); ok {
		b.Grow(s.Size())
	}
	if err := v.Encode(b); err != nil {
		return nil, err
	}
	return append([]byte(nil), b.Bytes()...), nil
}

// MarshalTo encodes v into p and returns the number of bytes used.
// It fails with io.ErrShortBuffer if p is too small.
func MarshalTo(v BinaryCodec, p []byte, order binary.ByteOrder) (int, error) {
	b := AcquireByteBuf().WithByteOrder(order)
	defer ReleaseByteBuf(b)

	if err := v.Encode(b); err != nil {
		return 0, err
	}
	if b.ReadableBytes() > len(p) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", io.ErrShortBuffer, b.ReadableBytes(), len(p))
	}
	return copy(p, b.Bytes()), nil
}

// Unmarshal decodes v from data and rejects unexpected trailing data.
// Trailing zero padding up to MaxPadding bytes is accepted.
func Unmarshal(data []byte, v BinaryCodec, order binary.ByteOrder) error {
	b := Wrap(data).WithByteOrder(order)
	if err := v.Decode(b); err != nil {
		return err
	}
	// Ensure no unexpected trailing data remains.
	// This prevents parsing ambiguous or potentially malicious payloads.
	if b.ReadableBytes() > 0 {
		return CheckBufferNotZeros(b.Bytes())
	}
	return nil
}

// WriteTo encodes v and writes it to w in a single Write call.
func WriteTo(v BinaryCodec, w io.Writer, order binary.ByteOrder) (int64, error) {
	b := AcquireByteBuf().WithByteOrder(order)
	defer ReleaseByteBuf(b)

	if err := v.Encode(b); err != nil {
		return 0, err
	}
	return b.WriteTo(w)
}
