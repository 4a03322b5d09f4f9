package checksum

import (
	"bytes"
	"fmt"

	"github.com/oy3o/wire"
)

// trailer resolves name to a buffer algorithm together with the width of its
// value on the wire.
func trailer(r *Registry, name string) (Service, int, error) {
	s, err := r.Service(name)
	if err != nil {
		return nil, 0, err
	}
	switch s.(type) {
	case Algorithm[*wire.ByteBuf, uint16]:
		return s, 2, nil
	case Algorithm[*wire.ByteBuf, uint32], Algorithm[*wire.ByteBuf, int32]:
		return s, 4, nil
	case Algorithm[*wire.ByteBuf, uint8]:
		return s, 1, nil
	}
	return nil, 0, fmt.Errorf("%w: %s (%T)", ErrUnsupportedOutput, name, s)
}

// compute runs s over b and encodes the result into a standalone buffer with
// b's byte order.
func compute(s Service, b *wire.ByteBuf) *wire.ByteBuf {
	out := wire.NewByteBuf(4).WithByteOrder(b.ByteOrder())
	switch alg := s.(type) {
	case Algorithm[*wire.ByteBuf, uint16]:
		out.WriteUint16(alg.Calc(b))
	case Algorithm[*wire.ByteBuf, uint32]:
		out.WriteUint32(alg.Calc(b))
	case Algorithm[*wire.ByteBuf, int32]:
		out.WriteInt32(alg.Calc(b))
	case Algorithm[*wire.ByteBuf, uint8]:
		out.WriteUint8(alg.Calc(b))
	}
	return out
}

// Append computes name over the readable region of b and writes the value at
// the end of b in b's byte order.
func Append(r *Registry, name string, b *wire.ByteBuf) error {
	s, _, err := trailer(r, name)
	if err != nil {
		return err
	}
	b.WriteBytes(compute(s, b).Bytes())
	return nil
}

// Verify checks a frame produced by Append: the last bytes of the readable
// region must equal name computed over everything before them.
// Cursors are not moved.
func Verify(r *Registry, name string, b *wire.ByteBuf) error {
	s, width, err := trailer(r, name)
	if err != nil {
		return err
	}
	data := b.Bytes()
	if len(data) < width {
		return fmt.Errorf("%w: %d bytes, trailer needs %d", wire.ErrBufferUnderflow, len(data), width)
	}
	body := wire.Wrap(data[:len(data)-width]).WithByteOrder(b.ByteOrder())
	want := compute(s, body).Bytes()
	if got := data[len(data)-width:]; !bytes.Equal(got, want) {
		wire.Logger().Debug().Str("algorithm", name).Hex("got", got).Hex("want", want).Msg("checksum: trailer mismatch")
		return fmt.Errorf("%w: %s got %x want %x", ErrMismatch, name, got, want)
	}
	return nil
}

// Sum computes name over the readable region of b and widens the result to
// uint64. Signed results keep their two's-complement bits in the low 32 bits.
func Sum(r *Registry, name string, b *wire.ByteBuf) (uint64, error) {
	s, err := r.Service(name)
	if err != nil {
		return 0, err
	}
	switch alg := s.(type) {
	case Algorithm[*wire.ByteBuf, uint16]:
		return uint64(alg.Calc(b)), nil
	case Algorithm[*wire.ByteBuf, uint32]:
		return uint64(alg.Calc(b)), nil
	case Algorithm[*wire.ByteBuf, int32]:
		return uint64(uint32(alg.Calc(b))), nil
	case Algorithm[*wire.ByteBuf, uint8]:
		return uint64(alg.Calc(b)), nil
	case Algorithm[*wire.ByteBuf, uint64]:
		return alg.Calc(b), nil
	}
	return 0, fmt.Errorf("%w: %s (%T)", ErrUnsupportedOutput, name, s)
}

// ForConfig resolves the trailer algorithm named by cfg.Checksum.
// It returns nil and no error when the config names none.
func ForConfig(r *Registry, cfg wire.Config) (Service, error) {
	if cfg.Checksum == "" {
		return nil, nil
	}
	s, _, err := trailer(r, cfg.Checksum)
	return s, err
}
