package checksum

import (
	"hash/crc32"

	"github.com/oy3o/wire"
)

// Names of the built-in algorithms. They are stable wire-level identifiers.
const (
	CRC16   = "CRC16"
	CRC32   = "CRC32"
	SSEBin  = "SSE_BIN"
	SZSEBin = "SZSE_BIN"
)

// All built-ins read the readable region of a buffer and leave its cursors alone.

// Crc16 is the reflected CRC-16 with polynomial 0xA001 and initial value 0xFFFF
// (CRC-16/MODBUS).
type Crc16 struct{}

func (Crc16) Algorithm() string { return CRC16 }

func (Crc16) Calc(b *wire.ByteBuf) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range b.Bytes() {
		crc ^= uint16(c)
		for i := 0; i < 8; i++ {
			if crc&0x0001 != 0 {
				crc = (crc >> 1) ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// Crc32 is the zlib/ISO-HDLC CRC-32 seeded at zero.
type Crc32 struct{}

func (Crc32) Algorithm() string { return CRC32 }

func (Crc32) Calc(b *wire.ByteBuf) uint32 {
	return crc32.ChecksumIEEE(b.Bytes())
}

// SseBin is the byte sum modulo 256 used by the Shanghai exchange binary protocol.
type SseBin struct{}

func (SseBin) Algorithm() string { return SSEBin }

func (SseBin) Calc(b *wire.ByteBuf) uint32 {
	var sum uint32
	for _, c := range b.Bytes() {
		sum = (sum + uint32(c)) & 0xFF
	}
	return sum
}

// SzseBin sums the bytes into a signed 32-bit accumulator and returns the
// truncated remainder modulo 256, as the Shenzhen exchange binary protocol does.
// The accumulator wraps on overflow, after which the result can be negative.
type SzseBin struct{}

func (SzseBin) Algorithm() string { return SZSEBin }

func (SzseBin) Calc(b *wire.ByteBuf) int32 {
	var sum int32
	for _, c := range b.Bytes() {
		sum += int32(c)
	}
	return sum % 256
}

var (
	_ Algorithm[*wire.ByteBuf, uint16] = Crc16{}
	_ Algorithm[*wire.ByteBuf, uint32] = Crc32{}
	_ Algorithm[*wire.ByteBuf, uint32] = SseBin{}
	_ Algorithm[*wire.ByteBuf, int32]  = SzseBin{}
)

// Builtins is the ordered table registered into the default registry.
func Builtins() []Service {
	return []Service{Crc16{}, Crc32{}, SseBin{}, SzseBin{}}
}
