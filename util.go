package wire

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order of new buffers.
	Order binary.ByteOrder = LE
)

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// orderOf maps the big-endian flag used by the flag-selected accessors to a byte order.
func orderOf(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return BE
	}
	return LE
}

// MaxPadding defines the maximum number of trailing bytes Unmarshal tolerates.
// Anything larger is considered a protocol error.
const MaxPadding = 1024 // 1KB

// CheckBufferNotZeros verifies that every byte of p is zero.
// Parsers use it to make sure the whole payload was consumed and no
// garbage follows, which could indicate a bug or a malicious payload.
func CheckBufferNotZeros(p []byte) error {
	if len(p) > MaxPadding {
		return fmt.Errorf("%w: %d bytes exceeds maximum expected padding of %d bytes", ErrTrailingData, len(p), MaxPadding)
	}
	for i, b := range p {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}
