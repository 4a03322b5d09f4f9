package wire

import "errors"

var (
	// ErrBufferUnderflow indicates a read requested more bytes than are currently readable.
	// The buffer is left untouched, so callers can append more data and retry.
	ErrBufferUnderflow = errors.New("wire: buffer underflow")

	// ErrOutOfRange indicates a positional write targets bytes beyond the written region.
	ErrOutOfRange = errors.New("wire: position out of range")

	// ErrLengthOverflow indicates a length or count does not fit the chosen prefix width.
	ErrLengthOverflow = errors.New("wire: length does not fit prefix width")

	// ErrNegativeCount indicates a negative byte count was passed to Skip, Peek or ReadBytes.
	ErrNegativeCount = errors.New("wire: negative byte count")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("wire: reader returned invalid count from Read")

	// ErrCorruptCount indicates a list count of zero-width elements larger than
	// MaxEmptyElements, which only a corrupt prefix produces.
	ErrCorruptCount = errors.New("wire: implausible element count")

	// ErrUnknownKey indicates a Factory has no constructor registered for a discriminant.
	ErrUnknownKey = errors.New("wire: unknown message key")

	// ErrTrailingData is returned by Unmarshal when non-zero bytes are found
	// after the expected end of the message.
	ErrTrailingData = errors.New("wire: non-zero trailing data found after decoding")

	// ErrInvalidConfig indicates a configuration value could not be interpreted.
	ErrInvalidConfig = errors.New("wire: invalid config")
)
