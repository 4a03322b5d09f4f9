package checksum

import "errors"

var (
	// ErrNotFound indicates no algorithm is registered under the requested name.
	ErrNotFound = errors.New("checksum: algorithm not found")

	// ErrTypeMismatch indicates the registered algorithm does not have the requested input/output types.
	ErrTypeMismatch = errors.New("checksum: algorithm type mismatch")

	// ErrDuplicate indicates an algorithm name is already registered. The existing entry is kept.
	ErrDuplicate = errors.New("checksum: algorithm already registered")

	// ErrNilService indicates Register was called with a nil algorithm.
	ErrNilService = errors.New("checksum: nil algorithm")

	// ErrMismatch indicates a trailing checksum does not match the recomputed value.
	ErrMismatch = errors.New("checksum: mismatch")

	// ErrUnsupportedOutput indicates an algorithm's result cannot be written as a trailer.
	ErrUnsupportedOutput = errors.New("checksum: unsupported output type")
)
