package wire

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used by the registries in this module.
// Nothing is logged until it is called. Encode and decode paths never log.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the installed logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}
