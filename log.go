package gocombine

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var zlog atomic.Pointer[zerolog.Logger]

// SetLogger installs a structured logger used to trace subscription lifecycles at debug level.
// No logger is installed by default.
func SetLogger(l zerolog.Logger) {
	zlog.Store(&l)
}

func logger() *zerolog.Logger {
	if l := zlog.Load(); l != nil {
		return l
	}

	nop := zerolog.Nop()

	return &nop
}
