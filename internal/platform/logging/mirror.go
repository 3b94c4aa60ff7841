package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every emitted entry regardless of the zap core level.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Pointer[MirrorFunc]

// SetMirror installs a process-wide hook; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

func loadMirror() MirrorFunc {
	if fn := mirror.Load(); fn != nil {
		return *fn
	}
	return nil
}
