package trace

import (
	"fmt"
	"io"
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/sanity-io/litter"
	"go.uber.org/zap"
)

// Dumper writes each traced call, and optionally its parameters, to w.
type Dumper struct {
	mu     sync.Mutex
	w      io.Writer
	params bool
	opts   litter.Options
}

type DumperOption func(*Dumper)

// WithParams includes the parameter record of every call.
func WithParams() DumperOption {
	return func(d *Dumper) { d.params = true }
}

func NewDumper(w io.Writer, opts ...DumperOption) *Dumper {
	d := &Dumper{
		w: w,
		opts: litter.Options{
			Compact:           true,
			StripPackageNames: true,
			HideZeroValues:    true,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Hook matches the Hook signature so a Dumper can feed Uniform.
func (d *Dumper) Hook(op ddi.OpID, params any, result ze.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.params {
		fmt.Fprintf(d.w, "%s -> %s\n", op, result)
		return
	}
	fmt.Fprintf(d.w, "%s -> %s %s\n", op, result, d.opts.Sdump(params))
}

// LogHook reports failed calls to logger at debug level.
func LogHook(logger *zap.Logger) Hook {
	return func(op ddi.OpID, _ any, result ze.Result) {
		if result == ze.ResultSuccess {
			return
		}
		logger.Debug("Call failed", zap.Stringer("op", op), zap.Stringer("result", result))
	}
}
