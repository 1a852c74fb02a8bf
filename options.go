package bindhtml

import (
	"strconv"

	"go.uber.org/zap"
)

// Mode selects how a Binder reproduces start tags.
type Mode int

// Mode values.
const (
	// Verbatim reproduces every tag exactly as written.
	Verbatim Mode = iota
	// Normalizing rebuilds start tags with double-quoted, escaped attribute values.
	Normalizing
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Verbatim:
		return "Verbatim"
	case Normalizing:
		return "Normalizing"
	}
	return "Invalid(" + strconv.Itoa(int(m)) + ")"
}

// Option configures a Binder.
type Option func(*Binder)

// WithMode sets the reproduction mode, the default is Verbatim.
func WithMode(mode Mode) Option {
	return func(b *Binder) {
		b.mode = mode
	}
}

// WithTrim strips whitespace surrounding attribute values in Normalizing mode.
func WithTrim(trim bool) Option {
	return func(b *Binder) {
		b.trim = trim
	}
}

// WithHooks sets the hooks that may rewrite start tags and text.
func WithHooks(hooks Hooks) Option {
	return func(b *Binder) {
		b.hooks = hooks
	}
}

// WithLogger sets the logger for diagnostics, by default nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(b *Binder) {
		if log == nil {
			log = zap.NewNop()
		}
		b.log = log
	}
}
