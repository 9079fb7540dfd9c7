package entsql

import "log/slog"

// options configures a Builder.
type options struct {
	logger *slog.Logger
	bind   bool
	strict bool
}

// Option configures a Builder.
type Option func(*options)

// WithBoundParams renders values as @pN placeholders and returns them as
// arguments from Build instead of inlining them as literals. Bool constants
// are truth predicates and stay inline.
func WithBoundParams() Option {
	return func(o *options) {
		o.bind = true
	}
}

// WithStrictAliases rejects multi-entity expressions whose parameter names
// are not declared as aliases, in the registry, on FROM or on a JOIN.
func WithStrictAliases() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
