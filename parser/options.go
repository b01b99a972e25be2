package parser

import (
	"go.uber.org/zap"
)

// Options configures a parse
type Options struct {
	// MaxDepth caps the nesting depth of groups, zero means unbounded.
	MaxDepth int

	Logger *zap.Logger
}

// Option modifies Options
type Option func(*Options)

// WithMaxDepth fails the parse with NestingTooDeep when groups are nested
// more than n levels deep.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithLogger sets the logger that receives debug messages while parsing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.MaxDepth < 0 {
		o.MaxDepth = 0
	}
	return o
}
