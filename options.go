package bimap

import (
	"log/slog"

	"ocm.software/open-component-model/bindings/go/bimap/internal/index"
)

type options struct {
	logger   *slog.Logger
	capacity int
	degree   int
}

// Option configures a bimap at construction time.
type Option func(*options)

// WithLogger sets the logger debug events are written to.
// Without it slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity presizes the record storage and, for the hash based variants,
// both indexes for n pairs.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithDegree sets the degree of the B-trees backing an Ordered bimap.
// Values below 2 select the default degree.
func WithDegree(degree int) Option {
	return func(o *options) {
		o.degree = degree
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	if o.degree < 2 {
		o.degree = index.DefaultDegree
	}
	return o
}
