// File: config.go
// Role: functional-option configuration, same unexported-config/public-
// Option(*config) idiom as package linalg and package filtration.
package homology

import "github.com/rs/zerolog"

type config struct {
	logger   zerolog.Logger
	parallel bool
}

// Option customizes homology computation. The zero value runs silently and
// serially.
type Option func(*config)

// WithLogger attaches a zerolog.Logger forwarded to the per-dimension
// rank/SNF dispatch, so each dimension's result is logged as it completes.
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithParallel allows the independent per-dimension rank/SNF computations
// to run concurrently (one goroutine per dimension, via
// linalg.RankAllParallel/SNFAllParallel). The default is serial; both paths
// produce identical results, since every dimension's computation is
// independent of the others.
func WithParallel(v bool) Option {
	return func(c *config) { c.parallel = v }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
