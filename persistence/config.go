// File: config.go
// Role: functional-option configuration, same unexported-config/public-
// Option(*config) idiom as package linalg and package filtration.
package persistence

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option customizes barcode computation. The zero value runs silently.
type Option func(*config)

// WithLogger attaches a zerolog.Logger that Barcodes uses to log one
// debug-level line per completed dimension (simplex count, bars emitted).
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
