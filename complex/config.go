// File: config.go
// Role: functional-option configuration (unexported config struct,
// public Option func(*config)).
package complex

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option customizes complex construction. The zero value runs silently.
type Option func(*config)

// WithLogger attaches a zerolog.Logger that Build/BuildCached use to log one
// debug-level line per completed complex that has at least one edge
// (vertex count and top dimension).
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
