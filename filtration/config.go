// File: config.go
// Role: functional-option configuration, same unexported-config/public-
// Option(*config) idiom as package complex and package linalg.
package filtration

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option customizes filtration construction. The zero value runs silently.
type Option func(*config)

// WithLogger attaches a zerolog.Logger that Build/BuildCached use to log one
// debug-level line per completed filtration. The default is zerolog.Nop().
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
