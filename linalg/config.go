// File: config.go
// Role: the package's functional-option configuration: an unexported
// config struct, a public Option func(*config), and With... constructors.
package linalg

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option configures the parallel dispatch helpers (RankAllParallel,
// SNFAllParallel). The zero value of config runs silently.
type Option func(*config)

// WithLogger attaches a zerolog.Logger that RankAllParallel and
// SNFAllParallel use to emit one debug-level line per completed matrix,
// including its index and either its computed rank (RankAllParallel) or
// its error, if any (SNFAllParallel). The default is
// zerolog.Nop(), which costs nothing.
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
