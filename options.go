// File: options.go
// Role: the root package's functional-option surface, composing the
// per-subpackage Option types (distance caching, parallelism, logging)
// into one facade type.
package simplicial

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/simplicial/complex"
	"github.com/katalvlaran/simplicial/filtration"
	"github.com/katalvlaran/simplicial/homology"
)

// Option customizes any of the root-level operations. The zero value runs
// the "light" (recompute-on-demand), serial, non-logging configuration.
type Option func(*options)

type options struct {
	cacheDistances bool
	parallel       bool
	logger         zerolog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// CacheDistances selects the "fast" construction path (precompute all
// pairwise distances into an in-memory graph) when true, or the "light"
// path (recompute the metric on demand) when false, the default.
func CacheDistances(v bool) Option {
	return func(o *options) { o.cacheDistances = v }
}

// Parallel allows concurrent reduction of independent matrices/dimensions
// in linalg and homology. It never affects persistence.Barcodes'
// per-simplex reduction loop, which is sequential by necessity regardless
// of this setting.
func Parallel(v bool) Option {
	return func(o *options) { o.parallel = v }
}

// Logger attaches a zerolog.Logger threaded down to complex, filtration and
// homology (and through homology to linalg's parallel helpers). The barcode
// functions pass no options to persistence, so it stays silent. The default
// is zerolog.Nop(), which costs nothing.
func Logger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func (o *options) complexOpts() []complex.Option {
	return []complex.Option{complex.WithLogger(o.logger)}
}

func (o *options) filtrationOpts() []filtration.Option {
	return []filtration.Option{filtration.WithLogger(o.logger)}
}

func (o *options) homologyOpts() []homology.Option {
	return []homology.Option{homology.WithLogger(o.logger), homology.WithParallel(o.parallel)}
}
