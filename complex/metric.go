package complex

// Metric is a distance function over points of type T. Build and
// BuildCached never assume Metric is a true metric (symmetry, triangle
// inequality) - they only ever compare its output against a scale - but a
// caller supplying something that visibly isn't (e.g. asymmetric) gets
// whatever downstream behavior that implies; nothing here checks it.
type Metric[T any] func(a, b T) float64
