package edgeset

import "errors"

// ErrNegativeWeight indicates that Add was called with a negative weight.
// Weights must be non-negative finite reals; the dynamic SSSP engine built
// on top of EdgeSet has no defined behavior for negative weights.
var ErrNegativeWeight = errors.New("edgeset: weight must be non-negative")
