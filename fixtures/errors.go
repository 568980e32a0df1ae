package fixtures

import "errors"

// ErrTooFewVertices indicates a topology's n parameter is below the
// minimum that constructor can produce meaningfully.
var ErrTooFewVertices = errors.New("fixtures: parameter too small")

// ErrInvalidProbability indicates RandomSparse's p is outside [0,1].
var ErrInvalidProbability = errors.New("fixtures: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed having been supplied.
var ErrNeedRandSource = errors.New("fixtures: rng is required")
