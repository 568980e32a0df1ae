package walk

import (
	"math"

	"github.com/graphwalk/n2vcore/n2verr"
)

// Params configures one Driver.Walk call (spec §4.6). All four biases
// default to 1.0 and MinLength defaults to 0 when Params is built with
// DefaultParams.
type Params struct {
	// Length is the target walk length L; every walk emits at most Length
	// nodes.
	Length int

	// Iterations is the number of walks started per node; spec §4.6:
	// iterations*N walks total, grouped by starting node.
	Iterations int

	// MinLength discards walks whose final length is strictly less than
	// this value. 0 disables filtering.
	MinLength int

	// ReturnWeight, ExploreWeight, ChangeNodeTypeWeight, and
	// ChangeEdgeTypeWeight are the four scalar biases of spec §4.4; each
	// must be finite and > 0.
	ReturnWeight          float64
	ExploreWeight         float64
	ChangeNodeTypeWeight  float64
	ChangeEdgeTypeWeight  float64

	// Seed parameterizes the per-task RNG derivation (walk.rngForTask).
	// 0 means "use the fixed default seed", not "unseeded".
	Seed int64

	// Workers caps the worker pool size; 0 means "use runtime.NumCPU()".
	Workers int
}

// DefaultParams returns Params with every bias at 1.0, MinLength 0, and
// Workers 0 (auto-detect), leaving Length/Iterations at their zero values
// for the caller to fill in.
func DefaultParams() Params {
	return Params{
		ReturnWeight:         1.0,
		ExploreWeight:        1.0,
		ChangeNodeTypeWeight: 1.0,
		ChangeEdgeTypeWeight: 1.0,
	}
}

// validate enforces spec §4.7/§7: every bias finite and > 0, Length >= 1,
// Iterations >= 1, 0 <= MinLength <= Length, Workers >= 0. It names the
// first offending parameter rather than reporting all violations, so
// dispatch can fail fast before any walk runs.
func (p Params) validate() error {
	if err := validateBias("return_weight", p.ReturnWeight); err != nil {
		return err
	}
	if err := validateBias("explore_weight", p.ExploreWeight); err != nil {
		return err
	}
	if err := validateBias("change_node_type_weight", p.ChangeNodeTypeWeight); err != nil {
		return err
	}
	if err := validateBias("change_edge_type_weight", p.ChangeEdgeTypeWeight); err != nil {
		return err
	}
	if p.Length < 1 {
		return n2verr.Wrap("length", n2verr.ErrBadLength)
	}
	if p.Iterations < 1 {
		return n2verr.Wrap("iterations", n2verr.ErrBadIterations)
	}
	if p.MinLength < 0 || p.MinLength > p.Length {
		return n2verr.Wrap("min_length", n2verr.ErrBadMinLength)
	}
	if p.Workers < 0 {
		return n2verr.Wrap("workers", n2verr.ErrBadWorkers)
	}

	return nil
}

func validateBias(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return n2verr.Wrap(name, n2verr.ErrBadBias)
	}

	return nil
}
