// Package rsa defines result types, options, and sentinel errors for the
// Routing and Spectrum Assignment engine.
package rsa

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by FindPath and ValidatePath.
var (
	// ErrNilNetwork indicates a nil *channelnet.Network was passed in.
	ErrNilNetwork = errors.New("rsa: network is nil")

	// ErrWidthRange indicates a requested segment width outside
	// [1, Network.MaxSegmentWidth()].
	ErrWidthRange = errors.New("rsa: segment width out of range")

	// ErrNodeRange indicates a source or target id outside [0, NodeCount).
	ErrNodeRange = errors.New("rsa: node id out of range")

	// ErrPathIntegrity indicates the predecessor chain of the winning
	// label could not be walked back to the source, or produced a
	// repeated node. This is an engine invariant violation, never a
	// normal query outcome.
	ErrPathIntegrity = errors.New("rsa: path reconstruction integrity violation")

	// ErrInvalidPath indicates a path handed to ValidatePath violates
	// the routing constraints (structure, continuity, or cost).
	ErrInvalidPath = errors.New("rsa: path violates routing constraints")

	// ErrBadCostBound indicates WithCostBound received a negative bound.
	ErrBadCostBound = errors.New("rsa: cost bound must be non-negative")
)

// NoChannel is the sentinel channel of endpoints: a segment belongs to
// the edges of a route, never to the source or target node itself.
const NoChannel = -1

// InfCost is the sentinel total cost of an unreachable target.
const InfCost int64 = math.MaxInt64

// PathPoint is one step of a computed route: the node arrived at and the
// start channel of the segment that was active upon arrival (NoChannel
// at the source and the target).
type PathPoint struct {
	Node    int
	Channel int
}

// Options configures a single FindPath invocation.
//
// CostBound – candidates whose accumulated cost exceeds this value are
// dropped. Default InfCost (no pruning beyond the best-first order).
type Options struct {
	CostBound int64
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithCostBound drops every candidate whose accumulated cost exceeds
// bound. Useful when the caller already holds a feasible route and only
// cares about strictly cheaper ones.
// Panics if bound < 0.
func WithCostBound(bound int64) Option {
	if bound < 0 {
		panic(fmt.Sprintf("%s: got %d", ErrBadCostBound, bound))
	}

	return func(o *Options) {
		o.CostBound = bound
	}
}

// DefaultOptions returns the Options used when no functional options are
// provided: no cost bound.
func DefaultOptions() Options {
	return Options{
		CostBound: InfCost,
	}
}
