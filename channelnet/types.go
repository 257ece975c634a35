// Package channelnet defines core types, options, and sentinel errors
// for the channelnet subpackage of github.com/katalvlaran/spectrapath.
package channelnet

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and lookups.
var (
	// ErrNodeCount indicates a non-positive node count was requested.
	ErrNodeCount = errors.New("channelnet: network must have at least one node")
	// ErrChannelCount indicates a non-positive channel count option.
	ErrChannelCount = errors.New("channelnet: channel count must be positive")
	// ErrSegmentWidth indicates MaxSegmentWidth outside [1, ChannelCount].
	ErrSegmentWidth = errors.New("channelnet: max segment width must be in [1, channel count]")
	// ErrNodeRange indicates a node id outside [0, NodeCount).
	ErrNodeRange = errors.New("channelnet: node id out of range")
	// ErrCostLength indicates a cost vector whose length differs from the channel count.
	ErrCostLength = errors.New("channelnet: cost vector length must equal channel count")
	// ErrNegativeCost indicates a negative per-channel cost.
	ErrNegativeCost = errors.New("channelnet: channel cost must be non-negative")
	// ErrSegmentBounds indicates a segment lookup outside the spectrum bounds.
	ErrSegmentBounds = errors.New("channelnet: segment exceeds channel bounds")
)

// Default capacities of the reference domain: 100 channels per edge,
// segments up to 3 adjacent channels wide.
const (
	DefaultChannelCount    = 100
	DefaultMaxSegmentWidth = 3
)

// Options configures a Network under construction.
//
// ChannelCount    – number of spectrum channels per edge (W). Must be > 0.
// MaxSegmentWidth – widest contiguous segment a query may request.
//
//	Must satisfy 1 ≤ MaxSegmentWidth ≤ ChannelCount (checked in NewNetwork).
type Options struct {
	ChannelCount    int // Channels per edge; every cost vector has this length.
	MaxSegmentWidth int // Upper bound on requested segment widths.
}

// Option represents a functional option for configuring a Network.
type Option func(*Options)

// WithChannelCount sets the number of channels per edge.
// Panics if w ≤ 0; the full cross-check against MaxSegmentWidth happens
// in NewNetwork, once both values are known.
func WithChannelCount(w int) Option {
	if w <= 0 {
		panic(fmt.Sprintf("%s: got %d", ErrChannelCount, w))
	}

	return func(o *Options) {
		o.ChannelCount = w
	}
}

// WithMaxSegmentWidth sets the widest segment a query may request.
// Panics if m ≤ 0; the upper bound against ChannelCount is validated
// in NewNetwork.
func WithMaxSegmentWidth(m int) Option {
	if m <= 0 {
		panic(fmt.Sprintf("%s: got %d", ErrSegmentWidth, m))
	}

	return func(o *Options) {
		o.MaxSegmentWidth = m
	}
}

// DefaultOptions returns the Options of the reference domain:
// 100 channels per edge, segments up to width 3.
func DefaultOptions() Options {
	return Options{
		ChannelCount:    DefaultChannelCount,
		MaxSegmentWidth: DefaultMaxSegmentWidth,
	}
}
