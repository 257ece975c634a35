package channelnet

import "fmt"

// Edge is one directed half of an undirected link: the adjacency list of
// node u holds an Edge{To: v} and the list of v holds the mirror
// Edge{To: u}. Both halves share the same cost vector and prefix sums,
// since traversal cost is direction-independent.
type Edge struct {
	To int // Neighbor node id.

	costs  []int64 // Per-channel traversal costs, length == ChannelCount.
	prefix []int64 // prefix[i] = sum of costs[0:i]; length == ChannelCount+1.
}

// ChannelCount returns the number of channels carried by this edge.
func (e *Edge) ChannelCount() int { return len(e.costs) }

// ChannelCost returns the traversal cost of a single channel.
// Returns ErrSegmentBounds if ch is outside [0, ChannelCount).
func (e *Edge) ChannelCost(ch int) (int64, error) {
	if ch < 0 || ch >= len(e.costs) {
		return 0, fmt.Errorf("%w: channel %d of %d", ErrSegmentBounds, ch, len(e.costs))
	}

	return e.costs[ch], nil
}

// SegmentCost returns the summed cost of the contiguous channel range
// [start, start+width) on this edge, in O(1) via the precomputed prefix
// sums. Returns ErrSegmentBounds unless 0 ≤ start, width ≥ 1 and
// start+width ≤ ChannelCount.
func (e *Edge) SegmentCost(start, width int) (int64, error) {
	if start < 0 || width < 1 || start+width > len(e.costs) {
		return 0, fmt.Errorf("%w: segment [%d,%d) of %d channels",
			ErrSegmentBounds, start, start+width, len(e.costs))
	}

	return e.prefix[start+width] - e.prefix[start], nil
}

// Network is an undirected channelized topology. It is mutable only
// through AddEdge and SetConversionCapability during construction;
// queries treat it as read-only, so independent searches may share one
// Network concurrently once construction is done.
type Network struct {
	channelCount    int
	maxSegmentWidth int

	converts []bool   // converts[v] – node v may change a segment's channel range.
	adj      [][]Edge // adj[v] – edges incident to v.
}

// NewNetwork creates an empty Network with nodeCount nodes (ids
// 0..nodeCount-1), no edges, and no conversion-capable nodes.
//
// Returns ErrNodeCount if nodeCount ≤ 0, and ErrSegmentWidth if the
// configured MaxSegmentWidth exceeds the channel count.
func NewNetwork(nodeCount int, opts ...Option) (*Network, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the node count and the option cross-constraints.
	//    Option constructors already reject non-positive values.
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNodeCount, nodeCount)
	}
	if cfg.MaxSegmentWidth > cfg.ChannelCount {
		return nil, fmt.Errorf("%w: width %d, channels %d",
			ErrSegmentWidth, cfg.MaxSegmentWidth, cfg.ChannelCount)
	}

	// 3) Allocate per-node storage.
	return &Network{
		channelCount:    cfg.ChannelCount,
		maxSegmentWidth: cfg.MaxSegmentWidth,
		converts:        make([]bool, nodeCount),
		adj:             make([][]Edge, nodeCount),
	}, nil
}

// NodeCount returns the number of nodes in the network.
func (n *Network) NodeCount() int { return len(n.adj) }

// ChannelCount returns the number of channels per edge (W).
func (n *Network) ChannelCount() int { return n.channelCount }

// MaxSegmentWidth returns the widest segment a query may request.
func (n *Network) MaxSegmentWidth() int { return n.maxSegmentWidth }

// AddEdge inserts the undirected edge {u, v} with the given per-channel
// cost vector, shared by both traversal directions.
//
// Validation (in order):
//  1. u and v must be in [0, NodeCount) – ErrNodeRange.
//  2. len(costs) must equal ChannelCount – ErrCostLength.
//  3. Every cost must be ≥ 0 – ErrNegativeCost. The search engine's
//     optimality argument needs nonnegative costs, so the invariant is
//     enforced here at the construction boundary.
//
// The vector is copied; the caller keeps ownership of costs. Prefix sums
// are built once here so segment-cost lookups stay O(1).
func (n *Network) AddEdge(u, v int, costs []int64) error {
	if u < 0 || u >= len(n.adj) || v < 0 || v >= len(n.adj) {
		return fmt.Errorf("%w: edge {%d,%d} on %d nodes", ErrNodeRange, u, v, len(n.adj))
	}
	if len(costs) != n.channelCount {
		return fmt.Errorf("%w: got %d, want %d", ErrCostLength, len(costs), n.channelCount)
	}

	// Copy the vector and accumulate prefix sums in one pass.
	owned := make([]int64, len(costs))
	prefix := make([]int64, len(costs)+1)
	for i, c := range costs {
		if c < 0 {
			return fmt.Errorf("%w: channel %d cost %d", ErrNegativeCost, i, c)
		}
		owned[i] = c
		prefix[i+1] = prefix[i] + c
	}

	// Both half-edges share the same backing arrays; they are never
	// mutated after this point.
	n.adj[u] = append(n.adj[u], Edge{To: v, costs: owned, prefix: prefix})
	n.adj[v] = append(n.adj[v], Edge{To: u, costs: owned, prefix: prefix})

	return nil
}

// SetConversionCapability marks whether node may change a segment's
// channel range when a route passes through it.
// Returns ErrNodeRange if node is outside [0, NodeCount).
func (n *Network) SetConversionCapability(node int, ok bool) error {
	if node < 0 || node >= len(n.adj) {
		return fmt.Errorf("%w: node %d of %d", ErrNodeRange, node, len(n.adj))
	}
	n.converts[node] = ok

	return nil
}

// SupportsConversion reports whether node may change a segment's channel
// range. Out-of-range ids report false.
func (n *Network) SupportsConversion(node int) bool {
	if node < 0 || node >= len(n.converts) {
		return false
	}

	return n.converts[node]
}

// Neighbors returns the edges incident to u. The returned slice is a
// read-only view into the adjacency list; callers must not modify it.
// Returns ErrNodeRange if u is outside [0, NodeCount).
func (n *Network) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= len(n.adj) {
		return nil, fmt.Errorf("%w: node %d of %d", ErrNodeRange, u, len(n.adj))
	}

	return n.adj[u], nil
}

// EdgeBetween returns one traversal half-edge u→v, if the undirected
// edge {u,v} exists. When parallel edges exist, the first inserted one
// is returned.
func (n *Network) EdgeBetween(u, v int) (Edge, bool) {
	if u < 0 || u >= len(n.adj) {
		return Edge{}, false
	}
	for _, e := range n.adj[u] {
		if e.To == v {
			return e, true
		}
	}

	return Edge{}, false
}
