package rsa

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spectrapath/channelnet"
)

// FindPath computes the minimum-cost route from source to target that
// carries a contiguous segment of the given width on every edge, subject
// to spectrum continuity: the segment's start channel may change only at
// the source and at nodes with conversion capability. The route never
// revisits a physical node.
//
// Returns:
//
//   - path: ordered (node, start channel) pairs; Channel is NoChannel at
//     the source and target, and the active segment's start channel at
//     every intermediate node. Empty when the target is unreachable.
//   - cost: total cost over all traversed edges, or InfCost when the
//     target is unreachable (a normal outcome, not an error).
//   - err:  validation failures (ErrNilNetwork, ErrWidthRange,
//     ErrNodeRange) or ErrPathIntegrity on reconstruction failure.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. width must be in [1, net.MaxSegmentWidth()] (ErrWidthRange).
//  3. source and target must be in [0, net.NodeCount()) (ErrNodeRange).
//
// source == target is a zero-cost, single-node route with no segment.
func FindPath(net *channelnet.Network, source, target, width int, opts ...Option) ([]PathPoint, int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the network.
	if net == nil {
		return nil, InfCost, ErrNilNetwork
	}

	// 3) Validate the requested segment width.
	if width < 1 || width > net.MaxSegmentWidth() {
		return nil, InfCost, fmt.Errorf("%w: width %d, allowed [1,%d]",
			ErrWidthRange, width, net.MaxSegmentWidth())
	}

	// 4) Validate endpoint ids.
	if source < 0 || source >= net.NodeCount() {
		return nil, InfCost, fmt.Errorf("%w: source %d of %d", ErrNodeRange, source, net.NodeCount())
	}
	if target < 0 || target >= net.NodeCount() {
		return nil, InfCost, fmt.Errorf("%w: target %d of %d", ErrNodeRange, target, net.NodeCount())
	}

	// 5) Trivial route: no edge is traversed, no segment exists.
	if source == target {
		return []PathPoint{{Node: source, Channel: NoChannel}}, 0, nil
	}

	// 6) Run the label-setting search.
	r := &runner{
		net:       net,
		options:   cfg,
		width:     width,
		source:    source,
		target:    target,
		lastStart: net.ChannelCount() - width,
	}
	win, err := r.process()
	if err != nil {
		return nil, InfCost, err
	}

	// 7) Unreachable under the constraints: normal result, not an error.
	if win == nil {
		return nil, InfCost, nil
	}

	// 8) Rebuild the route from the winning label's predecessor chain.
	path, err := reconstructPath(win, source, target)
	if err != nil {
		return nil, InfCost, err
	}

	return path, win.cost, nil
}

// label is one in-flight candidate: a node reached with a fixed active
// segment, plus the lineage that reached it. Two labels at the same node
// are distinct whenever their start channels differ, which is why plain
// per-node visited tracking cannot drive this search.
type label struct {
	cost   int64  // Accumulated cost of the lineage.
	node   int    // Node arrived at.
	start  int    // Active segment's start channel; NoChannel before the first hop.
	parent *label // Predecessor label; nil only at the source.
}

// onLineage reports whether node already appears on l's lineage,
// including l itself. O(path length) per call.
func onLineage(l *label, node int) bool {
	for cur := l; cur != nil; cur = cur.parent {
		if cur.node == node {
			return true
		}
	}

	return false
}

// runner holds the mutable state of a single FindPath execution.
type runner struct {
	net     *channelnet.Network
	options Options
	width   int
	source  int
	target  int

	lastStart int // Highest admissible start channel: ChannelCount - width.

	pq labelQueue // Min-heap of candidates ordered by accumulated cost.
}

// process runs the best-first loop. Because every cost is nonnegative
// and the heap pops candidates in non-decreasing cost order, the first
// target label popped is optimal; admissibility is lineage-dependent, so
// no per-state closed set is kept.
//
// Returns the winning label, or nil when the target is unreachable.
func (r *runner) process() (*label, error) {
	// 1) Seed the heap with the pre-first-hop state: no segment fixed yet.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &label{cost: 0, node: r.source, start: NoChannel})

	// 2) Best-first expansion.
	for r.pq.Len() > 0 {
		l := heap.Pop(&r.pq).(*label)

		// Costs only grow along the heap order; once the bound is
		// exceeded nothing cheaper remains.
		if l.cost > r.options.CostBound {
			break
		}

		// First target pop wins. Its segment is always active here:
		// source != target, so at least one edge was traversed.
		if l.node == r.target {
			return l, nil
		}

		if err := r.expand(l); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand pushes every admissible transition out of l:
//
//   - before the first hop, and out of conversion-capable nodes, the
//     segment may (re)start at any admissible channel;
//   - out of any other node the segment must continue at the exact same
//     start channel (spectrum continuity).
//
// Transitions into nodes already on l's lineage are rejected outright,
// keeping every candidate a simple path.
func (r *runner) expand(l *label) error {
	neighbors, err := r.net.Neighbors(l.node)
	if err != nil {
		return fmt.Errorf("rsa: neighbors of %d: %w", l.node, err)
	}

	free := l.start == NoChannel || r.net.SupportsConversion(l.node)
	for i := range neighbors {
		e := &neighbors[i]
		if onLineage(l, e.To) {
			continue
		}

		if free {
			for s := 0; s <= r.lastStart; s++ {
				if err := r.push(l, e, s); err != nil {
					return err
				}
			}
		} else if err := r.push(l, e, l.start); err != nil {
			return err
		}
	}

	return nil
}

// push enqueues the candidate that crosses e with the segment
// [start, start+width), unless the accumulated cost exceeds the bound.
func (r *runner) push(l *label, e *channelnet.Edge, start int) error {
	c, err := e.SegmentCost(start, r.width)
	if err != nil {
		// start is always admissible here; a failure means the edge's
		// spectrum disagrees with the network configuration.
		return fmt.Errorf("rsa: segment cost on edge to %d: %w", e.To, err)
	}

	cost := l.cost + c
	if cost > r.options.CostBound {
		return nil
	}

	heap.Push(&r.pq, &label{cost: cost, node: e.To, start: start, parent: l})

	return nil
}

// labelQueue is a min-heap of *label ordered by accumulated cost. Ties
// are broken arbitrarily: cost is the sole ordering key.
type labelQueue []*label

// Len returns the number of candidates in the heap.
func (q labelQueue) Len() int { return len(q) }

// Less defines the comparison: smaller cost → higher priority.
func (q labelQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }

// Swap swaps two elements in the heap.
func (q labelQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *label.
func (q *labelQueue) Push(x interface{}) { *q = append(*q, x.(*label)) }

// Pop removes and returns the smallest element from the heap.
func (q *labelQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
