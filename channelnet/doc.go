// Package channelnet models a channelized optical network: an undirected
// graph whose edges carry a fixed-size vector of per-channel traversal
// costs and whose nodes may or may not support spectrum conversion.
//
// What:
//
//   - Network wraps an adjacency-list topology with per-edge channel-cost
//     vectors and per-node conversion capability.
//   - Every edge precomputes cumulative channel-cost sums, so the cost of
//     any contiguous channel segment is an O(1) lookup (Edge.SegmentCost).
//   - Channel count and maximum segment width are per-Network
//     configuration, not compile-time constants.
//
// Why:
//
//   - Elastic optical networks: plan lightpaths over flexible spectrum.
//   - Any routing domain where an edge offers parallel lanes with
//     individual prices and a traversal occupies a contiguous lane range.
//
// Complexity:
//
//   - AddEdge:          O(W) per edge (cost copy + prefix sums).
//   - Edge.SegmentCost: O(1).
//   - Memory:           O(E×W).
//
// Options:
//
//   - WithChannelCount: number of channels per edge (default 100).
//   - WithMaxSegmentWidth: widest allowed segment (default 3).
//
// Errors:
//
//   - ErrNodeCount: network must have at least one node.
//   - ErrSegmentWidth: max segment width outside [1, channel count].
//   - ErrNodeRange: node id outside [0, NodeCount).
//   - ErrCostLength: cost vector length differs from the channel count.
//   - ErrNegativeCost: a channel cost is negative.
//   - ErrSegmentBounds: requested segment exceeds the spectrum bounds.
//
// A Network is built once (single writer) and is read-only afterwards;
// independent queries may then share it concurrently.
package channelnet
