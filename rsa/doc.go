// Package rsa implements the Routing and Spectrum Assignment search:
// given a channelnet.Network, a source, a target and a segment width, it
// finds the minimum-cost route together with a contiguous channel range
// per hop, honoring spectrum continuity through non-converting nodes.
//
// What:
//
//   - FindPath runs a channel-augmented label-setting search (Dijkstra
//     style) over (node, start-channel) states.
//   - A segment occupies the same width channels, at the same start
//     channel, on every consecutive edge it crosses; only the source and
//     conversion-capable nodes may pick a new start channel.
//   - Every candidate carries its lineage; a route never revisits a
//     physical node, even when a revisit would look legal in the
//     augmented state space.
//   - The winning route is rebuilt by walking predecessor links and is
//     emitted as (node, start channel) pairs, with -1 at both endpoints.
//
// Why:
//
//   - Elastic optical networks: place a lightpath of 1–3 adjacent
//     spectrum slots at minimum total cost.
//   - Any lane-constrained routing where switching lanes is a privilege
//     of specific nodes.
//
// Complexity:
//
//   - Each expansion from the source or a converting node fans out to
//     O(W) start channels per incident edge; continuity hops are O(1).
//   - The simple-path constraint makes admissibility lineage-dependent,
//     so no per-state closed set is kept; the queue is bounded by the
//     number of distinct simple-path lineages (finite: length ≤ N).
//   - The lineage membership check walks the predecessor chain,
//     O(path length) per candidate edge.
//
// Options:
//
//   - WithCostBound: drop any candidate whose accumulated cost exceeds
//     the bound (branch-and-bound style pruning).
//
// Errors:
//
//   - ErrNilNetwork: nil *channelnet.Network.
//   - ErrWidthRange: width outside [1, Network.MaxSegmentWidth()].
//   - ErrNodeRange: source or target outside [0, NodeCount).
//   - ErrPathIntegrity: predecessor-chain reconstruction failed; an
//     engine bug surfaced loudly instead of a corrupt path.
//   - ErrInvalidPath: ValidatePath found a constraint violation.
//
// "Target unreachable" is a normal outcome, not an error: FindPath
// returns an empty path with the InfCost sentinel.
package rsa
