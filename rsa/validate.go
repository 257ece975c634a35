package rsa

import (
	"fmt"

	"github.com/katalvlaran/spectrapath/channelnet"
)

// ValidatePath independently checks a (path, totalCost) result against
// the routing constraints: endpoint conventions, edge existence, the
// simple-path requirement, spectrum continuity through non-converting
// nodes, and cost consistency. Tests and defensive callers use it to
// cross-check FindPath output.
//
// The final edge's channel is not recorded in the path (the target point
// carries NoChannel). When the node before the target cannot convert,
// continuity pins that channel and the cost check is exact; otherwise
// the check requires some admissible start channel to account for the
// residual cost.
//
// Returns nil for a valid result; ErrInvalidPath (with context) for any
// violation; ErrNilNetwork / ErrWidthRange on malformed arguments.
func ValidatePath(net *channelnet.Network, path []PathPoint, width int, totalCost int64) error {
	if net == nil {
		return ErrNilNetwork
	}
	if width < 1 || width > net.MaxSegmentWidth() {
		return fmt.Errorf("%w: width %d, allowed [1,%d]", ErrWidthRange, width, net.MaxSegmentWidth())
	}

	// Empty path: the unreachable result. Valid only with the InfCost sentinel.
	if len(path) == 0 {
		if totalCost != InfCost {
			return fmt.Errorf("%w: empty path with finite cost %d", ErrInvalidPath, totalCost)
		}

		return nil
	}

	// Structural sweep: ids in range, endpoint sentinels, admissible
	// intermediate channels, no repeated node.
	last := len(path) - 1
	seen := make(map[int]struct{}, len(path))
	for i, p := range path {
		if p.Node < 0 || p.Node >= net.NodeCount() {
			return fmt.Errorf("%w: node %d out of range", ErrInvalidPath, p.Node)
		}
		if _, dup := seen[p.Node]; dup {
			return fmt.Errorf("%w: node %d repeated", ErrInvalidPath, p.Node)
		}
		seen[p.Node] = struct{}{}

		switch {
		case i == 0 || i == last:
			if p.Channel != NoChannel {
				return fmt.Errorf("%w: endpoint %d carries channel %d", ErrInvalidPath, p.Node, p.Channel)
			}
		case p.Channel < 0 || p.Channel+width > net.ChannelCount():
			return fmt.Errorf("%w: segment [%d,%d) at node %d out of spectrum",
				ErrInvalidPath, p.Channel, p.Channel+width, p.Node)
		}
	}

	// Single-node route: source == target, zero cost, no segment.
	if last == 0 {
		if totalCost != 0 {
			return fmt.Errorf("%w: single-node path with cost %d", ErrInvalidPath, totalCost)
		}

		return nil
	}

	// Resolve the channel assigned to each traversed edge. Edge i runs
	// path[i] → path[i+1] and its channel is recorded at the arrival
	// point; the target's is pinned by continuity when possible.
	chans := make([]int, last)
	for i := 0; i < last; i++ {
		chans[i] = path[i+1].Channel
		if chans[i] == NoChannel && i > 0 && !net.SupportsConversion(path[i].Node) {
			chans[i] = chans[i-1]
		}
	}

	// Continuity: a non-converting node forwards the exact channel range
	// it received.
	for i := 1; i < last; i++ {
		if net.SupportsConversion(path[i].Node) {
			continue
		}
		if chans[i] != NoChannel && chans[i-1] != NoChannel && chans[i] != chans[i-1] {
			return fmt.Errorf("%w: channel changes %d→%d through non-converting node %d",
				ErrInvalidPath, chans[i-1], chans[i], path[i].Node)
		}
	}

	// Cost: every edge must exist, and the recorded channels must add up
	// to totalCost. At most the final edge can be unresolved.
	var sum int64
	unresolved := -1
	for i := 0; i < last; i++ {
		e, ok := net.EdgeBetween(path[i].Node, path[i+1].Node)
		if !ok {
			return fmt.Errorf("%w: no edge {%d,%d}", ErrInvalidPath, path[i].Node, path[i+1].Node)
		}
		if chans[i] == NoChannel {
			unresolved = i
			continue
		}
		c, err := e.SegmentCost(chans[i], width)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		sum += c
	}

	if unresolved == -1 {
		if sum != totalCost {
			return fmt.Errorf("%w: edge costs sum to %d, path reports %d", ErrInvalidPath, sum, totalCost)
		}

		return nil
	}

	// The unresolved edge must account for exactly the residual cost at
	// some admissible start channel.
	residual := totalCost - sum
	e, _ := net.EdgeBetween(path[unresolved].Node, path[unresolved+1].Node)
	for s := 0; s+width <= net.ChannelCount(); s++ {
		if c, err := e.SegmentCost(s, width); err == nil && c == residual {
			return nil
		}
	}

	return fmt.Errorf("%w: no segment on edge {%d,%d} costs the residual %d",
		ErrInvalidPath, path[unresolved].Node, path[unresolved+1].Node, residual)
}
