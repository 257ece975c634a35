package rsa

import "fmt"

// reconstructPath walks the predecessor chain of the winning label back
// to the source and emits the route in forward order.
//
// Contract: the chain must end at a label whose node is the source, and
// no node may appear twice. Either failure is an engine invariant
// violation surfaced as ErrPathIntegrity, never a silently truncated
// path.
//
// The start channel recorded at each point is the active segment's start
// upon arrival at that node; the source and target points are overridden
// to NoChannel, since their assignment belongs to the incident edges.
func reconstructPath(win *label, source, target int) ([]PathPoint, error) {
	// 1) Collect the chain target → source.
	var chain []*label
	for l := win; l != nil; l = l.parent {
		chain = append(chain, l)
	}

	// 2) The chain root must be the source.
	if root := chain[len(chain)-1]; root.node != source {
		return nil, fmt.Errorf("%w: chain ends at node %d, want source %d",
			ErrPathIntegrity, root.node, source)
	}

	// 3) Reverse into forward order, re-checking the simple-path
	//    invariant the guard is supposed to maintain.
	path := make([]PathPoint, 0, len(chain))
	seen := make(map[int]struct{}, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		l := chain[i]
		if _, dup := seen[l.node]; dup {
			return nil, fmt.Errorf("%w: node %d repeated", ErrPathIntegrity, l.node)
		}
		seen[l.node] = struct{}{}

		ch := l.start
		if l.node == source || l.node == target {
			ch = NoChannel
		}
		path = append(path, PathPoint{Node: l.node, Channel: ch})
	}

	return path, nil
}
