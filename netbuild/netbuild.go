package netbuild

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spectrapath/channelnet"
)

// Chain builds the path topology 0–1–…–(n-1), each edge priced by fn.
// Every node is conversion-capable; flip individual nodes afterwards
// with SetConversionCapability.
// Panics if n ≤ 0 or fn is nil; channelnet construction errors are
// returned as-is.
func Chain(n int, fn CostFn, rng *rand.Rand, opts ...channelnet.Option) (*channelnet.Network, error) {
	net, err := allConverting(n, fn, opts...)
	if err != nil {
		return nil, err
	}

	for u := 0; u+1 < n; u++ {
		if err = net.AddEdge(u, u+1, Vector(net.ChannelCount(), fn, rng)); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// Ring builds the cycle topology 0–1–…–(n-1)–0, each edge priced by fn.
// Requires n ≥ 3 for a proper cycle; panics otherwise.
func Ring(n int, fn CostFn, rng *rand.Rand, opts ...channelnet.Option) (*channelnet.Network, error) {
	if n < 3 {
		panic(fmt.Sprintf("Ring: need at least 3 nodes, got %d", n))
	}
	net, err := allConverting(n, fn, opts...)
	if err != nil {
		return nil, err
	}

	for u := 0; u < n; u++ {
		if err = net.AddEdge(u, (u+1)%n, Vector(net.ChannelCount(), fn, rng)); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// RandomConnected builds a chain backbone 0–1–…–(n-1) (guaranteeing
// connectivity) plus extra random edges between distinct node pairs,
// each priced by fn. Self-loops and already-connected pairs are
// skipped, so the result is a simple graph with at most extra
// additional edges.
// Panics if n ≤ 0, extra < 0 or fn is nil. rng may be nil only when fn
// ignores it; the topology itself then degenerates to the bare chain.
func RandomConnected(n, extra int, fn CostFn, rng *rand.Rand, opts ...channelnet.Option) (*channelnet.Network, error) {
	if extra < 0 {
		panic(fmt.Sprintf("RandomConnected: extra must be ≥ 0, got %d", extra))
	}

	net, err := Chain(n, fn, rng, opts...)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return net, nil
	}

	for i := 0; i < extra; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, ok := net.EdgeBetween(u, v); ok {
			continue
		}
		if err = net.AddEdge(u, v, Vector(net.ChannelCount(), fn, rng)); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// allConverting creates an n-node network with every node marked
// conversion-capable.
func allConverting(n int, fn CostFn, opts ...channelnet.Option) (*channelnet.Network, error) {
	if n <= 0 {
		panic(fmt.Sprintf("netbuild: node count must be > 0, got %d", n))
	}
	if fn == nil {
		panic("netbuild: cost function must be non-nil")
	}

	net, err := channelnet.NewNetwork(n, opts...)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if err = net.SetConversionCapability(v, true); err != nil {
			return nil, err
		}
	}

	return net, nil
}
