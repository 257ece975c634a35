package rsa_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectrapath/channelnet"
	"github.com/katalvlaran/spectrapath/netbuild"
	"github.com/katalvlaran/spectrapath/rsa"
)

// BenchmarkFindPath_Mixed measures a width-3 query on a 12-node random
// topology with the default 100-channel spectrum and mixed conversion
// capability.
func BenchmarkFindPath_Mixed(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	net, err := netbuild.RandomConnected(12, 8, netbuild.UniformCosts(1, 20), rng)
	if err != nil {
		b.Fatalf("setup RandomConnected failed: %v", err)
	}
	for v := 0; v < net.NodeCount(); v++ {
		_ = net.SetConversionCapability(v, rng.Intn(2) == 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = rsa.FindPath(net, 0, 11, 3); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_ContinuityChain measures the continuity fast path:
// on a 50-node non-converting chain only the first hop fans out over
// the spectrum, every later hop is a single forced transition.
func BenchmarkFindPath_ContinuityChain(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	net, err := netbuild.Chain(50, netbuild.UniformCosts(1, 20), rng,
		channelnet.WithChannelCount(100))
	if err != nil {
		b.Fatalf("setup Chain failed: %v", err)
	}
	for v := 0; v < net.NodeCount(); v++ {
		_ = net.SetConversionCapability(v, false)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = rsa.FindPath(net, 0, 49, 1); err != nil {
			b.Fatal(err)
		}
	}
}
