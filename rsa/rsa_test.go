package rsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spectrapath/channelnet"
	"github.com/katalvlaran/spectrapath/netbuild"
	"github.com/katalvlaran/spectrapath/rsa"
)

// chain3 builds a 3-node chain 0–1–2 over w channels with the given
// edge cost vectors; every node's conversion flag is set explicitly.
func chain3(t require.TestingT, w int, e01, e12 []int64, converts [3]bool) *channelnet.Network {
	net, err := channelnet.NewNetwork(3, channelnet.WithChannelCount(w))
	require.NoError(t, err)
	require.NoError(t, net.AddEdge(0, 1, e01))
	require.NoError(t, net.AddEdge(1, 2, e12))
	for v, ok := range converts {
		require.NoError(t, net.SetConversionCapability(v, ok))
	}

	return net
}

// FindPathSuite exercises the engine under the reference scenarios.
type FindPathSuite struct {
	suite.Suite
}

// TestConstantChain: 0–1–2 with flat costs 5 then 3, width 1, node 1
// non-converting. Any channel works; total is 5+3.
func (s *FindPathSuite) TestConstantChain() {
	net := chain3(s.T(), 100,
		netbuild.Vector(100, netbuild.ConstantCosts(5), nil),
		netbuild.Vector(100, netbuild.ConstantCosts(3), nil),
		[3]bool{true, false, true})

	path, cost, err := rsa.FindPath(net, 0, 2, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), cost)
	require.Len(s.T(), path, 3)
	require.Equal(s.T(), rsa.PathPoint{Node: 0, Channel: rsa.NoChannel}, path[0])
	require.Equal(s.T(), 1, path[1].Node)
	require.Equal(s.T(), rsa.PathPoint{Node: 2, Channel: rsa.NoChannel}, path[2])
	require.NoError(s.T(), rsa.ValidatePath(net, path, 1, cost))
}

// TestConversionPicksCheapestPerEdge: with conversion at node 1 the
// engine mixes channel 1 on the first edge and channel 0 on the second.
func (s *FindPathSuite) TestConversionPicksCheapestPerEdge() {
	net := chain3(s.T(), 4,
		[]int64{100, 1, 10, 10},
		[]int64{1, 100, 10, 10},
		[3]bool{true, true, true})

	path, cost, err := rsa.FindPath(net, 0, 2, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), cost)
	require.Equal(s.T(), 1, path[1].Channel, "first hop should ride channel 1")
	require.NoError(s.T(), rsa.ValidatePath(net, path, 1, cost))
}

// TestContinuityForcesSameChannel: same cost vectors, but node 1 cannot
// convert, so both edges must share one channel; the cheap mixed
// combination becomes inadmissible.
func (s *FindPathSuite) TestContinuityForcesSameChannel() {
	net := chain3(s.T(), 4,
		[]int64{100, 1, 10, 10},
		[]int64{1, 100, 10, 10},
		[3]bool{true, false, true})

	path, cost, err := rsa.FindPath(net, 0, 2, 1)
	require.NoError(s.T(), err)
	// Same channel on both edges: min over c of e01[c]+e12[c] = 10+10.
	require.Equal(s.T(), int64(20), cost)
	require.GreaterOrEqual(s.T(), path[1].Channel, 2)
	require.NoError(s.T(), rsa.ValidatePath(net, path, 1, cost))
}

// TestWidthThreeSingleEdge: ascending costs 1..100, width 3. The
// cheapest contiguous triple is channels 0..2.
func (s *FindPathSuite) TestWidthThreeSingleEdge() {
	net, err := channelnet.NewNetwork(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), net.AddEdge(0, 1, netbuild.Vector(100, netbuild.LinearCosts(1, 1), nil)))

	path, cost, err := rsa.FindPath(net, 0, 1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), cost) // 1+2+3
	require.Len(s.T(), path, 2)
	require.Equal(s.T(), rsa.NoChannel, path[0].Channel)
	require.Equal(s.T(), rsa.NoChannel, path[1].Channel)
	require.NoError(s.T(), rsa.ValidatePath(net, path, 3, cost))
}

// TestUnreachable: no edge sequence connects the endpoints; the result
// is the empty path with the InfCost sentinel and no error.
func (s *FindPathSuite) TestUnreachable() {
	net, err := channelnet.NewNetwork(3, channelnet.WithChannelCount(4))
	require.NoError(s.T(), err)
	require.NoError(s.T(), net.AddEdge(0, 1, []int64{1, 1, 1, 1}))

	path, cost, err := rsa.FindPath(net, 0, 2, 1)
	require.NoError(s.T(), err)
	require.Empty(s.T(), path)
	require.Equal(s.T(), rsa.InfCost, cost)
	require.NoError(s.T(), rsa.ValidatePath(net, path, 1, cost))
}

// TestSourceEqualsTarget: zero-cost single-node route, sentinel channel.
func (s *FindPathSuite) TestSourceEqualsTarget() {
	net, err := channelnet.NewNetwork(2, channelnet.WithChannelCount(4))
	require.NoError(s.T(), err)

	path, cost, err := rsa.FindPath(net, 1, 1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []rsa.PathPoint{{Node: 1, Channel: rsa.NoChannel}}, path)
	require.Equal(s.T(), int64(0), cost)
	require.NoError(s.T(), rsa.ValidatePath(net, path, 2, cost))
}

// TestWidthTwoContinuityChain: a 4-node chain whose interior cannot
// convert. Width-2 segments must keep one start channel end to end;
// start 1 is the unique optimum.
func (s *FindPathSuite) TestWidthTwoContinuityChain() {
	net, err := channelnet.NewNetwork(4, channelnet.WithChannelCount(4))
	require.NoError(s.T(), err)
	require.NoError(s.T(), net.AddEdge(0, 1, []int64{5, 1, 1, 5}))
	require.NoError(s.T(), net.AddEdge(1, 2, []int64{1, 1, 9, 9}))
	require.NoError(s.T(), net.AddEdge(2, 3, []int64{9, 1, 1, 9}))

	path, cost, err := rsa.FindPath(net, 0, 3, 2)
	require.NoError(s.T(), err)
	// Forced same start s on all edges: s=0 → 6+2+10=18, s=1 → 2+10+2=14,
	// s=2 → 6+18+10=34.
	require.Equal(s.T(), int64(14), cost)
	require.Equal(s.T(), 1, path[1].Channel)
	require.Equal(s.T(), 1, path[2].Channel)
	require.NoError(s.T(), rsa.ValidatePath(net, path, 2, cost))

	// With conversion everywhere each edge picks its own cheapest pair.
	for v := 0; v < 4; v++ {
		require.NoError(s.T(), net.SetConversionCapability(v, true))
	}
	_, cost, err = rsa.FindPath(net, 0, 3, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), cost) // 2+2+2
}

// TestSimplePathGuard: a zero-cost walk exists only by bouncing through
// a converting spur and revisiting node 1; the guard must reject it and
// settle for the best simple path.
func (s *FindPathSuite) TestSimplePathGuard() {
	net, err := channelnet.NewNetwork(4, channelnet.WithChannelCount(2))
	require.NoError(s.T(), err)
	require.NoError(s.T(), net.AddEdge(0, 1, []int64{0, 100}))
	require.NoError(s.T(), net.AddEdge(1, 2, []int64{100, 0}))
	require.NoError(s.T(), net.AddEdge(1, 3, []int64{0, 0}))
	require.NoError(s.T(), net.SetConversionCapability(3, true))

	path, cost, err := rsa.FindPath(net, 0, 2, 1)
	require.NoError(s.T(), err)
	// 0→1→3(convert)→1→2 would cost 0 but revisits node 1.
	require.Equal(s.T(), int64(100), cost)
	require.Equal(s.T(), []int{0, 1, 2}, nodesOf(path))
	require.NoError(s.T(), rsa.ValidatePath(net, path, 1, cost))
}

// TestCostBound: pruning below the optimum turns the query unreachable;
// at the optimum the route is still found.
func (s *FindPathSuite) TestCostBound() {
	net := chain3(s.T(), 4,
		netbuild.Vector(4, netbuild.ConstantCosts(5), nil),
		netbuild.Vector(4, netbuild.ConstantCosts(3), nil),
		[3]bool{true, false, true})

	path, cost, err := rsa.FindPath(net, 0, 2, 1, rsa.WithCostBound(7))
	require.NoError(s.T(), err)
	require.Empty(s.T(), path)
	require.Equal(s.T(), rsa.InfCost, cost)

	_, cost, err = rsa.FindPath(net, 0, 2, 1, rsa.WithCostBound(8))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), cost)
}

func TestFindPathSuite(t *testing.T) {
	suite.Run(t, new(FindPathSuite))
}

func nodesOf(path []rsa.PathPoint) []int {
	nodes := make([]int, len(path))
	for i, p := range path {
		nodes[i] = p.Node
	}

	return nodes
}

// ------------------------------------------------------------------------
// Argument validation
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	net, err := channelnet.NewNetwork(3, channelnet.WithChannelCount(4))
	require.NoError(t, err)

	_, _, err = rsa.FindPath(nil, 0, 1, 1)
	require.ErrorIs(t, err, rsa.ErrNilNetwork)

	_, _, err = rsa.FindPath(net, 0, 1, 0)
	require.ErrorIs(t, err, rsa.ErrWidthRange)

	_, _, err = rsa.FindPath(net, 0, 1, 4) // > MaxSegmentWidth (3)
	require.ErrorIs(t, err, rsa.ErrWidthRange)

	_, _, err = rsa.FindPath(net, -1, 1, 1)
	require.ErrorIs(t, err, rsa.ErrNodeRange)

	_, _, err = rsa.FindPath(net, 0, 3, 1)
	require.ErrorIs(t, err, rsa.ErrNodeRange)
}

func TestWithCostBound_Panics(t *testing.T) {
	require.Panics(t, func() { rsa.WithCostBound(-1) })
}
