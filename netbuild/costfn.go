package netbuild

import (
	"fmt"
	"math/rand"
)

// CostFn produces the traversal cost of channel ch given an optional
// *rand.Rand source. It must be deterministic for a given RNG seed;
// panics in constructors indicate programmer error in configuration.
type CostFn func(ch int, rng *rand.Rand) int64

// ConstantCosts returns a CostFn that prices every channel at v.
// Panics if v < 0. Complexity: O(1).
func ConstantCosts(v int64) CostFn {
	if v < 0 {
		panic(fmt.Sprintf("ConstantCosts: value must be ≥ 0, got %d", v))
	}

	return func(_ int, _ *rand.Rand) int64 {
		return v
	}
}

// LinearCosts returns a CostFn pricing channel ch at base + ch*step.
// Panics if base < 0 or step < 0. Complexity: O(1).
func LinearCosts(base, step int64) CostFn {
	if base < 0 || step < 0 {
		panic(fmt.Sprintf("LinearCosts: require base ≥ 0 and step ≥ 0, got base=%d, step=%d", base, step))
	}

	return func(ch int, _ *rand.Rand) int64 {
		return base + int64(ch)*step
	}
}

// UniformCosts returns a CostFn sampling uniformly in [lo, hi] inclusive.
// Panics if lo < 0 or hi < lo. If rng is nil, yields lo to keep a
// deterministic fallback. Complexity: O(1).
func UniformCosts(lo, hi int64) CostFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformCosts: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(_ int, rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// BandedCosts returns a CostFn splitting the spectrum of width w into
// three equal bands priced low, mid and high. Channels past the last
// full band fall into the high band.
// Panics unless 0 ≤ low, mid, high and w > 0. Complexity: O(1).
func BandedCosts(w int, low, mid, high int64) CostFn {
	if w <= 0 {
		panic(fmt.Sprintf("BandedCosts: spectrum width must be > 0, got %d", w))
	}
	if low < 0 || mid < 0 || high < 0 {
		panic(fmt.Sprintf("BandedCosts: costs must be ≥ 0, got %d/%d/%d", low, mid, high))
	}
	third := w / 3

	return func(ch int, _ *rand.Rand) int64 {
		switch {
		case ch < third:
			return low
		case ch < 2*third:
			return mid
		default:
			return high
		}
	}
}

// Vector materializes fn into a cost vector of w channels.
// Panics if w ≤ 0 or fn is nil. Complexity: O(w).
func Vector(w int, fn CostFn, rng *rand.Rand) []int64 {
	if w <= 0 {
		panic(fmt.Sprintf("Vector: width must be > 0, got %d", w))
	}
	if fn == nil {
		panic("Vector: fn must be non-nil")
	}

	costs := make([]int64, w)
	for ch := range costs {
		costs[ch] = fn(ch, rng)
	}

	return costs
}
