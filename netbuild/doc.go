// Package netbuild provides synthetic cost-vector generators and
// topology constructors for channelized networks, used by tests,
// examples and benchmarks throughout spectrapath.
//
// What:
//
//   - CostFn produces one per-channel cost; constructors cover constant,
//     linear, uniform-random and banded (low/mid/high thirds) profiles.
//   - Vector materializes a CostFn into a full cost vector.
//   - Chain, Ring and RandomConnected build ready-to-query
//     channelnet.Network topologies, all-converting by default.
//
// Why:
//
//   - Deterministic fixtures: every generator is reproducible for a
//     given RNG seed.
//   - Benchmarks need large topologies nobody wants to write by hand.
//
// All constructors panic on invalid configuration arguments (programmer
// error), and return errors only for conditions the underlying
// channelnet construction reports.
package netbuild
