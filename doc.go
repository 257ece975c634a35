// Package spectrapath solves Routing and Spectrum Assignment (RSA) on
// channelized optical networks: pick a route and a contiguous channel
// range per hop, minimizing total cost under spectrum-continuity rules.
//
// 🚀 What is spectrapath?
//
//	A small, focused library that brings together:
//		• channelnet — topology store with per-edge channel-cost vectors,
//		  per-node conversion capability and O(1) segment-cost lookups
//		• rsa        — the constrained search engine: channel-augmented
//		  label-setting search with a simple-path guard and path
//		  reconstruction
//		• netbuild   — synthetic cost vectors and topologies for tests,
//		  examples and benchmarks
//
// ✨ Why choose spectrapath?
//
//   - Physical model first – a segment keeps the same channel range across
//     every hop unless an intermediate node supports spectrum conversion
//   - Predictable API – explicit errors, functional options, no globals
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	 0───1───2        a connection from 0 to 2 must carry the same
//	     ▲            channel range over both edges unless node 1
//	converts?         supports spectrum conversion.
//
// Start with channelnet.NewNetwork, add edges, then call rsa.FindPath.
// Dive into the per-package doc.go files for tutorials and complexity
// notes.
package spectrapath
