// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and helpers for generating random
// scalars and vectors for property-based tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Vector3(rng, -10.0, 10.0) // components uniform in [-10, 10)
//	n := testutil.Vector2(rng, -100, 100)   // integer components
package testutil
