package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uniform returns a value in [lo, hi).
// Integer scalars are truncated, so the result is in [lo, hi-1] for hi > lo.
func Uniform[T vecmath.Scalar](r *RNG, lo, hi T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uniformLocked(r, lo, hi)
}

// FillUniform fills dst with values in [lo, hi).
// Locks only once per call (preferred over calling Uniform in a loop).
func FillUniform[T vecmath.Scalar](r *RNG, dst []T, lo, hi T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range dst {
		dst[i] = uniformLocked(r, lo, hi)
	}
}

// uniformLocked draws one value in [lo, hi) (caller must hold lock).
// Draws that round up to hi, which happens for narrow types such as
// float32, are rejected and redrawn.
func uniformLocked[T vecmath.Scalar](r *RNG, lo, hi T) T {
	span := float64(hi - lo)
	for {
		v := lo + T(r.rand.Float64()*span)
		if v < hi || hi <= lo {
			return v
		}
	}
}

// Vector1 returns a vector with components in [lo, hi).
func Vector1[T vecmath.Scalar](r *RNG, lo, hi T) vecmath.Vector1[T] {
	var a [1]T
	FillUniform(r, a[:], lo, hi)
	return vecmath.Vector1FromArray(a)
}

// Vector2 returns a vector with components in [lo, hi).
func Vector2[T vecmath.Scalar](r *RNG, lo, hi T) vecmath.Vector2[T] {
	var a [2]T
	FillUniform(r, a[:], lo, hi)
	return vecmath.Vector2FromArray(a)
}

// Vector3 returns a vector with components in [lo, hi).
func Vector3[T vecmath.Scalar](r *RNG, lo, hi T) vecmath.Vector3[T] {
	var a [3]T
	FillUniform(r, a[:], lo, hi)
	return vecmath.Vector3FromArray(a)
}

// Vector4 returns a vector with components in [lo, hi).
func Vector4[T vecmath.Scalar](r *RNG, lo, hi T) vecmath.Vector4[T] {
	var a [4]T
	FillUniform(r, a[:], lo, hi)
	return vecmath.Vector4FromArray(a)
}

// NonZeroVector3 returns a vector with components in [lo, hi) that is not
// the zero vector.
func NonZeroVector3[T vecmath.Scalar](r *RNG, lo, hi T) vecmath.Vector3[T] {
	for {
		if v := Vector3(r, lo, hi); !v.IsZero() {
			return v
		}
	}
}
