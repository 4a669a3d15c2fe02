package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

const iterations = 500

// Integer components keep the algebraic identities exact.
func TestAdditiveGroup(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range iterations {
		v := testutil.Vector4[int64](rng, -1000, 1000)
		w := testutil.Vector4[int64](rng, -1000, 1000)
		zero := vecmath.Vector4Zero[int64]()

		require.Equal(t, v, v.Add(zero), "identity")
		require.Equal(t, zero, v.Add(v.Neg()), "inverse")
		require.Equal(t, v.Add(w), w.Add(v), "commutativity")
		require.Equal(t, zero.Sub(v), v.Neg())
	}
}

func TestAdditiveGroupFloat(t *testing.T) {
	rng := testutil.NewRNG(42)

	for range iterations {
		v := testutil.Vector3(rng, -1e3, 1e3)
		w := testutil.Vector3(rng, -1e3, 1e3)

		require.True(t, v.Add(vecmath.Vector3Zero[float64]()).Equal(v))
		require.True(t, v.Add(v.Neg()).IsZero())
		require.True(t, v.Add(w).Equal(w.Add(v)))
	}
}

func TestScalarDistributivity(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range iterations {
		v := testutil.Vector3[int](rng, -1000, 1000)
		w := testutil.Vector3[int](rng, -1000, 1000)
		s := testutil.Uniform(rng, -50, 50)

		require.Equal(t, v.Add(w).Scale(s), v.Scale(s).Add(w.Scale(s)))
	}
}

func TestDotBilinearity(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range iterations {
		a := testutil.Vector4[int](rng, -1000, 1000)
		b := testutil.Vector4[int](rng, -1000, 1000)
		c := testutil.Vector4[int](rng, -1000, 1000)

		require.Equal(t, a.Dot(c)+b.Dot(c), a.Add(b).Dot(c))
		require.Equal(t, a.Dot(b), b.Dot(a), "symmetry")
		require.Equal(t, a.MagnitudeSquared(), a.Dot(a))
	}
}

func TestMagnitudeProperties(t *testing.T) {
	rng := testutil.NewRNG(7)

	for range iterations {
		v := testutil.Vector4(rng, -1e3, 1e3)

		m := v.Magnitude()
		assert.GreaterOrEqual(t, m, 0.0)
		assert.InDelta(t, math.Sqrt(v.MagnitudeSquared()), m, 1e-9)

		x := testutil.Vector1(rng, -1e3, 1e3)
		assert.GreaterOrEqual(t, x.Magnitude(), 0.0)
		assert.Equal(t, vecmath.Sqrt(x.MagnitudeSquared()), x.Magnitude())
	}
}

func TestNormalization(t *testing.T) {
	rng := testutil.NewRNG(99)

	for range iterations {
		v := testutil.NonZeroVector3(rng, -100.0, 100.0)
		assert.InDelta(t, 1.0, v.Normal().Magnitude(), 1e-6)

		u := testutil.Vector2[float32](rng, 1, 100)
		u.NormalizeInPlace()
		assert.InDelta(t, 1.0, float64(u.Magnitude()), 1e-5)

		w := testutil.Vector4[float64](rng, 1, 100)
		assert.InDelta(t, 2.5, w.WithMagnitude(2.5).Magnitude(), 1e-9)
	}
}

func TestPerpDotAntiSymmetry(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range iterations {
		a := testutil.Vector2[int](rng, -1000, 1000)
		b := testutil.Vector2[int](rng, -1000, 1000)

		require.Equal(t, a.PerpDot(b), -b.PerpDot(a))
		require.Equal(t, 0, a.PerpDot(a))
	}
}

// Exact for floats too: a fused multiply-subtract would leave the rounding
// error of one product behind.
func TestPerpDotAntiSymmetryFloat(t *testing.T) {
	rng := testutil.NewRNG(4711)

	require.Equal(t, 0.0, vecmath.NewVector2(0.1, 0.3).PerpDot(vecmath.NewVector2(0.1, 0.3)))

	for range iterations {
		a := testutil.Vector2(rng, -1e3, 1e3)
		b := testutil.Vector2(rng, -1e3, 1e3)

		require.Equal(t, a.PerpDot(b), -b.PerpDot(a))
		require.Equal(t, 0.0, a.PerpDot(a))

		c := testutil.Vector2[float32](rng, -1, 1)
		require.Equal(t, float32(0), c.PerpDot(c))
	}
}

// The dot product with a unit vector selects one component.
func TestUnitVectorSelectsComponent(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range iterations {
		axis := rng.Intn(4)

		var a [4]int
		a[axis] = 1
		unit := vecmath.Vector4FromArray(a)

		v := testutil.Vector4[int](rng, -1000, 1000)
		require.Equal(t, v.Array()[axis], v.Dot(unit))
		require.Equal(t, 1, unit.Magnitude())
	}
}
