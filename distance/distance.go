package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath"
)

// ErrUnsupportedMetric is returned by Provider for metrics it does not know.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Vector is the method set shared by vecmath.Vector1 through vecmath.Vector4.
type Vector[T vecmath.Scalar, V any] interface {
	Sub(o V) V
	Dot(o V) T
	Magnitude() T
	MagnitudeSquared() T
}

// Dot calculates the dot product of two vectors.
func Dot[T vecmath.Scalar, V Vector[T, V]](a, b V) T {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2[T vecmath.Scalar, V Vector[T, V]](a, b V) T {
	return a.Sub(b).MagnitudeSquared()
}

// Cosine calculates the cosine of the angle between two vectors.
// A zero vector yields whatever T's division by zero yields.
func Cosine[T vecmath.Scalar, V Vector[T, V]](a, b V) T {
	return a.Dot(b) / (a.Magnitude() * b.Magnitude())
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func[T vecmath.Scalar, V any] func(a, b V) T

// Provider returns the distance function for the given metric.
func Provider[T vecmath.Scalar, V Vector[T, V]](m Metric) (Func[T, V], error) {
	switch m {
	case MetricL2:
		return SquaredL2[T, V], nil
	case MetricCosine:
		return Cosine[T, V], nil
	case MetricDot:
		return Dot[T, V], nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}
