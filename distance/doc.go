// Package distance provides metrics between vectors of the vecmath family.
//
// The functions are generic over any vector type with Sub, Dot and Magnitude,
// so one implementation serves Vector1 through Vector4.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	a := vecmath.NewVector3(1.0, 2.0, 3.0)
//	b := vecmath.NewVector3(4.0, 5.0, 6.0)
//	dist := distance.SquaredL2[float64](a, b)
//	sim := distance.Cosine[float64](a, b)
package distance
