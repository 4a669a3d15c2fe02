// Package vecmath provides fixed-dimension vector algebra over generic scalars.
//
// Four value types are provided: Vector1 (X), Vector2 (X, Y), Vector3 (X, Y, Z)
// and Vector4 (X, Y, Z, W). Each is generic over any Scalar, that is every Go
// integer and floating-point type, and all four share one operation set
// generated from a single template (see internal/cmd/vecgen).
//
// # Quick Start
//
//	a := vecmath.NewVector2(3.0, 4.0)
//	b := vecmath.Vector2YUnit[float64]()
//
//	sum := a.Add(b)          // (3, 5)
//	length := a.Magnitude()  // 5
//	unit := a.Normal()       // (0.6, 0.8)
//	cross := a.PerpDot(b)    // 3
//
// # Value Semantics
//
// Vectors are plain structs. Copies share nothing, so vectors can be passed
// between goroutines freely. Methods with an InPlace suffix (and SetMagnitude)
// take a pointer receiver and mutate only that vector; they produce exactly the
// result of the corresponding value method.
//
// # Numeric Edge Cases
//
// The package adds no checks of its own. Overflow wraps or rounds as T does.
// Division by a zero scalar, including Normal of the zero vector, yields
// ±Inf or NaN for floating-point T and panics for integer T. Square roots of
// integer scalars are the exact floor root.
package vecmath
