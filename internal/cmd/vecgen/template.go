package main

import (
	"strconv"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"each": each,
}

// each expands pattern once per component and joins the results with sep.
// The placeholders {F}, {p} and {i} are replaced by the component's field,
// parameter name and index.
func each(comps []Component, pattern, sep string) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		r := strings.NewReplacer("{F}", c.Field, "{p}", c.Param, "{i}", strconv.Itoa(c.Index))
		parts[i] = r.Replace(pattern)
	}

	return strings.Join(parts, sep)
}

const vectorTemplate = `// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}

import "fmt"
{{range .Arities}}{{$V := .Name}}{{$C := .Components}}
// {{$V}} is a vector with {{.N}} component{{if gt .N 1}}s{{end}}.
// The zero value is the zero vector.
type {{$V}}[T Scalar] struct {
	{{each $C "{F} T" "\n"}}
}

// New{{$V}} returns the vector ({{each $C "{p}" ", "}}).
func New{{$V}}[T Scalar]({{each $C "{p}" ", "}} T) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: {p}" ", " -}} }
}

// {{$V}}FromArray returns the vector whose components are the elements of a.
func {{$V}}FromArray[T Scalar](a [{{.N}}]T) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: a[{i}]" ", " -}} }
}

// {{$V}}Zero returns the additive identity.
func {{$V}}Zero[T Scalar]() {{$V}}[T] {
	return {{$V}}[T]{}
}
{{if eq .N 1}}
// {{$V}}Unit returns the unit vector along the only axis.
func {{$V}}Unit[T Scalar]() {{$V}}[T] {
	return {{$V}}[T]{X: 1}
}
{{else}}{{range $C}}
// {{$V}}{{.Field}}Unit returns the unit vector along the {{.Param}} axis.
func {{$V}}{{.Field}}Unit[T Scalar]() {{$V}}[T] {
	return {{$V}}[T]{ {{- .Field}}: 1}
}
{{end}}{{end}}
// Array returns the components as an array.
func (v {{$V}}[T]) Array() [{{.N}}]T {
	return [{{.N}}]T{ {{- each $C "v.{F}" ", " -}} }
}

// Add returns v+o.
func (v {{$V}}[T]) Add(o {{$V}}[T]) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: v.{F} + o.{F}" ", " -}} }
}

// Sub returns v-o.
func (v {{$V}}[T]) Sub(o {{$V}}[T]) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: v.{F} - o.{F}" ", " -}} }
}

// Neg returns -v.
func (v {{$V}}[T]) Neg() {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: -v.{F}" ", " -}} }
}

// Scale returns v with every component multiplied by s.
func (v {{$V}}[T]) Scale(s T) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: v.{F} * s" ", " -}} }
}

// ScaleInPlace multiplies every component of v by s.
func (v *{{$V}}[T]) ScaleInPlace(s T) {
	{{each $C "v.{F} *= s" "\n"}}
}

// Div returns v with every component divided by s.
// A zero s is not guarded: the result is whatever T's division yields,
// which is ±Inf or NaN for floats and a run-time panic for integers.
func (v {{$V}}[T]) Div(s T) {{$V}}[T] {
	return {{$V}}[T]{ {{- each $C "{F}: v.{F} / s" ", " -}} }
}

// DivInPlace divides every component of v by s. See Div for zero divisors.
func (v *{{$V}}[T]) DivInPlace(s T) {
	{{each $C "v.{F} /= s" "\n"}}
}

// Dot returns the dot product of v and o.
func (v {{$V}}[T]) Dot(o {{$V}}[T]) T {
	return {{each $C "v.{F}*o.{F}" " + "}}
}

// MagnitudeSquared returns the squared Euclidean length of v.
// It never takes a square root, so it is exact for integer scalars.
func (v {{$V}}[T]) MagnitudeSquared() T {
	return v.Dot(v)
}

// Magnitude returns the Euclidean length of v, Sqrt(v.MagnitudeSquared()).
func (v {{$V}}[T]) Magnitude() T {
	return Sqrt(v.MagnitudeSquared())
}
{{if eq .N 2}}
// PerpDot returns the perpendicular dot product X*o.Y - Y*o.X, the signed
// magnitude of the 2D cross product.
func (v {{$V}}[T]) PerpDot(o {{$V}}[T]) T {
	// Each product is rounded on its own so the result stays exactly
	// anti-symmetric on platforms that fuse multiply-subtract.
	return T(v.X*o.Y) - T(v.Y*o.X)
}
{{end}}{{if gt .N 1}}
// Normal returns v scaled to unit length.
// The zero vector is divided by a zero magnitude, see Div.
func (v {{$V}}[T]) Normal() {{$V}}[T] {
	return v.Div(v.Magnitude())
}

// NormalizeInPlace scales v to unit length.
func (v *{{$V}}[T]) NormalizeInPlace() {
	v.DivInPlace(v.Magnitude())
}
{{end}}
// WithMagnitude returns a vector parallel to v with magnitude m.
func (v {{$V}}[T]) WithMagnitude(m T) {{$V}}[T] {
	return v.Scale(m / v.Magnitude())
}

// SetMagnitude scales v in place so its magnitude becomes m.
func (v *{{$V}}[T]) SetMagnitude(m T) {
	v.ScaleInPlace(m / v.Magnitude())
}

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v {{$V}}[T]) DistanceSquared(o {{$V}}[T]) T {
	return v.Sub(o).MagnitudeSquared()
}

// Distance returns the Euclidean distance between v and o.
func (v {{$V}}[T]) Distance(o {{$V}}[T]) T {
	return v.Sub(o).Magnitude()
}

// IsZero reports whether every component of v is zero.
func (v {{$V}}[T]) IsZero() bool {
	var zero T
	return {{each $C "v.{F} == zero" " && "}}
}

// Equal reports whether v and o have equal components.
func (v {{$V}}[T]) Equal(o {{$V}}[T]) bool {
	return {{each $C "v.{F} == o.{F}" " && "}}
}

// ApproxEqual reports whether every component of v is within eps of the
// corresponding component of o.
func (v {{$V}}[T]) ApproxEqual(o {{$V}}[T], eps T) bool {
	return {{each $C "within(v.{F}, o.{F}, eps)" " && "}}
}

func (v {{$V}}[T]) String() string {
	return fmt.Sprintf("({{each $C "%v" ", "}})", {{each $C "v.{F}" ", "}})
}
{{end}}`
