package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArities(t *testing.T) {
	arities := DefaultArities()
	require.Len(t, arities, 4)

	for i, a := range arities {
		assert.Equal(t, i+1, a.N)
		assert.Len(t, a.Components, a.N)
	}

	w := arities[3].Components[3]
	assert.Equal(t, Component{Field: "W", Param: "w", Index: 3}, w)
	assert.Equal(t, "Vector4", arities[3].Name)
}

func TestEach(t *testing.T) {
	comps := DefaultArities()[2].Components

	assert.Equal(t, "X: a[0], Y: a[1], Z: a[2]", each(comps, "{F}: a[{i}]", ", "))
	assert.Equal(t, "v.X*o.X + v.Y*o.Y + v.Z*o.Z", each(comps, "v.{F}*o.{F}", " + "))
	assert.Equal(t, "x, y, z", each(comps, "{p}", ", "))
}

func TestRender(t *testing.T) {
	gen := &Generator{Package: "vecmath", Arities: DefaultArities()}

	src, err := gen.Render()
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "vector_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "vecmath", f.Name.Name)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by vecgen. DO NOT EDIT."))

	for _, decl := range []string{
		"type Vector1[T Scalar] struct",
		"type Vector4[T Scalar] struct",
		"func Vector1Unit[T Scalar]() Vector1[T]",
		"func Vector3ZUnit[T Scalar]() Vector3[T]",
		"func (v Vector2[T]) PerpDot(o Vector2[T]) T",
		"func (v *Vector4[T]) NormalizeInPlace()",
	} {
		assert.Contains(t, out, decl)
	}

	for _, absent := range []string{
		"func (v Vector1[T]) Normal()",
		"func (v Vector3[T]) PerpDot(",
		"func Vector1XUnit",
	} {
		assert.NotContains(t, out, absent)
	}
}

func TestGeneratedFileUpToDate(t *testing.T) {
	gen := &Generator{Package: "vecmath", Arities: DefaultArities()}

	want, err := gen.Render()
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join("..", "..", "..", "vector_gen.go"))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(want, got), "vector_gen.go is stale, run go generate")
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vector_gen.go")
	gen := &Generator{Package: "other", Output: out, Arities: DefaultArities()[:2]}

	require.NoError(t, gen.Generate())

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package other")
	assert.Contains(t, string(src), "type Vector2[T Scalar] struct")
	assert.NotContains(t, string(src), "Vector3")
}
