// Code generator for the fixed-arity vector types.
// Renders one template over the component sets {X}, {X,Y}, {X,Y,Z}, {X,Y,Z,W}.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var (
	verbose = flag.Bool("v", false, "verbose output")
	output  = flag.String("o", "vector_gen.go", "output file")
	pkg     = flag.String("pkg", "vecmath", "package name")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	gen := &Generator{
		Package: *pkg,
		Output:  *output,
		Arities: DefaultArities(),
		Logger:  logger,
	}

	if err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Component is one named scalar field of a generated vector.
type Component struct {
	Field string // exported struct field, e.g. "X"
	Param string // constructor parameter, e.g. "x"
	Index int    // position in the backing array
}

// Arity describes one generated vector type.
type Arity struct {
	N          int
	Name       string
	Components []Component
}

// DefaultArities returns the vector types Vector1 through Vector4.
func DefaultArities() []Arity {
	fields := []string{"X", "Y", "Z", "W"}

	arities := make([]Arity, 0, len(fields))
	for n := 1; n <= len(fields); n++ {
		comps := make([]Component, n)
		for i := range n {
			comps[i] = Component{
				Field: fields[i],
				Param: strings.ToLower(fields[i]),
				Index: i,
			}
		}

		arities = append(arities, Arity{
			N:          n,
			Name:       "Vector" + strconv.Itoa(n),
			Components: comps,
		})
	}

	return arities
}

type Generator struct {
	Package string
	Output  string
	Arities []Arity
	Logger  *slog.Logger
}

// Generate renders the template and writes the formatted source to g.Output.
func (g *Generator) Generate() error {
	src, err := g.Render()
	if err != nil {
		return err
	}

	if err := os.WriteFile(g.Output, src, 0o644); err != nil { // nolint gosec
		return fmt.Errorf("write %s: %w", g.Output, err)
	}

	g.logger().Info("generated vector types", "output", g.Output, "types", len(g.Arities), "bytes", len(src))

	return nil
}

// Render returns the gofmt-ed source for all arities.
func (g *Generator) Render() ([]byte, error) {
	tmpl, err := template.New("vector").Funcs(funcs).Parse(vectorTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	for _, a := range g.Arities {
		g.logger().Debug("rendered arity", "type", a.Name, "components", a.N)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return g.Logger
}
