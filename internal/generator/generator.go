// Package generator walks an optimized *ir.Program and emits a string of
// target source, one line at a time joined by newlines. Each node
// family gets its own emit* function (expression emitters return a
// string, statement emitters append lines to the buffer), and entity
// names are assigned lazily on first reference through an
// identity-keyed Mangler rather than a constant-pool index.
package generator

import (
	"strings"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/stdlib"
)

// Generator walks a decorated, optimized IR program and renders it as
// target source text.
type Generator struct {
	mangler  *Mangler
	registry *stdlib.Registry
	lines    []string
}

// New returns a Generator with a fresh Mangler, primed with the
// process-wide standard-library registry for built-in lowering.
func New() *Generator {
	return &Generator{mangler: NewMangler(), registry: stdlib.Get()}
}

// Generate renders program to a newline-joined string of target source.
func Generate(program *ir.Program) string {
	g := New()
	for _, s := range program.Statements {
		g.emitStatement(s)
	}
	return strings.Join(g.lines, "\n")
}

func (g *Generator) emit(line string) {
	g.lines = append(g.lines, line)
}
