// Package demo stands in for the external parser, an out-of-scope
// collaborator: it hand-builds a handful of representative *ast.Program
// parse trees so cmd/carlos has something concrete to drive through the
// analyzer, optimizer, and generator without a grammar.
package demo

import "github.com/rtoal/carlos/internal/ast"

// Program is a named, canned parse tree.
type Program struct {
	Name        string
	Description string
	Tree        *ast.Program
}

var programs = []Program{
	{Name: "hello", Description: "print a greeting", Tree: hello()},
	{Name: "factorial", Description: "an iterative factorial function, called and printed", Tree: factorial()},
	{Name: "fizzbuzz", Description: "the fizzbuzz loop over 1...20, using an else-if chain", Tree: fizzbuzz()},
	{Name: "point", Description: "a struct declaration, constructor call, and field access", Tree: point()},
	{Name: "optional", Description: "an optional struct field unwrapped with `??`", Tree: optionalChain()},
}

// List returns every canned program, in a stable order.
func List() []Program {
	return append([]Program(nil), programs...)
}

// Get returns the named canned program, or false if name is unknown.
func Get(name string) (Program, bool) {
	for _, p := range programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}
