// Package ir is the decorated intermediate representation: entities, type
// nodes, and the declaration/statement/expression tree the analyzer
// produces, the optimizer rewrites, and the generator consumes.
//
// Every identifier reference in the decorated tree points to the exact
// same *Variable/*Function object created at its declaration (object
// identity, not name lookup) — this is what lets the generator's name
// mangler key on entity identity rather than source name.
package ir

import "github.com/rtoal/carlos/internal/types"

// Variable is a named, typed storage location: a `let`/`const` binding,
// a function parameter, or a range/for-loop iterator.
type Variable struct {
	Name     string
	Type     types.Type
	ReadOnly bool
}

// Function is a named, typed callable. A function is declared in its
// enclosing scope before its body is analyzed, so the body may call
// itself; a function declared later in the same scope is not yet
// visible to it.
type Function struct {
	Name string
	Type *types.FunctionType
}
