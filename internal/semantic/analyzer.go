// Package semantic decorates an untyped internal/ast parse tree into a
// typed, resolved internal/ir program, enforcing every type, scope,
// mutability, control-flow, and call-signature rule Carlos requires. The
// Analyzer is a struct holding the current scope, the standard-library
// registry, and the errors recorded so far (declared struct types live in
// the scope like any other entity), split one file per syntactic construct family —
// trimmed to the constructs Carlos actually has (no classes, interfaces,
// records, enums, sets, or properties).
package semantic

import (
	"github.com/rtoal/carlos/internal/ast"
	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/stdlib"
	"github.com/rtoal/carlos/internal/types"
)

// Analyzer walks a parse tree and produces a decorated *ir.Program,
// failing with the first SemanticError encountered.
type Analyzer struct {
	scope      *Scope
	registry   *stdlib.Registry
	source     string
	file       string
	structured []SemanticError
}

// NewAnalyzer builds an Analyzer whose global scope is pre-populated
// with the standard-library registry.
func NewAnalyzer(source, file string) *Analyzer {
	reg := stdlib.Get()
	global := NewGlobalScope()
	for name, f := range reg.Functions {
		_ = global.Declare(name, f)
	}
	_ = global.Declare("π", reg.Pi)

	return &Analyzer{
		scope:    global,
		registry: reg,
		source:   source,
		file:     file,
	}
}

// abort is how every analyze* helper signals the first error: it
// records the structured error (for a future multi-error mode) and
// returns it wrapped for Analyze to surface.
func (a *Analyzer) abort(err SemanticError) error {
	a.structured = append(a.structured, err)
	return &AnalysisError{Err: err}
}

// Analyze decorates program into an *ir.Program, or returns the first
// *AnalysisError encountered.
func Analyze(program *ast.Program, source, file string) (*ir.Program, error) {
	a := NewAnalyzer(source, file)
	stmts, err := a.analyzeStatementList(program.Statements)
	if err != nil {
		return nil, err
	}
	return &ir.Program{Statements: stmts}, nil
}

// analyzeStatementList analyzes a []ast.Node in the current scope,
// producing the corresponding []ir.Statement.
func (a *Analyzer) analyzeStatementList(nodes []ast.Node) ([]ir.Statement, error) {
	out := make([]ir.Statement, 0, len(nodes))
	for _, n := range nodes {
		s, err := a.analyzeStatement(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// analyzeBlock analyzes a []ast.Statement (a nested block body) in the
// current scope.
func (a *Analyzer) analyzeBlock(stmts []ast.Statement) ([]ir.Statement, error) {
	nodes := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return a.analyzeStatementList(nodes)
}

// analyzeStatement dispatches a single parse-tree node to its construct
// handler.
func (a *Analyzer) analyzeStatement(n ast.Node) (ir.Statement, error) {
	switch node := n.(type) {
	case *ast.VariableDeclaration:
		return a.analyzeVariableDeclaration(node)
	case *ast.TypeDeclaration:
		return a.analyzeTypeDeclaration(node)
	case *ast.FunctionDeclaration:
		return a.analyzeFunctionDeclaration(node)
	case *ast.Assignment:
		return a.analyzeAssignment(node)
	case *ast.IncrementStatement:
		return a.analyzeIncrement(node)
	case *ast.DecrementStatement:
		return a.analyzeDecrement(node)
	case *ast.BreakStatement:
		return a.analyzeBreak(node)
	case *ast.ReturnStatement:
		return a.analyzeReturn(node)
	case *ast.ShortReturnStatement:
		return a.analyzeShortReturn(node)
	case *ast.IfStatement:
		return a.analyzeIfStatement(node)
	case *ast.ShortIfStatement:
		return a.analyzeShortIfStatement(node)
	case *ast.WhileStatement:
		return a.analyzeWhileStatement(node)
	case *ast.RepeatStatement:
		return a.analyzeRepeatStatement(node)
	case *ast.ForRangeStatement:
		return a.analyzeForRangeStatement(node)
	case *ast.ForStatement:
		return a.analyzeForStatement(node)
	case *ast.ExpressionStatement:
		return a.analyzeExpressionStatement(node)
	default:
		return nil, a.abort(&NotATypeError{base: base{at: n.Pos()}, Name: "<unknown statement>"})
	}
}

// resolveTypeExpression resolves a parse-tree type expression to a
// types.Type: a primitive by name, an array/optional wrapping a
// recursively resolved base, or a previously declared struct looked up
// by identity through the scope chain.
func (a *Analyzer) resolveTypeExpression(te ast.TypeExpression) (types.Type, error) {
	switch t := te.(type) {
	case *ast.NamedTypeExpression:
		if p := types.LookupPrimitive(t.Name); p != nil {
			return p, nil
		}
		entity, ok := a.scope.Lookup(t.Name)
		if !ok {
			return nil, a.abort(&NotDeclaredError{base: base{at: t.Pos()}, Name: t.Name})
		}
		st, ok := entity.(*types.StructType)
		if !ok {
			return nil, a.abort(&NotATypeError{base: base{at: t.Pos()}, Name: t.Name})
		}
		return st, nil
	case *ast.ArrayTypeExpression:
		base, err := a.resolveTypeExpression(t.Base)
		if err != nil {
			return nil, err
		}
		return &types.ArrayType{Base: base}, nil
	case *ast.OptionalTypeExpression:
		base, err := a.resolveTypeExpression(t.Base)
		if err != nil {
			return nil, err
		}
		return &types.OptionalType{Base: base}, nil
	default:
		return nil, a.abort(&NotATypeError{base: base{at: te.Pos()}, Name: "<unknown type>"})
	}
}
