package semantic

import (
	"testing"

	"github.com/rtoal/carlos/internal/ast"
	"github.com/rtoal/carlos/internal/ir"
)

func ident(name string) *ast.IdentifierExpression { return &ast.IdentifierExpression{Name: name} }
func intLit(n int64) *ast.Literal                 { return &ast.Literal{Kind: ast.IntLiteralKind, Value: n} }
func namedType(name string) *ast.NamedTypeExpression {
	return &ast.NamedTypeExpression{Name: name}
}
func program(stmts ...ast.Node) *ast.Program { return &ast.Program{Statements: stmts} }

// TestAnalyzeEntityIdentity covers the entity-identity invariant: two
// references to the same declared variable must decorate to the exact
// same *ir.Variable pointer.
func TestAnalyzeEntityIdentity(t *testing.T) {
	tree := program(
		&ast.VariableDeclaration{Name: "x", Initializer: intLit(1)},
		&ast.ExpressionStatement{Expr: &ast.BinaryExpression{Op: "+", Left: ident("x"), Right: ident("x")}},
	)
	decorated, err := Analyze(tree, "", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	stmt := decorated.Statements[1].(*ir.ExpressionStatement)
	bin := stmt.Expr.(*ir.BinaryExpression)
	left := bin.Left.(*ir.VariableExpression)
	right := bin.Right.(*ir.VariableExpression)
	if left.Variable != right.Variable {
		t.Error("both references to x should decorate to the same *ir.Variable")
	}
}

// TestAnalyzeNoShadowingAcrossFunctionParam covers the no-shadowing invariant end to end: a
// nested block may not redeclare a name already bound in an enclosing
// scope, even under a different construct (a function parameter here).
func TestAnalyzeNoShadowingAcrossFunctionParam(t *testing.T) {
	tree := program(
		&ast.VariableDeclaration{Name: "x", Initializer: intLit(1)},
		&ast.FunctionDeclaration{
			Name:   "f",
			Params: []*ast.Parameter{{Name: "x", Type: namedType("int")}},
			Body:   []ast.Statement{},
		},
	)
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error: function parameter x shadows the outer let x")
	}
}

func TestAnalyzeAssignToReadOnlyFails(t *testing.T) {
	tree := program(
		&ast.VariableDeclaration{Name: "x", Initializer: intLit(1), ReadOnly: true},
		&ast.Assignment{Target: ident("x"), Source: intLit(2)},
	)
	_, err := Analyze(tree, "", "test")
	if err == nil {
		t.Fatal("expected an error assigning to a const")
	}
	var ae *AssignmentError
	if analysisErr, ok := err.(*AnalysisError); ok {
		ae, _ = analysisErr.Err.(*AssignmentError)
	}
	if ae == nil {
		t.Errorf("error = %v (%T), want *AssignmentError", err, err)
	}
}

func TestAnalyzeBreakOutsideLoopFails(t *testing.T) {
	tree := program(&ast.BreakStatement{})
	_, err := Analyze(tree, "", "test")
	if err == nil {
		t.Fatal("expected an error: break outside a loop")
	}
}

func TestAnalyzeBreakInsideLoopSucceeds(t *testing.T) {
	tree := program(&ast.WhileStatement{
		Test: &ast.Literal{Kind: ast.BooleanLiteralKind, Value: true},
		Body: []ast.Statement{&ast.BreakStatement{}},
	})
	if _, err := Analyze(tree, "", "test"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestAnalyzeReturnOutsideFunctionFails(t *testing.T) {
	tree := program(&ast.ReturnStatement{Expr: intLit(1)})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error: return outside a function")
	}
}

func TestAnalyzeReturnTypeMismatchFails(t *testing.T) {
	tree := program(&ast.FunctionDeclaration{
		Name:       "f",
		ReturnType: namedType("boolean"),
		Body:       []ast.Statement{&ast.ReturnStatement{Expr: intLit(1)}},
	})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected a type mismatch: returning an int from a boolean function")
	}
}

func TestAnalyzeRecursiveStructFails(t *testing.T) {
	tree := program(&ast.TypeDeclaration{
		Name: "Node",
		Fields: []*ast.FieldDeclaration{
			{Name: "next", Type: namedType("Node")},
		},
	})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error: a struct must not directly reference itself")
	}
}

func TestAnalyzeStructIndirectSelfReferenceSucceeds(t *testing.T) {
	tree := program(&ast.TypeDeclaration{
		Name: "Node",
		Fields: []*ast.FieldDeclaration{
			{Name: "next", Type: &ast.OptionalTypeExpression{Base: namedType("Node")}},
		},
	})
	if _, err := Analyze(tree, "", "test"); err != nil {
		t.Fatalf("a struct referencing itself through Optional should be legal: %v", err)
	}
}

func TestAnalyzeDuplicateFieldNamesFails(t *testing.T) {
	tree := program(&ast.TypeDeclaration{
		Name: "Point",
		Fields: []*ast.FieldDeclaration{
			{Name: "x", Type: namedType("int")},
			{Name: "x", Type: namedType("int")},
		},
	})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error: duplicate field name x")
	}
}

func TestAnalyzeArityMismatchFails(t *testing.T) {
	tree := program(
		&ast.FunctionDeclaration{
			Name:   "f",
			Params: []*ast.Parameter{{Name: "n", Type: namedType("int")}},
			Body:   []ast.Statement{},
		},
		&ast.ExpressionStatement{Expr: &ast.CallExpression{Callee: ident("f"), Args: nil}},
	)
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an arity mismatch calling f() with zero arguments")
	}
}

func TestAnalyzeConstructorCallAndFieldAccess(t *testing.T) {
	tree := program(
		&ast.TypeDeclaration{
			Name: "Point",
			Fields: []*ast.FieldDeclaration{
				{Name: "x", Type: namedType("int")},
				{Name: "y", Type: namedType("int")},
			},
		},
		&ast.VariableDeclaration{Name: "p", Initializer: &ast.CallExpression{Callee: ident("Point"), Args: []ast.Expression{intLit(1), intLit(2)}}},
		&ast.ExpressionStatement{Expr: &ast.MemberExpression{Object: ident("p"), Field: "x"}},
	)
	decorated, err := Analyze(tree, "", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(decorated.Statements) != 3 {
		t.Fatalf("expected 3 decorated statements, got %d", len(decorated.Statements))
	}
}

func TestAnalyzeFunctionCanCallItselfRecursively(t *testing.T) {
	tree := program(&ast.FunctionDeclaration{
		Name:       "fact",
		Params:     []*ast.Parameter{{Name: "n", Type: namedType("int")}},
		ReturnType: namedType("int"),
		Body: []ast.Statement{
			&ast.ReturnStatement{Expr: &ast.CallExpression{Callee: ident("fact"), Args: []ast.Expression{ident("n")}}},
		},
	})
	if _, err := Analyze(tree, "", "test"); err != nil {
		t.Fatalf("a function should be able to call itself by name: %v", err)
	}
}

func TestAnalyzeForRangeIteratorIsReadOnly(t *testing.T) {
	tree := program(&ast.ForRangeStatement{
		Iterator: "i",
		Low:      intLit(1),
		Op:       ast.RangeInclusive,
		High:     intLit(10),
		Body:     []ast.Statement{&ast.Assignment{Target: ident("i"), Source: intLit(0)}},
	})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error assigning to the read-only range iterator")
	}
}

func TestAnalyzeUnwrapElseOnNonOptionalFails(t *testing.T) {
	tree := program(&ast.ExpressionStatement{
		Expr: &ast.BinaryExpression{Op: "??", Left: intLit(1), Right: intLit(2)},
	})
	if _, err := Analyze(tree, "", "test"); err == nil {
		t.Fatal("expected an error: ?? requires an optional left operand")
	}
}

func TestAnalyzeUnwrapElseOnOptionalSucceeds(t *testing.T) {
	tree := program(&ast.ExpressionStatement{
		Expr: &ast.BinaryExpression{
			Op:    "??",
			Left:  &ast.EmptyOptionalExpression{BaseType: namedType("int")},
			Right: intLit(0),
		},
	})
	if _, err := Analyze(tree, "", "test"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}
