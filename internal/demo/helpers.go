package demo

import "github.com/rtoal/carlos/internal/ast"

func ident(name string) *ast.IdentifierExpression {
	return &ast.IdentifierExpression{Name: name}
}

func intLit(n int64) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLiteralKind, Value: n}
}

func stringLit(s string) *ast.Literal {
	return &ast.Literal{Kind: ast.StringLiteralKind, Value: s}
}

func namedType(name string) *ast.NamedTypeExpression {
	return &ast.NamedTypeExpression{Name: name}
}

func call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Args: args}
}

func exprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expr: e}
}

func program(stmts ...ast.Node) *ast.Program {
	return &ast.Program{Statements: stmts}
}
