package demo

import "github.com/rtoal/carlos/internal/ast"

func hello() *ast.Program {
	return program(
		exprStmt(call(ident("print"), stringLit("Hello, world!"))),
	)
}
