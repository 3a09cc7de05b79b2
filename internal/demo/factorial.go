package demo

import "github.com/rtoal/carlos/internal/ast"

// factorial builds:
//
//	function factorial(n: int): int {
//	  let result = 1
//	  let i = 1
//	  while i <= n {
//	    result = i * result
//	    i = i + 1
//	  }
//	  return result
//	}
//	print(factorial(5))
func factorial() *ast.Program {
	body := []ast.Statement{
		&ast.VariableDeclaration{Name: "result", Initializer: intLit(1)},
		&ast.VariableDeclaration{Name: "i", Initializer: intLit(1)},
		&ast.WhileStatement{
			Test: &ast.BinaryExpression{Op: "<=", Left: ident("i"), Right: ident("n")},
			Body: []ast.Statement{
				&ast.Assignment{
					Target: ident("result"),
					Source: &ast.BinaryExpression{Op: "*", Left: ident("i"), Right: ident("result")},
				},
				&ast.Assignment{
					Target: ident("i"),
					Source: &ast.BinaryExpression{Op: "+", Left: ident("i"), Right: intLit(1)},
				},
			},
		},
		&ast.ReturnStatement{Expr: ident("result")},
	}

	return program(
		&ast.FunctionDeclaration{
			Name:       "factorial",
			Params:     []*ast.Parameter{{Name: "n", Type: namedType("int")}},
			ReturnType: namedType("int"),
			Body:       body,
		},
		exprStmt(call(ident("print"), call(ident("factorial"), intLit(5)))),
	)
}
