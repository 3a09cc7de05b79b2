package demo

import "github.com/rtoal/carlos/internal/ast"

// point builds:
//
//	struct Point { x: int, y: int }
//	let p = Point(3, 4)
//	print(p.x)
func point() *ast.Program {
	return program(
		&ast.TypeDeclaration{
			Name: "Point",
			Fields: []*ast.FieldDeclaration{
				{Name: "x", Type: namedType("int")},
				{Name: "y", Type: namedType("int")},
			},
		},
		&ast.VariableDeclaration{Name: "p", Initializer: call(ident("Point"), intLit(3), intLit(4))},
		exprStmt(call(ident("print"), &ast.MemberExpression{Object: ident("p"), Field: "x"})),
	)
}
