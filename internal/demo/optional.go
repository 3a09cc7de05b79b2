package demo

import "github.com/rtoal/carlos/internal/ast"

// optionalChain builds:
//
//	struct Box { value: int }
//	let b = no Box
//	print(b?.value ?? 0)
func optionalChain() *ast.Program {
	return program(
		&ast.TypeDeclaration{
			Name:   "Box",
			Fields: []*ast.FieldDeclaration{{Name: "value", Type: namedType("int")}},
		},
		&ast.VariableDeclaration{
			Name:        "b",
			Initializer: &ast.EmptyOptionalExpression{BaseType: namedType("Box")},
		},
		exprStmt(call(ident("print"), &ast.BinaryExpression{
			Op:    "??",
			Left:  &ast.MemberExpression{Object: ident("b"), Field: "value", Optional: true},
			Right: intLit(0),
		})),
	)
}
