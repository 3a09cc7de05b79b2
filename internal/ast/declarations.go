package ast

// VariableDeclaration is `let|const name = initializer`.
type VariableDeclaration struct {
	NodeBase
	Name        string
	Initializer Expression
	ReadOnly    bool // true for `const`
}

func (*VariableDeclaration) statementNode() {}

// FieldDeclaration is one `name: TypeExpression` member of a struct.
type FieldDeclaration struct {
	NodeBase
	Name string
	Type TypeExpression
}

// TypeDeclaration is `struct Name { field... }`.
type TypeDeclaration struct {
	NodeBase
	Name   string
	Fields []*FieldDeclaration
}

func (*TypeDeclaration) statementNode() {}

// Parameter is one `name: TypeExpression` of a function signature.
type Parameter struct {
	NodeBase
	Name string
	Type TypeExpression
}

// FunctionDeclaration is `function name(params): ReturnType { body }`.
// ReturnType is nil when the source omits it (defaults to void, §4.2).
type FunctionDeclaration struct {
	NodeBase
	Name       string
	Params     []*Parameter
	ReturnType TypeExpression
	Body       []Statement
}

func (*FunctionDeclaration) statementNode() {}
