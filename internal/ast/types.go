package ast

// NamedTypeExpression names a primitive or a struct by identifier, e.g.
// `int` or `S`.
type NamedTypeExpression struct {
	NodeBase
	Name string
}

func (*NamedTypeExpression) typeExpressionNode() {}

// ArrayTypeExpression is `[T]`.
type ArrayTypeExpression struct {
	NodeBase
	Base TypeExpression
}

func (*ArrayTypeExpression) typeExpressionNode() {}

// OptionalTypeExpression is `T?`.
type OptionalTypeExpression struct {
	NodeBase
	Base TypeExpression
}

func (*OptionalTypeExpression) typeExpressionNode() {}
