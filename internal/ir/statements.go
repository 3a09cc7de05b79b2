package ir

import "github.com/rtoal/carlos/internal/types"

// Statement is implemented by every decorated statement and declaration
// node — declarations are statements here.
type Statement interface {
	statementNode()
}

// VariableDeclaration binds Variable to Initializer's value.
type VariableDeclaration struct {
	Variable    *Variable
	Initializer Expression
}

func (*VariableDeclaration) statementNode() {}

// TypeDeclaration introduces a struct type into scope.
type TypeDeclaration struct {
	Type *types.StructType
}

func (*TypeDeclaration) statementNode() {}

// FunctionDeclaration binds Function to a parameter list and a body.
type FunctionDeclaration struct {
	Function *Function
	Params   []*Variable
	Body     []Statement
}

func (*FunctionDeclaration) statementNode() {}

// AssignmentTarget is any expression legal as an assignment target:
// variable references, subscripts, and member expressions rooted in a
// non-const path.
type AssignmentTarget interface {
	Expression
}

// Assignment is `target = source`.
type Assignment struct {
	Target AssignmentTarget
	Source Expression
}

func (*Assignment) statementNode() {}

// Increment is `target++`; target is a variable reference with integer
// type.
type Increment struct {
	Target *VariableExpression
}

func (*Increment) statementNode() {}

// Decrement is `target--`.
type Decrement struct {
	Target *VariableExpression
}

func (*Decrement) statementNode() {}

// Break is `break`.
type Break struct{}

func (*Break) statementNode() {}

// Return is `return expr` inside a non-void function.
type Return struct {
	Expr Expression
}

func (*Return) statementNode() {}

// ShortReturn is a bare `return` inside a void function.
type ShortReturn struct{}

func (*ShortReturn) statementNode() {}

// IfStatement is `if test { consequent } else alternate`. Alternate is
// nil, a []Statement (a trailing else block), or a *IfStatement (an
// else-if link in the chain) — the trailing else opens its own scope
// while an else-if link shares the chain's, which is exactly why
// Alternate is `any` here rather than a single concrete type.
type IfStatement struct {
	Test       Expression
	Consequent []Statement
	Alternate  interface{} // nil | []Statement | *IfStatement
}

func (*IfStatement) statementNode() {}

// ShortIfStatement is `if test { consequent }` with no else.
type ShortIfStatement struct {
	Test       Expression
	Consequent []Statement
}

func (*ShortIfStatement) statementNode() {}

// WhileStatement is `while test { body }`.
type WhileStatement struct {
	Test Expression
	Body []Statement
}

func (*WhileStatement) statementNode() {}

// RepeatStatement is `repeat count { body }`.
type RepeatStatement struct {
	Count Expression
	Body  []Statement
}

func (*RepeatStatement) statementNode() {}

// RangeOp is the ForRangeStatement operator: "..." (inclusive) or "..<"
// (exclusive).
type RangeOp string

const (
	RangeInclusive RangeOp = "..."
	RangeExclusive RangeOp = "..<"
)

// ForRangeStatement is `for iter in low op high { body }`.
type ForRangeStatement struct {
	Iterator *Variable
	Low      Expression
	Op       RangeOp
	High     Expression
	Body     []Statement
}

func (*ForRangeStatement) statementNode() {}

// ForStatement is `for x in collection { body }`.
type ForStatement struct {
	Iterator   *Variable
	Collection Expression
	Body       []Statement
}

func (*ForStatement) statementNode() {}

// ExpressionStatement wraps a bare call used for its side effect.
type ExpressionStatement struct {
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}
