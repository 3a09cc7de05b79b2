// Package ast defines the untyped parse tree the analyzer consumes.
// Every node kind here mirrors a decorated-IR node in internal/ir but
// omits types and identifier-to-entity linkage — that linkage is exactly
// what internal/semantic adds.
//
// The parser that produces these trees is an external collaborator and
// is not part of this module; internal/demo builds a handful of trees
// by hand to stand in for it.
package ast

import "github.com/rtoal/carlos/internal/token"

// Node is implemented by every parse-tree node.
type Node interface {
	Pos() token.Position
}

// NodeBase carries the source position every node needs and is embedded
// by every concrete node type.
type NodeBase struct {
	Position token.Position
}

func (n NodeBase) Pos() token.Position { return n.Position }

// Program is the root of a parse tree: an ordered sequence of top-level
// statements and declarations.
type Program struct {
	NodeBase
	Statements []Node
}

// Statement is a marker interface for nodes valid in a statement
// position; it also covers declarations, which are statements here
// exactly as in the decorated IR.
type Statement interface {
	Node
	statementNode()
}

// Expression is a marker interface for nodes valid in an expression
// position.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpression names a type occurring in source: `int`, `[int]`,
// `int?`, or a struct name.
type TypeExpression interface {
	Node
	typeExpressionNode()
}
