package semantic

import (
	"github.com/rtoal/carlos/internal/ast"
	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

// rootReadOnly walks an assignment-target expression down to its
// originating root (a variable reference) and reports that root's
// ReadOnly flag.
func rootReadOnly(e ir.Expression) bool {
	switch t := e.(type) {
	case *ir.VariableExpression:
		return t.Variable.ReadOnly
	case *ir.SubscriptExpression:
		return rootReadOnly(t.Array)
	case *ir.MemberExpression:
		return rootReadOnly(t.Object)
	default:
		return true
	}
}

// isLegalAssignmentTarget reports whether e is one of the legal target
// shapes: a variable reference, a subscript, or a member expression.
func isLegalAssignmentTarget(e ir.Expression) bool {
	switch e.(type) {
	case *ir.VariableExpression, *ir.SubscriptExpression, *ir.MemberExpression:
		return true
	default:
		return false
	}
}

// analyzeAssignment handles `target = source`.
func (a *Analyzer) analyzeAssignment(n *ast.Assignment) (ir.Statement, error) {
	target, err := a.analyzeExpression(n.Target)
	if err != nil {
		return nil, err
	}
	source, err := a.analyzeExpression(n.Source)
	if err != nil {
		return nil, err
	}

	if !isLegalAssignmentTarget(target) {
		return nil, a.abort(&AssignmentError{base: base{at: n.Target.Pos()}, Name: "<expression>"})
	}
	if rootReadOnly(target) {
		return nil, a.abort(&AssignmentError{base: base{at: n.Target.Pos()}, Name: targetName(target)})
	}
	if !types.AssignableFrom(source.ExprType(), target.ExprType()) {
		return nil, a.abort(&TypeMismatchError{
			base: base{at: n.Source.Pos()}, Kind: NotAssignable,
			From: source.ExprType(), To: target.ExprType(),
		})
	}

	return &ir.Assignment{Target: target, Source: source}, nil
}

// targetName extracts a human-readable name for an assignment-error
// message; it's the variable/field name nearest the target expression
// itself, not the root (e.g. "Cannot assign to immutable x").
func targetName(e ir.Expression) string {
	switch t := e.(type) {
	case *ir.VariableExpression:
		return t.Variable.Name
	case *ir.MemberExpression:
		return t.Field.Name
	case *ir.SubscriptExpression:
		return targetName(t.Array)
	default:
		return "<expression>"
	}
}

// analyzeIncrement handles `target++`: the operand must be a variable
// reference with integer type and not readOnly.
func (a *Analyzer) analyzeIncrement(n *ast.IncrementStatement) (ir.Statement, error) {
	v, err := a.analyzeIncDecOperand(n.Target)
	if err != nil {
		return nil, err
	}
	return &ir.Increment{Target: v}, nil
}

// analyzeDecrement handles `target--`.
func (a *Analyzer) analyzeDecrement(n *ast.DecrementStatement) (ir.Statement, error) {
	v, err := a.analyzeIncDecOperand(n.Target)
	if err != nil {
		return nil, err
	}
	return &ir.Decrement{Target: v}, nil
}

func (a *Analyzer) analyzeIncDecOperand(e ast.Expression) (*ir.VariableExpression, error) {
	expr, err := a.analyzeExpression(e)
	if err != nil {
		return nil, err
	}
	v, ok := expr.(*ir.VariableExpression)
	if !ok {
		return nil, a.abort(&NotATypeError{base: base{at: e.Pos()}, Name: "<not a variable>"})
	}
	if v.Variable.Type != types.INT {
		return nil, a.abort(&TypeMismatchError{base: base{at: e.Pos()}, Kind: ExpectedInteger, Got: v.Variable.Type})
	}
	if v.Variable.ReadOnly {
		return nil, a.abort(&AssignmentError{base: base{at: e.Pos()}, Name: v.Variable.Name})
	}
	return v, nil
}

// analyzeBreak handles `break`, which requires being inside a loop.
func (a *Analyzer) analyzeBreak(n *ast.BreakStatement) (ir.Statement, error) {
	if !a.scope.InLoop() {
		return nil, a.abort(&ControlFlowError{base: base{at: n.Pos()}, Kind: BreakOutsideLoop})
	}
	return &ir.Break{}, nil
}

// analyzeReturn handles `return expr`: it requires a currentFunction
// with a non-void return type, and an expression assignable to it.
func (a *Analyzer) analyzeReturn(n *ast.ReturnStatement) (ir.Statement, error) {
	fn := a.scope.CurrentFunction()
	if fn == nil {
		return nil, a.abort(&ControlFlowError{base: base{at: n.Pos()}, Kind: ReturnOutsideFunction})
	}
	if fn.Type.ReturnType == types.VOID {
		return nil, a.abort(&ControlFlowError{base: base{at: n.Pos()}, Kind: ReturnValueInVoid})
	}
	expr, err := a.analyzeExpression(n.Expr)
	if err != nil {
		return nil, err
	}
	if !types.AssignableFrom(expr.ExprType(), fn.Type.ReturnType) {
		return nil, a.abort(&TypeMismatchError{
			base: base{at: n.Expr.Pos()}, Kind: NotAssignable,
			From: expr.ExprType(), To: fn.Type.ReturnType,
		})
	}
	return &ir.Return{Expr: expr}, nil
}

// analyzeShortReturn handles a bare `return`, which requires a
// currentFunction with a void return type.
func (a *Analyzer) analyzeShortReturn(n *ast.ShortReturnStatement) (ir.Statement, error) {
	fn := a.scope.CurrentFunction()
	if fn == nil {
		return nil, a.abort(&ControlFlowError{base: base{at: n.Pos()}, Kind: ReturnOutsideFunction})
	}
	if fn.Type.ReturnType != types.VOID {
		return nil, a.abort(&ControlFlowError{base: base{at: n.Pos()}, Kind: ReturnValueMissing})
	}
	return &ir.ShortReturn{}, nil
}

func (a *Analyzer) requireBoolean(e ast.Expression) (ir.Expression, error) {
	expr, err := a.analyzeExpression(e)
	if err != nil {
		return nil, err
	}
	if expr.ExprType() != types.BOOLEAN {
		return nil, a.abort(&TypeMismatchError{base: base{at: e.Pos()}, Kind: ExpectedBoolean, Got: expr.ExprType()})
	}
	return expr, nil
}

func (a *Analyzer) requireInteger(e ast.Expression) (ir.Expression, error) {
	expr, err := a.analyzeExpression(e)
	if err != nil {
		return nil, err
	}
	if expr.ExprType() != types.INT {
		return nil, a.abort(&TypeMismatchError{base: base{at: e.Pos()}, Kind: ExpectedInteger, Got: expr.ExprType()})
	}
	return expr, nil
}

// analyzeIfStatement handles `if test { consequent } else alternate`.
// The consequent always opens a fresh scope; the
// alternate opens a fresh scope only when it's a trailing `else` block
// — an else-if link shares no new scope of its own here (the nested
// *ast.IfStatement opens its own when it's analyzed).
func (a *Analyzer) analyzeIfStatement(n *ast.IfStatement) (ir.Statement, error) {
	test, err := a.requireBoolean(n.Test)
	if err != nil {
		return nil, err
	}

	outer := a.scope
	a.scope = outer.EnterBlock()
	consequent, err := a.analyzeBlock(n.Consequent)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	var alt interface{}
	switch alternate := n.Alternate.(type) {
	case nil:
		alt = nil
	case *ast.IfStatement:
		nested, err := a.analyzeIfStatement(alternate)
		if err != nil {
			return nil, err
		}
		alt = nested.(*ir.IfStatement)
	case *ast.Block:
		a.scope = outer.EnterBlock()
		stmts, err := a.analyzeBlock(alternate.Statements)
		a.scope = outer
		if err != nil {
			return nil, err
		}
		alt = stmts
	}

	return &ir.IfStatement{Test: test, Consequent: consequent, Alternate: alt}, nil
}

// analyzeShortIfStatement handles `if test { consequent }` with no else.
func (a *Analyzer) analyzeShortIfStatement(n *ast.ShortIfStatement) (ir.Statement, error) {
	test, err := a.requireBoolean(n.Test)
	if err != nil {
		return nil, err
	}

	outer := a.scope
	a.scope = outer.EnterBlock()
	consequent, err := a.analyzeBlock(n.Consequent)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	return &ir.ShortIfStatement{Test: test, Consequent: consequent}, nil
}

// analyzeWhileStatement handles `while test { body }`.
func (a *Analyzer) analyzeWhileStatement(n *ast.WhileStatement) (ir.Statement, error) {
	test, err := a.requireBoolean(n.Test)
	if err != nil {
		return nil, err
	}

	outer := a.scope
	a.scope = outer.EnterLoop()
	body, err := a.analyzeBlock(n.Body)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	return &ir.WhileStatement{Test: test, Body: body}, nil
}

// analyzeRepeatStatement handles `repeat count { body }`.
func (a *Analyzer) analyzeRepeatStatement(n *ast.RepeatStatement) (ir.Statement, error) {
	count, err := a.requireInteger(n.Count)
	if err != nil {
		return nil, err
	}

	outer := a.scope
	a.scope = outer.EnterLoop()
	body, err := a.analyzeBlock(n.Body)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	return &ir.RepeatStatement{Count: count, Body: body}, nil
}

// analyzeForRangeStatement handles `for i in L op H { body }`: L and H
// must be integers; i is declared readOnly in a new inLoop=true frame
// before the body is analyzed.
func (a *Analyzer) analyzeForRangeStatement(n *ast.ForRangeStatement) (ir.Statement, error) {
	low, err := a.requireInteger(n.Low)
	if err != nil {
		return nil, err
	}
	high, err := a.requireInteger(n.High)
	if err != nil {
		return nil, err
	}

	outer := a.scope
	a.scope = outer.EnterLoop()
	iter := &ir.Variable{Name: n.Iterator, Type: types.INT, ReadOnly: true}
	if err := a.scope.Declare(n.Iterator, iter); err != nil {
		a.scope = outer
		return nil, a.abort(&AlreadyDeclaredError{base: base{at: n.Pos()}, Name: n.Iterator})
	}
	body, err := a.analyzeBlock(n.Body)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	op := ir.RangeInclusive
	if n.Op == ast.RangeExclusive {
		op = ir.RangeExclusive
	}

	return &ir.ForRangeStatement{Iterator: iter, Low: low, Op: op, High: high, Body: body}, nil
}

// analyzeForStatement handles `for x in C { body }`: C must have
// ArrayType; x is declared readOnly as an element of C's base type, in
// a new inLoop=true frame.
func (a *Analyzer) analyzeForStatement(n *ast.ForStatement) (ir.Statement, error) {
	collection, err := a.analyzeExpression(n.Collection)
	if err != nil {
		return nil, err
	}
	arrType, ok := collection.ExprType().(*types.ArrayType)
	if !ok {
		return nil, a.abort(&TypeMismatchError{base: base{at: n.Collection.Pos()}, Kind: ExpectedArray, Got: collection.ExprType()})
	}

	outer := a.scope
	a.scope = outer.EnterLoop()
	iter := &ir.Variable{Name: n.Iterator, Type: arrType.Base, ReadOnly: true}
	if err := a.scope.Declare(n.Iterator, iter); err != nil {
		a.scope = outer
		return nil, a.abort(&AlreadyDeclaredError{base: base{at: n.Pos()}, Name: n.Iterator})
	}
	body, err := a.analyzeBlock(n.Body)
	a.scope = outer
	if err != nil {
		return nil, err
	}

	return &ir.ForStatement{Iterator: iter, Collection: collection, Body: body}, nil
}

// analyzeExpressionStatement handles a bare call used for its side
// effect.
func (a *Analyzer) analyzeExpressionStatement(n *ast.ExpressionStatement) (ir.Statement, error) {
	expr, err := a.analyzeExpression(n.Expr)
	if err != nil {
		return nil, err
	}
	return &ir.ExpressionStatement{Expr: expr}, nil
}
