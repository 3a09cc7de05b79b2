package optimizer

import "github.com/rtoal/carlos/internal/ir"

// optimizeExpr rewrites a single expression bottom-up: children are
// optimized first, then the node itself is folded if a pass applies.
func (o *optimizer) optimizeExpr(e ir.Expression) ir.Expression {
	switch expr := e.(type) {
	case *ir.Literal:
		return expr
	case *ir.VariableExpression:
		return expr
	case *ir.FunctionExpression:
		return expr
	case *ir.BinaryExpression:
		return o.optimizeBinary(expr)
	case *ir.UnaryExpression:
		return o.optimizeUnary(expr)
	case *ir.Conditional:
		return o.optimizeConditional(expr)
	case *ir.SubscriptExpression:
		return ir.NewSubscriptExpression(o.optimizeExpr(expr.Array), o.optimizeExpr(expr.Index), expr.ExprType())
	case *ir.MemberExpression:
		return ir.NewMemberExpression(o.optimizeExpr(expr.Object), expr.Field, expr.IsOptionalAccess, expr.ExprType())
	case *ir.ArrayExpression:
		elements := make([]ir.Expression, len(expr.Elements))
		for i, el := range expr.Elements {
			elements[i] = o.optimizeExpr(el)
		}
		return ir.NewArrayExpression(elements, expr.ExprType())
	case *ir.EmptyArray:
		return expr
	case *ir.EmptyOptional:
		return expr
	case *ir.FunctionCall:
		callee := o.optimizeExpr(expr.Callee)
		args := make([]ir.Expression, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = o.optimizeExpr(a)
		}
		return ir.NewFunctionCall(callee, args, expr.ExprType())
	case *ir.ConstructorCall:
		args := make([]ir.Expression, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = o.optimizeExpr(a)
		}
		return ir.NewConstructorCall(expr.StructType, args)
	default:
		return e
	}
}

func (o *optimizer) optimizeExprs(exprs []ir.Expression) []ir.Expression {
	out := make([]ir.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = o.optimizeExpr(e)
	}
	return out
}

// optimizeBinary applies, in order: the `?? ` empty-optional unwrap,
// boolean short-circuit simplification, identity/absorbing algebraic
// rewrites, and numeric constant folding. Each rule checks its own Pass
// so any combination can be disabled independently.
func (o *optimizer) optimizeBinary(expr *ir.BinaryExpression) ir.Expression {
	left := o.optimizeExpr(expr.Left)
	right := o.optimizeExpr(expr.Right)

	if o.cfg.isEnabled(PassUnwrapOptional) && expr.Op == "??" {
		if _, ok := left.(*ir.EmptyOptional); ok {
			return right
		}
	}

	if o.cfg.isEnabled(PassShortCircuit) {
		if rewritten, ok := foldShortCircuit(expr.Op, left, right); ok {
			return rewritten
		}
	}

	if o.cfg.isEnabled(PassIdentityAlgebra) {
		if rewritten, ok := foldIdentityAlgebra(expr.Op, left, right, expr.ExprType()); ok {
			return rewritten
		}
	}

	if o.cfg.isEnabled(PassConstantFold) {
		if rewritten, ok := foldConstantBinary(expr.Op, left, right, expr.ExprType()); ok {
			return rewritten
		}
	}

	return ir.NewBinaryExpression(expr.Op, left, right, expr.ExprType())
}

// optimizeUnary folds numeric literal negation; `#`, `!`, and `some`
// have no compile-time-foldable form.
func (o *optimizer) optimizeUnary(expr *ir.UnaryExpression) ir.Expression {
	operand := o.optimizeExpr(expr.Operand)

	if o.cfg.isEnabled(PassConstantFold) && expr.Op == "-" {
		if lit, ok := operand.(*ir.Literal); ok {
			switch v := lit.Value.(type) {
			case int64:
				return ir.NewLiteral(-v, lit.ExprType())
			case float64:
				return ir.NewLiteral(-v, lit.ExprType())
			}
		}
	}

	return ir.NewUnaryExpression(expr.Op, operand, expr.ExprType())
}

// optimizeConditional folds `test ? c : a` to whichever branch the test
// literal selects.
func (o *optimizer) optimizeConditional(expr *ir.Conditional) ir.Expression {
	test := o.optimizeExpr(expr.Test)
	consequent := o.optimizeExpr(expr.Consequent)
	alternate := o.optimizeExpr(expr.Alternate)

	if o.cfg.isEnabled(PassConditionalFold) {
		if b, ok := literalBool(test); ok {
			if b {
				return consequent
			}
			return alternate
		}
	}

	return ir.NewConditional(test, consequent, alternate, expr.ExprType())
}

// exprEqual reports whether a and b denote the same value path:
// identical variable/function entities, identical literal values, or
// structurally identical subscript/member chains. Used only for
// self-assignment elimination, not general CSE.
func exprEqual(a, b ir.Expression) bool {
	switch av := a.(type) {
	case *ir.VariableExpression:
		bv, ok := b.(*ir.VariableExpression)
		return ok && av.Variable == bv.Variable
	case *ir.FunctionExpression:
		bv, ok := b.(*ir.FunctionExpression)
		return ok && av.Function == bv.Function
	case *ir.Literal:
		bv, ok := b.(*ir.Literal)
		return ok && av.Value == bv.Value
	case *ir.SubscriptExpression:
		bv, ok := b.(*ir.SubscriptExpression)
		return ok && exprEqual(av.Array, bv.Array) && exprEqual(av.Index, bv.Index)
	case *ir.MemberExpression:
		bv, ok := b.(*ir.MemberExpression)
		return ok && av.Field == bv.Field && av.IsOptionalAccess == bv.IsOptionalAccess && exprEqual(av.Object, bv.Object)
	default:
		return false
	}
}
