package optimizer

import (
	"math"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

// literalBool reports whether e is a boolean literal and its value.
func literalBool(e ir.Expression) (bool, bool) {
	lit, ok := e.(*ir.Literal)
	if !ok {
		return false, false
	}
	b, ok := lit.Value.(bool)
	return b, ok
}

// literalInt reports whether e is an integer literal and its value.
func literalInt(e ir.Expression) (int64, bool) {
	lit, ok := e.(*ir.Literal)
	if !ok {
		return 0, false
	}
	n, ok := lit.Value.(int64)
	return n, ok
}

func isZeroLiteral(e ir.Expression) bool {
	lit, ok := e.(*ir.Literal)
	if !ok {
		return false
	}
	switch v := lit.Value.(type) {
	case int64:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}

func isOneLiteral(e ir.Expression) bool {
	lit, ok := e.(*ir.Literal)
	if !ok {
		return false
	}
	switch v := lit.Value.(type) {
	case int64:
		return v == 1
	case float64:
		return v == 1
	}
	return false
}

// oneLike builds a literal `1` in the same numeric domain (int64 or
// float64) as sample.
func oneLike(sample *ir.Literal, t types.Type) *ir.Literal {
	if _, ok := sample.Value.(float64); ok {
		return ir.NewLiteral(float64(1), t)
	}
	return ir.NewLiteral(int64(1), t)
}

// foldShortCircuit implements the four boolean short-circuit rewrites:
// `true && r` → r, `l && true` → l, `false || r` → r, `l || false` → l.
func foldShortCircuit(op string, left, right ir.Expression) (ir.Expression, bool) {
	switch op {
	case "&&":
		if b, ok := literalBool(left); ok && b {
			return right, true
		}
		if b, ok := literalBool(right); ok && b {
			return left, true
		}
	case "||":
		if b, ok := literalBool(left); ok && !b {
			return right, true
		}
		if b, ok := literalBool(right); ok && !b {
			return left, true
		}
	}
	return nil, false
}

// foldIdentityAlgebra implements the identity/absorbing rewrites for
// `+ - * / **`: additive and multiplicative identities
// collapse to the non-identity operand; multiplication by / division
// into zero collapses to zero.
func foldIdentityAlgebra(op string, left, right ir.Expression, t types.Type) (ir.Expression, bool) {
	switch op {
	case "+":
		if isZeroLiteral(right) {
			return left, true
		}
		if isZeroLiteral(left) {
			return right, true
		}
	case "-":
		if isZeroLiteral(right) {
			return left, true
		}
		if isZeroLiteral(left) {
			return ir.NewUnaryExpression("-", right, t), true
		}
	case "*":
		if isOneLiteral(right) {
			return left, true
		}
		if isOneLiteral(left) {
			return right, true
		}
		if isZeroLiteral(right) {
			return right, true
		}
		if isZeroLiteral(left) {
			return left, true
		}
	case "/":
		if isOneLiteral(right) {
			return left, true
		}
		if isZeroLiteral(left) {
			return left, true
		}
	case "**":
		if lit, ok := right.(*ir.Literal); ok && isZeroLiteral(right) {
			return oneLike(lit, t), true
		}
		if isOneLiteral(left) {
			return left, true
		}
	}
	return nil, false
}

// foldConstantBinary folds binary operators when both operands are
// numeric literals of matching domain (int-int or float-float):
// `+ - * / ** % < <= == != >= >` collapse to a literal.
func foldConstantBinary(op string, left, right ir.Expression, t types.Type) (ir.Expression, bool) {
	if li, ok := left.(*ir.Literal); ok {
		if ri, ok := right.(*ir.Literal); ok {
			if lv, ok := li.Value.(int64); ok {
				if rv, ok := ri.Value.(int64); ok {
					return foldIntBinary(op, lv, rv, t)
				}
				return nil, false
			}
			if lv, ok := li.Value.(float64); ok {
				if rv, ok := ri.Value.(float64); ok {
					return foldFloatBinary(op, lv, rv, t)
				}
			}
		}
	}
	return nil, false
}

func foldIntBinary(op string, l, r int64, t types.Type) (ir.Expression, bool) {
	switch op {
	case "+":
		return ir.NewLiteral(l+r, t), true
	case "-":
		return ir.NewLiteral(l-r, t), true
	case "*":
		return ir.NewLiteral(l*r, t), true
	case "/":
		if r == 0 {
			return nil, false
		}
		return ir.NewLiteral(l/r, t), true
	case "%":
		if r == 0 {
			return nil, false
		}
		return ir.NewLiteral(l%r, t), true
	case "**":
		if r < 0 {
			return nil, false
		}
		return ir.NewLiteral(intPow(l, r), t), true
	case "<":
		return ir.NewLiteral(l < r, t), true
	case "<=":
		return ir.NewLiteral(l <= r, t), true
	case ">":
		return ir.NewLiteral(l > r, t), true
	case ">=":
		return ir.NewLiteral(l >= r, t), true
	case "==":
		return ir.NewLiteral(l == r, t), true
	case "!=":
		return ir.NewLiteral(l != r, t), true
	}
	return nil, false
}

func foldFloatBinary(op string, l, r float64, t types.Type) (ir.Expression, bool) {
	switch op {
	case "+":
		return ir.NewLiteral(l+r, t), true
	case "-":
		return ir.NewLiteral(l-r, t), true
	case "*":
		return ir.NewLiteral(l*r, t), true
	case "/":
		if r == 0 {
			return nil, false
		}
		return ir.NewLiteral(l/r, t), true
	case "%":
		if r == 0 {
			return nil, false
		}
		return ir.NewLiteral(math.Mod(l, r), t), true
	case "**":
		return ir.NewLiteral(math.Pow(l, r), t), true
	case "<":
		return ir.NewLiteral(l < r, t), true
	case "<=":
		return ir.NewLiteral(l <= r, t), true
	case ">":
		return ir.NewLiteral(l > r, t), true
	case ">=":
		return ir.NewLiteral(l >= r, t), true
	case "==":
		return ir.NewLiteral(l == r, t), true
	case "!=":
		return ir.NewLiteral(l != r, t), true
	}
	return nil, false
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
