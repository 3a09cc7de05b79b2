package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rtoal/carlos/internal/ir"
	"golang.org/x/text/unicode/norm"
)

// emitExpr renders a decorated expression to target source text,
// parenthesized to preserve the IR's structural grouping. Statement-level
// callers append their own terminator; emitExpr itself never does.
func (g *Generator) emitExpr(e ir.Expression) string {
	switch expr := e.(type) {
	case *ir.Literal:
		return g.emitLiteral(expr)
	case *ir.VariableExpression:
		if expr.Variable == g.registry.Pi {
			return "Math.PI"
		}
		return g.mangler.Name(expr.Variable, expr.Variable.Name)
	case *ir.FunctionExpression:
		if name, ok := builtinName(expr.Function, g.registry); ok {
			return name
		}
		return g.mangler.Name(expr.Function, expr.Function.Name)
	case *ir.BinaryExpression:
		return g.emitBinary(expr)
	case *ir.UnaryExpression:
		return g.emitUnary(expr)
	case *ir.Conditional:
		return fmt.Sprintf("(%s ? %s : %s)", g.emitExpr(expr.Test), g.emitExpr(expr.Consequent), g.emitExpr(expr.Alternate))
	case *ir.SubscriptExpression:
		return fmt.Sprintf("%s[%s]", g.emitExpr(expr.Array), g.emitExpr(expr.Index))
	case *ir.MemberExpression:
		op := "."
		if expr.IsOptionalAccess {
			op = "?."
		}
		return fmt.Sprintf("%s%s%s", g.emitExpr(expr.Object), op, g.mangler.Name(expr.Field, expr.Field.Name))
	case *ir.ArrayExpression:
		parts := make([]string, len(expr.Elements))
		for i, el := range expr.Elements {
			parts[i] = g.emitExpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ir.EmptyArray:
		return "[]"
	case *ir.EmptyOptional:
		return "null"
	case *ir.FunctionCall:
		return g.emitCall(expr)
	case *ir.ConstructorCall:
		return g.emitConstructorCall(expr)
	default:
		return ""
	}
}

// emitLiteral renders a literal's value; string contents are
// NFC-normalized before quoting so two differently-composed source
// strings that denote the same text emit identical output.
func (g *Generator) emitLiteral(lit *ir.Literal) string {
	switch v := lit.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(norm.NFC.String(v))
	default:
		return ""
	}
}

// emitBinary renders a binary operator, widening `==`/`!=` to the
// target's strict equality and wrapping the whole expression in
// parentheses to preserve grouping.
func (g *Generator) emitBinary(expr *ir.BinaryExpression) string {
	op := expr.Op
	switch op {
	case "==":
		op = "==="
	case "!=":
		op = "!=="
	}
	return fmt.Sprintf("(%s %s %s)", g.emitExpr(expr.Left), op, g.emitExpr(expr.Right))
}

// emitUnary renders `#` (array length), `-`, `!`, and `some` (a
// no-op wrapper, since Optional<T> is represented as a nullable T).
func (g *Generator) emitUnary(expr *ir.UnaryExpression) string {
	switch expr.Op {
	case "#":
		return fmt.Sprintf("%s.length", g.emitExpr(expr.Operand))
	case "-":
		return fmt.Sprintf("(-%s)", g.emitExpr(expr.Operand))
	case "!":
		return fmt.Sprintf("(!%s)", g.emitExpr(expr.Operand))
	case "some":
		return g.emitExpr(expr.Operand)
	default:
		return g.emitExpr(expr.Operand)
	}
}

func (g *Generator) emitCall(expr *ir.FunctionCall) string {
	args := make([]string, len(expr.Args))
	for i, a := range expr.Args {
		args[i] = g.emitExpr(a)
	}

	if fe, ok := expr.Callee.(*ir.FunctionExpression); ok {
		if lowered, ok := lowerBuiltinCall(fe.Function, args, g.registry); ok {
			return lowered
		}
	}

	return fmt.Sprintf("%s(%s)", g.emitExpr(expr.Callee), strings.Join(args, ", "))
}

// emitConstructorCall uses the target's object-creation form.
func (g *Generator) emitConstructorCall(expr *ir.ConstructorCall) string {
	name := g.mangler.Name(expr.StructType, expr.StructType.Name)
	args := make([]string, len(expr.Args))
	for i, a := range expr.Args {
		args[i] = g.emitExpr(a)
	}
	return fmt.Sprintf("new %s(%s)", name, strings.Join(args, ", "))
}
