package semantic

import (
	"github.com/rtoal/carlos/internal/ast"
	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

// analyzeExpression dispatches a single parse-tree expression node to
// its construct handler, attaching a type to the result. Every
// expression node carries a non-nil type by analyzer exit.
func (a *Analyzer) analyzeExpression(e ast.Expression) (ir.Expression, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return a.analyzeLiteral(expr)
	case *ast.IdentifierExpression:
		return a.analyzeIdentifier(expr)
	case *ast.BinaryExpression:
		return a.analyzeBinaryExpression(expr)
	case *ast.UnaryExpression:
		return a.analyzeUnaryExpression(expr)
	case *ast.ConditionalExpression:
		return a.analyzeConditionalExpression(expr)
	case *ast.SubscriptExpression:
		return a.analyzeSubscriptExpression(expr)
	case *ast.MemberExpression:
		return a.analyzeMemberExpression(expr)
	case *ast.ArrayExpression:
		return a.analyzeArrayExpression(expr)
	case *ast.EmptyArrayExpression:
		return a.analyzeEmptyArrayExpression(expr)
	case *ast.EmptyOptionalExpression:
		return a.analyzeEmptyOptionalExpression(expr)
	case *ast.CallExpression:
		return a.analyzeCallExpression(expr)
	default:
		return nil, a.abort(&NotATypeError{base: base{at: e.Pos()}, Name: "<unknown expression>"})
	}
}

func (a *Analyzer) analyzeExpressionSlice(es []ast.Expression) ([]ir.Expression, error) {
	out := make([]ir.Expression, len(es))
	for i, e := range es {
		v, err := a.analyzeExpression(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (a *Analyzer) analyzeLiteral(n *ast.Literal) (ir.Expression, error) {
	var t types.Type
	switch n.Kind {
	case ast.IntLiteralKind:
		t = types.INT
	case ast.FloatLiteralKind:
		t = types.FLOAT
	case ast.BooleanLiteralKind:
		t = types.BOOLEAN
	case ast.StringLiteralKind:
		t = types.STRING
	default:
		return nil, a.abort(&NotATypeError{base: base{at: n.Pos()}, Name: "<unknown literal>"})
	}
	return ir.NewLiteral(n.Value, t), nil
}

// analyzeIdentifier resolves a bare name reference. A name bound to a
// struct type is not a value on its own — it's only meaningful as the
// callee of a constructor call (analyzeCallExpression short-circuits
// that case before reaching here).
func (a *Analyzer) analyzeIdentifier(n *ast.IdentifierExpression) (ir.Expression, error) {
	entity, ok := a.scope.Lookup(n.Name)
	if !ok {
		return nil, a.abort(&NotDeclaredError{base: base{at: n.Pos()}, Name: n.Name})
	}
	switch e := entity.(type) {
	case *ir.Variable:
		return ir.NewVariableExpression(e), nil
	case *ir.Function:
		return ir.NewFunctionExpression(e), nil
	default:
		return nil, a.abort(&NotCallableError{base: base{at: n.Pos()}})
	}
}

func (a *Analyzer) analyzeBinaryExpression(n *ast.BinaryExpression) (ir.Expression, error) {
	left, err := a.analyzeExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := a.analyzeExpression(n.Right)
	if err != nil {
		return nil, err
	}
	lt, rt := left.ExprType(), right.ExprType()

	switch n.Op {
	case "??":
		return a.analyzeUnwrapElse(n, left, right)
	case "||", "&&":
		if lt != types.BOOLEAN {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedBoolean, Got: lt})
		}
		if rt != types.BOOLEAN {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Right.Pos()}, Kind: ExpectedBoolean, Got: rt})
		}
		return ir.NewBinaryExpression(n.Op, left, right, types.BOOLEAN), nil
	case "|", "^", "&", "<<", ">>":
		if lt != types.INT {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedInteger, Got: lt})
		}
		if rt != types.INT {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Right.Pos()}, Kind: ExpectedInteger, Got: rt})
		}
		return ir.NewBinaryExpression(n.Op, left, right, types.INT), nil
	case "<", "<=", ">", ">=":
		if !types.IsNumericOrString(lt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedNumberOrString, Got: lt})
		}
		if !types.Equivalent(lt, rt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Pos()}, Kind: ExpectedSameType})
		}
		return ir.NewBinaryExpression(n.Op, left, right, types.BOOLEAN), nil
	case "==", "!=":
		if !types.Equivalent(lt, rt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Pos()}, Kind: ExpectedSameType})
		}
		return ir.NewBinaryExpression(n.Op, left, right, types.BOOLEAN), nil
	case "+":
		if !types.IsNumericOrString(lt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedNumberOrString, Got: lt})
		}
		if !types.Equivalent(lt, rt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Pos()}, Kind: ExpectedSameType})
		}
		return ir.NewBinaryExpression(n.Op, left, right, lt), nil
	case "-", "*", "/", "%", "**":
		if !types.IsNumeric(lt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedNumber, Got: lt})
		}
		if !types.Equivalent(lt, rt) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Pos()}, Kind: ExpectedSameType})
		}
		return ir.NewBinaryExpression(n.Op, left, right, lt), nil
	default:
		return nil, a.abort(&NotATypeError{base: base{at: n.Pos()}, Name: "<unknown operator " + n.Op + ">"})
	}
}

// analyzeUnwrapElse handles `left ?? right`: the result is Optional<T>
// only when right is itself assignable-equivalent to Optional<T>,
// otherwise plain T.
func (a *Analyzer) analyzeUnwrapElse(n *ast.BinaryExpression, left, right ir.Expression) (ir.Expression, error) {
	opt, ok := left.ExprType().(*types.OptionalType)
	if !ok {
		return nil, a.abort(&TypeMismatchError{base: base{at: n.Left.Pos()}, Kind: ExpectedOptional, Got: left.ExprType()})
	}
	rightIsOptional := types.Equivalent(right.ExprType(), left.ExprType())
	if !rightIsOptional && !types.AssignableFrom(right.ExprType(), opt.Base) {
		return nil, a.abort(&TypeMismatchError{
			base: base{at: n.Right.Pos()}, Kind: NotAssignable,
			From: right.ExprType(), To: opt.Base,
		})
	}
	resultType := opt.Base
	if rightIsOptional {
		resultType = left.ExprType()
	}
	return ir.NewBinaryExpression("??", left, right, resultType), nil
}

func (a *Analyzer) analyzeUnaryExpression(n *ast.UnaryExpression) (ir.Expression, error) {
	operand, err := a.analyzeExpression(n.Operand)
	if err != nil {
		return nil, err
	}
	ot := operand.ExprType()

	switch n.Op {
	case "#":
		if _, ok := ot.(*types.ArrayType); !ok {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Operand.Pos()}, Kind: ExpectedArray, Got: ot})
		}
		return ir.NewUnaryExpression(n.Op, operand, types.INT), nil
	case "-":
		if !types.IsNumeric(ot) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Operand.Pos()}, Kind: ExpectedNumber, Got: ot})
		}
		return ir.NewUnaryExpression(n.Op, operand, ot), nil
	case "!":
		if ot != types.BOOLEAN {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Operand.Pos()}, Kind: ExpectedBoolean, Got: ot})
		}
		return ir.NewUnaryExpression(n.Op, operand, types.BOOLEAN), nil
	case "some":
		return ir.NewUnaryExpression(n.Op, operand, &types.OptionalType{Base: ot}), nil
	default:
		return nil, a.abort(&NotATypeError{base: base{at: n.Pos()}, Name: "<unknown operator " + n.Op + ">"})
	}
}

func (a *Analyzer) analyzeConditionalExpression(n *ast.ConditionalExpression) (ir.Expression, error) {
	test, err := a.requireBoolean(n.Test)
	if err != nil {
		return nil, err
	}
	cons, err := a.analyzeExpression(n.Consequent)
	if err != nil {
		return nil, err
	}
	alt, err := a.analyzeExpression(n.Alternate)
	if err != nil {
		return nil, err
	}
	if !types.Equivalent(cons.ExprType(), alt.ExprType()) {
		return nil, a.abort(&TypeMismatchError{base: base{at: n.Pos()}, Kind: ExpectedSameType})
	}
	return ir.NewConditional(test, cons, alt, cons.ExprType()), nil
}

func (a *Analyzer) analyzeSubscriptExpression(n *ast.SubscriptExpression) (ir.Expression, error) {
	arr, err := a.analyzeExpression(n.Array)
	if err != nil {
		return nil, err
	}
	at, ok := arr.ExprType().(*types.ArrayType)
	if !ok {
		return nil, a.abort(&TypeMismatchError{base: base{at: n.Array.Pos()}, Kind: ExpectedArray, Got: arr.ExprType()})
	}
	idx, err := a.requireInteger(n.Index)
	if err != nil {
		return nil, err
	}
	return ir.NewSubscriptExpression(arr, idx, at.Base), nil
}

func (a *Analyzer) analyzeMemberExpression(n *ast.MemberExpression) (ir.Expression, error) {
	obj, err := a.analyzeExpression(n.Object)
	if err != nil {
		return nil, err
	}

	var st *types.StructType
	if n.Optional {
		opt, ok := obj.ExprType().(*types.OptionalType)
		if !ok {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Object.Pos()}, Kind: ExpectedOptionalStruct, Got: obj.ExprType()})
		}
		s, ok := opt.Base.(*types.StructType)
		if !ok {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Object.Pos()}, Kind: ExpectedOptionalStruct, Got: obj.ExprType()})
		}
		st = s
	} else {
		s, ok := obj.ExprType().(*types.StructType)
		if !ok {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Object.Pos()}, Kind: ExpectedStruct, Got: obj.ExprType()})
		}
		st = s
	}

	field, ok := st.FieldRef(n.Field)
	if !ok {
		return nil, a.abort(&StructError{base: base{at: n.Pos()}, Kind: FieldNotFound, Name: n.Field})
	}

	// Optional-chaining always yields an optional of the field's type,
	// even when the field is itself already optional.
	resultType := field.Type
	if n.Optional {
		resultType = &types.OptionalType{Base: field.Type}
	}

	return ir.NewMemberExpression(obj, field, n.Optional, resultType), nil
}

func (a *Analyzer) analyzeArrayExpression(n *ast.ArrayExpression) (ir.Expression, error) {
	elements, err := a.analyzeExpressionSlice(n.Elements)
	if err != nil {
		return nil, err
	}
	first := elements[0].ExprType()
	for i := 1; i < len(elements); i++ {
		if !types.Equivalent(elements[i].ExprType(), first) {
			return nil, a.abort(&TypeMismatchError{base: base{at: n.Elements[i].Pos()}, Kind: ExpectedSameType})
		}
	}
	return ir.NewArrayExpression(elements, &types.ArrayType{Base: first}), nil
}

func (a *Analyzer) analyzeEmptyArrayExpression(n *ast.EmptyArrayExpression) (ir.Expression, error) {
	base, err := a.resolveTypeExpression(n.BaseType)
	if err != nil {
		return nil, err
	}
	return ir.NewEmptyArray(base), nil
}

func (a *Analyzer) analyzeEmptyOptionalExpression(n *ast.EmptyOptionalExpression) (ir.Expression, error) {
	base, err := a.resolveTypeExpression(n.BaseType)
	if err != nil {
		return nil, err
	}
	return ir.NewEmptyOptional(base), nil
}

// analyzeCallExpression handles `c(a…)`: when the callee
// is a bare name bound to a struct type, this is a ConstructorCall;
// when it's bound to a function (or evaluates to a FunctionType value),
// it's a FunctionCall; anything else is NotCallable.
func (a *Analyzer) analyzeCallExpression(n *ast.CallExpression) (ir.Expression, error) {
	if ident, ok := n.Callee.(*ast.IdentifierExpression); ok {
		entity, ok := a.scope.Lookup(ident.Name)
		if !ok {
			return nil, a.abort(&NotDeclaredError{base: base{at: ident.Pos()}, Name: ident.Name})
		}
		if st, ok := entity.(*types.StructType); ok {
			return a.analyzeConstructorCall(n, st)
		}
	}

	callee, err := a.analyzeExpression(n.Callee)
	if err != nil {
		return nil, err
	}
	ft, ok := callee.ExprType().(*types.FunctionType)
	if !ok {
		return nil, a.abort(&NotCallableError{base: base{at: n.Callee.Pos()}})
	}

	args, err := a.checkCallArguments(n, ft.Params)
	if err != nil {
		return nil, err
	}

	return ir.NewFunctionCall(callee, args, ft.ReturnType), nil
}

func (a *Analyzer) analyzeConstructorCall(n *ast.CallExpression, st *types.StructType) (ir.Expression, error) {
	fieldTypes := make([]types.Type, len(st.Fields))
	for i, f := range st.Fields {
		fieldTypes[i] = f.Type
	}
	args, err := a.checkCallArguments(n, fieldTypes)
	if err != nil {
		return nil, err
	}
	return ir.NewConstructorCall(st, args), nil
}

// checkCallArguments analyzes n's arguments and checks their count and
// per-position assignability against paramTypes.
func (a *Analyzer) checkCallArguments(n *ast.CallExpression, paramTypes []types.Type) ([]ir.Expression, error) {
	if len(n.Args) != len(paramTypes) {
		return nil, a.abort(&ArgumentError{base: base{at: n.Pos()}, Expected: len(paramTypes), Got: len(n.Args)})
	}
	args, err := a.analyzeExpressionSlice(n.Args)
	if err != nil {
		return nil, err
	}
	for i, arg := range args {
		if !types.AssignableFrom(arg.ExprType(), paramTypes[i]) {
			return nil, a.abort(&TypeMismatchError{
				base: base{at: n.Args[i].Pos()}, Kind: NotAssignable,
				From: arg.ExprType(), To: paramTypes[i],
			})
		}
	}
	return args, nil
}
