package ir

import "github.com/rtoal/carlos/internal/types"

// Expression is implemented by every decorated expression node. Every
// expression carries a non-nil Type by analyzer exit.
type Expression interface {
	ExprType() types.Type
}

// typed is embedded by every expression node to carry its type.
type typed struct {
	Type types.Type
}

func (t *typed) ExprType() types.Type { return t.Type }

// Literal is a fully-evaluated int/float/boolean/string constant.
type Literal struct {
	typed
	Value interface{}
}

// NewLiteral builds a Literal of the given type and value.
func NewLiteral(value interface{}, t types.Type) *Literal {
	return &Literal{typed: typed{Type: t}, Value: value}
}

// VariableExpression references a Variable entity by identity.
type VariableExpression struct {
	typed
	Variable *Variable
}

func NewVariableExpression(v *Variable) *VariableExpression {
	return &VariableExpression{typed: typed{Type: v.Type}, Variable: v}
}

// FunctionExpression references a Function entity by identity — used
// when a function name is used as a first-class value (e.g. passed as
// an argument), as distinct from being the callee of a CallExpression.
type FunctionExpression struct {
	typed
	Function *Function
}

func NewFunctionExpression(f *Function) *FunctionExpression {
	return &FunctionExpression{typed: typed{Type: f.Type}, Function: f}
}

// BinaryExpression is a decorated binary operation.
type BinaryExpression struct {
	typed
	Op    string
	Left  Expression
	Right Expression
}

func NewBinaryExpression(op string, left, right Expression, t types.Type) *BinaryExpression {
	return &BinaryExpression{typed: typed{Type: t}, Op: op, Left: left, Right: right}
}

// UnaryExpression is a decorated unary operation (`#`, `-`, `!`, `some`).
type UnaryExpression struct {
	typed
	Op      string
	Operand Expression
}

func NewUnaryExpression(op string, operand Expression, t types.Type) *UnaryExpression {
	return &UnaryExpression{typed: typed{Type: t}, Op: op, Operand: operand}
}

// Conditional is `test ? consequent : alternate`.
type Conditional struct {
	typed
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func NewConditional(test, consequent, alternate Expression, t types.Type) *Conditional {
	return &Conditional{typed: typed{Type: t}, Test: test, Consequent: consequent, Alternate: alternate}
}

// SubscriptExpression is `array[index]`.
type SubscriptExpression struct {
	typed
	Array Expression
	Index Expression
}

func NewSubscriptExpression(array, index Expression, t types.Type) *SubscriptExpression {
	return &SubscriptExpression{typed: typed{Type: t}, Array: array, Index: index}
}

// MemberExpression is `object.field` (IsOptionalAccess false) or
// `object?.field` (true). Result type is the field's type for `.`, and
// OptionalType(field type) for `?.` — always, even if the field is
// itself already optional. Field is the struct's own *types.Field slot
// rather than a bare name, so every reference to a given field shares one
// identity, the same way a variable reference shares identity with its
// declaration.
type MemberExpression struct {
	typed
	Object           Expression
	Field            *types.Field
	IsOptionalAccess bool
}

func NewMemberExpression(object Expression, field *types.Field, isOptionalAccess bool, t types.Type) *MemberExpression {
	return &MemberExpression{typed: typed{Type: t}, Object: object, Field: field, IsOptionalAccess: isOptionalAccess}
}

// ArrayExpression is a nonempty literal array; its Type is
// ArrayType(Elements[0].ExprType()).
type ArrayExpression struct {
	typed
	Elements []Expression
}

func NewArrayExpression(elements []Expression, t types.Type) *ArrayExpression {
	return &ArrayExpression{typed: typed{Type: t}, Elements: elements}
}

// EmptyArray is `[](of T)`; Type is ArrayType(BaseType).
type EmptyArray struct {
	typed
	BaseType types.Type
}

func NewEmptyArray(baseType types.Type) *EmptyArray {
	return &EmptyArray{typed: typed{Type: &types.ArrayType{Base: baseType}}, BaseType: baseType}
}

// EmptyOptional is `no T`; Type is OptionalType(BaseType).
type EmptyOptional struct {
	typed
	BaseType types.Type
}

func NewEmptyOptional(baseType types.Type) *EmptyOptional {
	return &EmptyOptional{typed: typed{Type: &types.OptionalType{Base: baseType}}, BaseType: baseType}
}

// FunctionCall is `callee(args...)` where callee evaluates to a
// FunctionType. Callee is the full decorated expression (typically a
// *FunctionExpression wrapping a directly-named *Function, but may be
// any expression whose ExprType() is a *types.FunctionType) so the
// generator can still recover entity identity via a type switch when
// the callee is a direct name, for built-in lowering.
type FunctionCall struct {
	typed
	Callee Expression
	Args   []Expression
}

func NewFunctionCall(callee Expression, args []Expression, t types.Type) *FunctionCall {
	return &FunctionCall{typed: typed{Type: t}, Callee: callee, Args: args}
}

// ConstructorCall is `S(args...)` where S is a StructType; Type is that
// StructType.
type ConstructorCall struct {
	typed
	StructType *types.StructType
	Args       []Expression
}

func NewConstructorCall(structType *types.StructType, args []Expression) *ConstructorCall {
	return &ConstructorCall{typed: typed{Type: structType}, StructType: structType, Args: args}
}
