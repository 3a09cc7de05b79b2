package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/stdlib"
	"github.com/rtoal/carlos/internal/types"
)

func intLit(n int64) *ir.Literal { return ir.NewLiteral(n, types.INT) }

func TestGenerateVariableAndFunctionDeclarations(t *testing.T) {
	x := &ir.Variable{Name: "x", Type: types.INT, ReadOnly: true}
	fn := &ir.Function{Name: "square", Type: types.NewFunctionType([]types.Type{types.INT}, types.INT)}
	param := &ir.Variable{Name: "n", Type: types.INT}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.VariableDeclaration{Variable: x, Initializer: intLit(5)},
		&ir.FunctionDeclaration{
			Function: fn,
			Params:   []*ir.Variable{param},
			Body: []ir.Statement{
				&ir.Return{Expr: ir.NewBinaryExpression("*", ir.NewVariableExpression(param), ir.NewVariableExpression(param), types.INT)},
			},
		},
		&ir.ExpressionStatement{Expr: ir.NewFunctionCall(ir.NewFunctionExpression(fn), []ir.Expression{ir.NewVariableExpression(x)}, types.INT)},
	}}

	snaps.MatchSnapshot(t, "variable_and_function_decl", Generate(program))
}

func TestGenerateIfElseIfChain(t *testing.T) {
	v := &ir.Variable{Name: "n", Type: types.INT}
	ref := ir.NewVariableExpression(v)

	program := &ir.Program{Statements: []ir.Statement{
		&ir.IfStatement{
			Test:       ir.NewBinaryExpression("<", ref, intLit(0), types.BOOLEAN),
			Consequent: []ir.Statement{&ir.ExpressionStatement{Expr: intLit(-1)}},
			Alternate: &ir.IfStatement{
				Test:       ir.NewBinaryExpression("==", ref, intLit(0), types.BOOLEAN),
				Consequent: []ir.Statement{&ir.ExpressionStatement{Expr: intLit(0)}},
				Alternate:  []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
			},
		},
	}}

	snaps.MatchSnapshot(t, "if_else_if_chain", Generate(program))
}

func TestGenerateLoops(t *testing.T) {
	iter := &ir.Variable{Name: "i", Type: types.INT, ReadOnly: true}
	elem := &ir.Variable{Name: "e", Type: types.INT, ReadOnly: true}
	arr := &ir.Variable{Name: "xs", Type: &types.ArrayType{Base: types.INT}}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.RepeatStatement{
			Count: intLit(3),
			Body:  []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
		},
		&ir.ForRangeStatement{
			Iterator: iter,
			Low:      intLit(1),
			Op:       ir.RangeInclusive,
			High:     intLit(10),
			Body:     []ir.Statement{&ir.ExpressionStatement{Expr: ir.NewVariableExpression(iter)}},
		},
		&ir.ForStatement{
			Iterator:   elem,
			Collection: ir.NewVariableExpression(arr),
			Body:       []ir.Statement{&ir.ExpressionStatement{Expr: ir.NewVariableExpression(elem)}},
		},
	}}

	snaps.MatchSnapshot(t, "loops", Generate(program))
}

func TestGenerateStructConstructor(t *testing.T) {
	st := &types.StructType{Name: "Point", Fields: []types.Field{
		{Name: "x", Type: types.INT},
		{Name: "y", Type: types.INT},
	}}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.TypeDeclaration{Type: st},
		&ir.ExpressionStatement{Expr: ir.NewConstructorCall(st, []ir.Expression{intLit(1), intLit(2)})},
	}}

	snaps.MatchSnapshot(t, "struct_constructor", Generate(program))
}

func TestGenerateBuiltinLowering(t *testing.T) {
	reg := stdlib.Get()
	s := &ir.Variable{Name: "s", Type: types.STRING}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.ExpressionStatement{Expr: ir.NewFunctionCall(ir.NewFunctionExpression(reg.Functions["print"]), []ir.Expression{ir.NewVariableExpression(reg.Pi)}, types.VOID)},
		&ir.ExpressionStatement{Expr: ir.NewFunctionCall(ir.NewFunctionExpression(reg.Functions["sin"]), []ir.Expression{ir.NewVariableExpression(reg.Pi)}, types.FLOAT)},
		&ir.ExpressionStatement{Expr: ir.NewFunctionCall(ir.NewFunctionExpression(reg.Functions["bytes"]), []ir.Expression{ir.NewVariableExpression(s)}, &types.ArrayType{Base: types.INT})},
	}}

	snaps.MatchSnapshot(t, "builtin_lowering", Generate(program))
}

func TestGenerateOptionalAndMemberAccess(t *testing.T) {
	st := &types.StructType{Name: "Box", Fields: []types.Field{{Name: "value", Type: types.INT}}}
	box := &ir.Variable{Name: "b", Type: &types.OptionalType{Base: st}}
	field, _ := st.FieldRef("value")

	member := ir.NewMemberExpression(ir.NewVariableExpression(box), field, true, &types.OptionalType{Base: types.INT})
	unwrap := ir.NewBinaryExpression("??", member, intLit(0), types.INT)

	program := &ir.Program{Statements: []ir.Statement{
		&ir.ExpressionStatement{Expr: unwrap},
		&ir.ExpressionStatement{Expr: ir.NewUnaryExpression("some", intLit(4), &types.OptionalType{Base: types.INT})},
		&ir.ExpressionStatement{Expr: ir.NewEmptyOptional(types.INT)},
	}}

	snaps.MatchSnapshot(t, "optional_and_member_access", Generate(program))
}

// TestFieldAccessMatchesConstructorMangling builds a struct declaration
// together with an access of one of its fields in the same program and
// checks, with a plain string assertion rather than a snapshot, that the
// generator mangles the field identically at both sites. A Field is
// shared by identity between the declaration and the access (as the
// analyzer does via types.StructType.FieldRef), so `this.x_N = x_N` in
// the constructor and `p.x_N` at the access site must use the same N.
func TestFieldAccessMatchesConstructorMangling(t *testing.T) {
	st := &types.StructType{Name: "Point", Fields: []types.Field{
		{Name: "x", Type: types.INT},
		{Name: "y", Type: types.INT},
	}}
	xField, ok := st.FieldRef("x")
	if !ok {
		t.Fatal("FieldRef(x) should find the field just declared above")
	}
	p := &ir.Variable{Name: "p", Type: st}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.TypeDeclaration{Type: st},
		&ir.VariableDeclaration{Variable: p, Initializer: ir.NewConstructorCall(st, []ir.Expression{intLit(1), intLit(2)})},
		&ir.ExpressionStatement{Expr: ir.NewMemberExpression(ir.NewVariableExpression(p), xField, false, types.INT)},
	}}

	// Use a single Generator instance for both rendering and computing
	// the expected names: the mangler memoizes by entity pointer, so
	// asking it for xField's name after generation returns exactly the
	// name it assigned during generation, whatever that turned out to be.
	g := New()
	for _, s := range program.Statements {
		g.emitStatement(s)
	}
	out := strings.Join(g.lines, "\n")

	mangledField := g.mangler.Name(xField, xField.Name)
	constructorAssign := fmt.Sprintf("this.%s = %s;", mangledField, mangledField)
	if !strings.Contains(out, constructorAssign) {
		t.Errorf("expected constructor assignment %q in generated output:\n%s", constructorAssign, out)
	}

	mangledVar := g.mangler.Name(p, p.Name)
	memberAccess := fmt.Sprintf("%s.%s", mangledVar, mangledField)
	if !strings.Contains(out, memberAccess) {
		t.Errorf("expected member access %q (same mangled field as the constructor) in generated output:\n%s", memberAccess, out)
	}
}

func TestMangleDistinguishesSameSourceName(t *testing.T) {
	a := &ir.Variable{Name: "x", Type: types.INT}
	b := &ir.Variable{Name: "x", Type: types.INT}

	program := &ir.Program{Statements: []ir.Statement{
		&ir.VariableDeclaration{Variable: a, Initializer: intLit(1)},
		&ir.VariableDeclaration{Variable: b, Initializer: intLit(2)},
	}}

	out := Generate(program)
	g := New()
	nameA := g.mangler.Name(a, a.Name)
	nameB := g.mangler.Name(b, b.Name)
	if nameA == nameB {
		t.Fatalf("two distinct entities with the same source name must mangle differently, got %q twice", nameA)
	}
	if out == "" {
		t.Fatal("expected non-empty generated source")
	}
}
