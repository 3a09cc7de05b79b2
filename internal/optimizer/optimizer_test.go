package optimizer

import (
	"testing"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

func intLit(n int64) *ir.Literal    { return ir.NewLiteral(n, types.INT) }
func floatLit(f float64) *ir.Literal { return ir.NewLiteral(f, types.FLOAT) }
func boolLit(b bool) *ir.Literal    { return ir.NewLiteral(b, types.BOOLEAN) }

func TestOptimizeSelfAssignment(t *testing.T) {
	v := &ir.Variable{Name: "x", Type: types.INT}
	stmts := []ir.Statement{
		&ir.Assignment{Target: ir.NewVariableExpression(v), Source: ir.NewVariableExpression(v)},
	}

	out := Optimize(&ir.Program{Statements: stmts}).Statements
	if len(out) != 0 {
		t.Fatalf("self-assignment should disappear, got %d statements", len(out))
	}
}

func TestOptimizeSelfAssignmentDisabled(t *testing.T) {
	v := &ir.Variable{Name: "x", Type: types.INT}
	stmts := []ir.Statement{
		&ir.Assignment{Target: ir.NewVariableExpression(v), Source: ir.NewVariableExpression(v)},
	}

	out := Optimize(&ir.Program{Statements: stmts}, WithPass(PassSelfAssignment, false)).Statements
	if len(out) != 1 {
		t.Fatalf("expected self-assignment kept when pass disabled, got %d statements", len(out))
	}
}

func TestConstantFoldArithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr *ir.BinaryExpression
		want interface{}
	}{
		{"int add", ir.NewBinaryExpression("+", intLit(2), intLit(3), types.INT), int64(5)},
		{"int sub", ir.NewBinaryExpression("-", intLit(5), intLit(3), types.INT), int64(2)},
		{"int mul", ir.NewBinaryExpression("*", intLit(4), intLit(3), types.INT), int64(12)},
		{"int div", ir.NewBinaryExpression("/", intLit(7), intLit(2), types.INT), int64(3)},
		{"int mod", ir.NewBinaryExpression("%", intLit(7), intLit(2), types.INT), int64(1)},
		{"int pow", ir.NewBinaryExpression("**", intLit(2), intLit(5), types.INT), int64(32)},
		{"int less", ir.NewBinaryExpression("<", intLit(2), intLit(3), types.BOOLEAN), true},
		{"int eq", ir.NewBinaryExpression("==", intLit(3), intLit(3), types.BOOLEAN), true},
		{"float add", ir.NewBinaryExpression("+", floatLit(1.5), floatLit(2.5), types.FLOAT), float64(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := []ir.Statement{&ir.ExpressionStatement{Expr: tt.expr}}
			out := Optimize(&ir.Program{Statements: stmts}).Statements
			lit, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal)
			if !ok {
				t.Fatalf("expected folded literal, got %T", out[0].(*ir.ExpressionStatement).Expr)
			}
			if lit.Value != tt.want {
				t.Errorf("got %v, want %v", lit.Value, tt.want)
			}
		})
	}
}

func TestConstantFoldDivByZeroNotFolded(t *testing.T) {
	expr := ir.NewBinaryExpression("/", intLit(1), intLit(0), types.INT)
	stmts := []ir.Statement{&ir.ExpressionStatement{Expr: expr}}
	out := Optimize(&ir.Program{Statements: stmts}).Statements
	if _, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal); ok {
		t.Fatal("division by zero must not fold to a literal")
	}
}

func TestIdentityAlgebra(t *testing.T) {
	v := &ir.Variable{Name: "x", Type: types.INT}
	x := ir.NewVariableExpression(v)

	tests := []struct {
		name string
		expr *ir.BinaryExpression
	}{
		{"x+0", ir.NewBinaryExpression("+", x, intLit(0), types.INT)},
		{"0+x", ir.NewBinaryExpression("+", intLit(0), x, types.INT)},
		{"x-0", ir.NewBinaryExpression("-", x, intLit(0), types.INT)},
		{"x*1", ir.NewBinaryExpression("*", x, intLit(1), types.INT)},
		{"1*x", ir.NewBinaryExpression("*", intLit(1), x, types.INT)},
		{"x/1", ir.NewBinaryExpression("/", x, intLit(1), types.INT)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := []ir.Statement{&ir.ExpressionStatement{Expr: tt.expr}}
			out := Optimize(&ir.Program{Statements: stmts}).Statements
			ve, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.VariableExpression)
			if !ok || ve.Variable != v {
				t.Errorf("expected bare variable reference, got %#v", out[0].(*ir.ExpressionStatement).Expr)
			}
		})
	}
}

func TestIdentityAlgebraZeroAbsorb(t *testing.T) {
	v := &ir.Variable{Name: "x", Type: types.INT}
	x := ir.NewVariableExpression(v)

	expr := ir.NewBinaryExpression("*", x, intLit(0), types.INT)
	stmts := []ir.Statement{&ir.ExpressionStatement{Expr: expr}}
	out := Optimize(&ir.Program{Statements: stmts}).Statements
	lit, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal)
	if !ok || lit.Value != int64(0) {
		t.Errorf("expected literal 0, got %#v", out[0].(*ir.ExpressionStatement).Expr)
	}
}

func TestShortCircuit(t *testing.T) {
	v := &ir.Variable{Name: "r", Type: types.BOOLEAN}
	r := ir.NewVariableExpression(v)

	tests := []struct {
		name string
		expr *ir.BinaryExpression
	}{
		{"true&&r", ir.NewBinaryExpression("&&", boolLit(true), r, types.BOOLEAN)},
		{"r&&true", ir.NewBinaryExpression("&&", r, boolLit(true), types.BOOLEAN)},
		{"false||r", ir.NewBinaryExpression("||", boolLit(false), r, types.BOOLEAN)},
		{"r||false", ir.NewBinaryExpression("||", r, boolLit(false), types.BOOLEAN)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := []ir.Statement{&ir.ExpressionStatement{Expr: tt.expr}}
			out := Optimize(&ir.Program{Statements: stmts}).Statements
			ve, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.VariableExpression)
			if !ok || ve.Variable != v {
				t.Errorf("expected bare variable reference, got %#v", out[0].(*ir.ExpressionStatement).Expr)
			}
		})
	}
}

func TestUnwrapEmptyOptional(t *testing.T) {
	fallback := intLit(7)
	expr := ir.NewBinaryExpression("??", ir.NewEmptyOptional(types.INT), fallback, types.INT)
	stmts := []ir.Statement{&ir.ExpressionStatement{Expr: expr}}
	out := Optimize(&ir.Program{Statements: stmts}).Statements
	lit, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal)
	if !ok || lit.Value != int64(7) {
		t.Errorf("expected literal 7, got %#v", out[0].(*ir.ExpressionStatement).Expr)
	}
}

func TestConditionalFold(t *testing.T) {
	cond := ir.NewConditional(boolLit(true), intLit(1), intLit(2), types.INT)
	stmts := []ir.Statement{&ir.ExpressionStatement{Expr: cond}}
	out := Optimize(&ir.Program{Statements: stmts}).Statements
	lit, ok := out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal)
	if !ok || lit.Value != int64(1) {
		t.Errorf("expected literal 1, got %#v", out[0].(*ir.ExpressionStatement).Expr)
	}
}

func TestDeadBranchIfLiteralTrue(t *testing.T) {
	kept := &ir.ExpressionStatement{Expr: intLit(1)}
	dropped := &ir.ExpressionStatement{Expr: intLit(2)}
	ifStmt := &ir.IfStatement{
		Test:       boolLit(true),
		Consequent: []ir.Statement{kept},
		Alternate:  []ir.Statement{dropped},
	}

	out := Optimize(&ir.Program{Statements: []ir.Statement{ifStmt}}).Statements
	if len(out) != 1 {
		t.Fatalf("expected literal-true if to collapse to its consequent, got %d statements", len(out))
	}
	if out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal).Value != int64(1) {
		t.Errorf("collapsed to the wrong branch")
	}
}

func TestDeadBranchIfLiteralFalseWithElseIf(t *testing.T) {
	innerConsequent := &ir.ExpressionStatement{Expr: intLit(9)}
	outer := &ir.IfStatement{
		Test:       boolLit(false),
		Consequent: []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
		Alternate: &ir.IfStatement{
			Test:       boolLit(true),
			Consequent: []ir.Statement{innerConsequent},
		},
	}

	out := Optimize(&ir.Program{Statements: []ir.Statement{outer}}).Statements
	if len(out) != 1 {
		t.Fatalf("expected else-if chain to collapse to one statement, got %d", len(out))
	}
	if out[0].(*ir.ExpressionStatement).Expr.(*ir.Literal).Value != int64(9) {
		t.Errorf("collapsed to the wrong branch")
	}
}

func TestDeadBranchShortIfFalse(t *testing.T) {
	shortIf := &ir.ShortIfStatement{
		Test:       boolLit(false),
		Consequent: []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
	}
	out := Optimize(&ir.Program{Statements: []ir.Statement{shortIf}}).Statements
	if len(out) != 0 {
		t.Fatalf("expected literal-false short-if to vanish, got %d statements", len(out))
	}
}

func TestDeadBranchWhileFalse(t *testing.T) {
	loop := &ir.WhileStatement{
		Test: boolLit(false),
		Body: []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
	}
	out := Optimize(&ir.Program{Statements: []ir.Statement{loop}}).Statements
	if len(out) != 0 {
		t.Fatalf("expected while(false) to vanish, got %d statements", len(out))
	}
}

func TestDeadBranchRepeatZero(t *testing.T) {
	loop := &ir.RepeatStatement{
		Count: intLit(0),
		Body:  []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
	}
	out := Optimize(&ir.Program{Statements: []ir.Statement{loop}}).Statements
	if len(out) != 0 {
		t.Fatalf("expected repeat(0) to vanish, got %d statements", len(out))
	}
}

func TestDeadBranchForRangeLowGreaterThanHigh(t *testing.T) {
	iter := &ir.Variable{Name: "i", Type: types.INT, ReadOnly: true}
	loop := &ir.ForRangeStatement{
		Iterator: iter,
		Low:      intLit(5),
		Op:       ir.RangeInclusive,
		High:     intLit(1),
		Body:     []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
	}
	out := Optimize(&ir.Program{Statements: []ir.Statement{loop}}).Statements
	if len(out) != 0 {
		t.Fatalf("expected 5...1 range loop to vanish, got %d statements", len(out))
	}
}

func TestDeadBranchForOverEmptyArray(t *testing.T) {
	iter := &ir.Variable{Name: "e", Type: types.INT, ReadOnly: true}
	loop := &ir.ForStatement{
		Iterator:   iter,
		Collection: ir.NewEmptyArray(types.INT),
		Body:       []ir.Statement{&ir.ExpressionStatement{Expr: intLit(1)}},
	}
	out := Optimize(&ir.Program{Statements: []ir.Statement{loop}}).Statements
	if len(out) != 0 {
		t.Fatalf("expected for-over-empty-array to vanish, got %d statements", len(out))
	}
}

func TestOptimizeRecursesIntoFunctionBody(t *testing.T) {
	v := &ir.Variable{Name: "x", Type: types.INT}
	fn := &ir.Function{Name: "f", Type: types.NewFunctionType(nil, types.INT)}
	decl := &ir.FunctionDeclaration{
		Function: fn,
		Body: []ir.Statement{
			&ir.Assignment{Target: ir.NewVariableExpression(v), Source: ir.NewVariableExpression(v)},
			&ir.Return{Expr: ir.NewBinaryExpression("+", intLit(1), intLit(1), types.INT)},
		},
	}

	out := Optimize(&ir.Program{Statements: []ir.Statement{decl}}).Statements
	body := out[0].(*ir.FunctionDeclaration).Body
	if len(body) != 1 {
		t.Fatalf("expected self-assignment inside function body to vanish, got %d statements", len(body))
	}
	ret, ok := body[0].(*ir.Return)
	if !ok || ret.Expr.(*ir.Literal).Value != int64(2) {
		t.Errorf("expected folded return 2, got %#v", body[0])
	}
}
