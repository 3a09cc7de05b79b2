package generator

import (
	"fmt"
	"strings"

	"github.com/rtoal/carlos/internal/ir"
)

// emitStatement dispatches a single decorated statement to its
// construct handler.
func (g *Generator) emitStatement(s ir.Statement) {
	switch st := s.(type) {
	case *ir.VariableDeclaration:
		g.emitVariableDeclaration(st)
	case *ir.TypeDeclaration:
		g.emitTypeDeclaration(st)
	case *ir.FunctionDeclaration:
		g.emitFunctionDeclaration(st)
	case *ir.Assignment:
		g.emit(fmt.Sprintf("%s = %s;", g.emitExpr(st.Target), g.emitExpr(st.Source)))
	case *ir.Increment:
		g.emit(fmt.Sprintf("%s++;", g.emitExpr(st.Target)))
	case *ir.Decrement:
		g.emit(fmt.Sprintf("%s--;", g.emitExpr(st.Target)))
	case *ir.Break:
		g.emit("break;")
	case *ir.Return:
		g.emit(fmt.Sprintf("return %s;", g.emitExpr(st.Expr)))
	case *ir.ShortReturn:
		g.emit("return;")
	case *ir.IfStatement:
		g.emitIfStatement(st)
	case *ir.ShortIfStatement:
		g.emit(fmt.Sprintf("if (%s) {", g.emitExpr(st.Test)))
		g.emitBody(st.Consequent)
		g.emit("}")
	case *ir.WhileStatement:
		g.emit(fmt.Sprintf("while (%s) {", g.emitExpr(st.Test)))
		g.emitBody(st.Body)
		g.emit("}")
	case *ir.RepeatStatement:
		g.emitRepeatStatement(st)
	case *ir.ForRangeStatement:
		g.emitForRangeStatement(st)
	case *ir.ForStatement:
		g.emitForStatement(st)
	case *ir.ExpressionStatement:
		g.emit(g.emitExpr(st.Expr) + ";")
	}
}

func (g *Generator) emitBody(stmts []ir.Statement) {
	for _, s := range stmts {
		g.emitStatement(s)
	}
}

func (g *Generator) emitVariableDeclaration(st *ir.VariableDeclaration) {
	name := g.mangler.Name(st.Variable, st.Variable.Name)
	kind := "let"
	if st.Variable.ReadOnly {
		kind = "const"
	}
	g.emit(fmt.Sprintf("%s %s = %s;", kind, name, g.emitExpr(st.Initializer)))
}

// emitTypeDeclaration emits a class whose constructor assigns
// positional arguments to named fields.
func (g *Generator) emitTypeDeclaration(st *ir.TypeDeclaration) {
	name := g.mangler.Name(st.Type, st.Type.Name)
	fieldNames := make([]string, len(st.Type.Fields))
	for i := range st.Type.Fields {
		fieldNames[i] = g.mangler.Name(&st.Type.Fields[i], st.Type.Fields[i].Name)
	}

	g.emit(fmt.Sprintf("class %s {", name))
	g.emit(fmt.Sprintf("constructor(%s) {", strings.Join(fieldNames, ", ")))
	for _, fn := range fieldNames {
		g.emit(fmt.Sprintf("this.%s = %s;", fn, fn))
	}
	g.emit("}")
	g.emit("}")
}

func (g *Generator) emitFunctionDeclaration(st *ir.FunctionDeclaration) {
	name := g.mangler.Name(st.Function, st.Function.Name)
	params := make([]string, len(st.Params))
	for i, p := range st.Params {
		params[i] = g.mangler.Name(p, p.Name)
	}

	g.emit(fmt.Sprintf("function %s(%s) {", name, strings.Join(params, ", ")))
	g.emitBody(st.Body)
	g.emit("}")
}

// emitIfStatement preserves else-if chain shape: a nested *IfStatement
// alternate becomes `} else if (...) {` rather than wrapping it in its
// own redundant braces.
func (g *Generator) emitIfStatement(st *ir.IfStatement) {
	g.emit(fmt.Sprintf("if (%s) {", g.emitExpr(st.Test)))
	g.emitBody(st.Consequent)
	g.emitElse(st.Alternate)
}

func (g *Generator) emitElse(alternate interface{}) {
	switch alt := alternate.(type) {
	case nil:
		g.emit("}")
	case []ir.Statement:
		g.emit("} else {")
		g.emitBody(alt)
		g.emit("}")
	case *ir.IfStatement:
		g.emit(fmt.Sprintf("} else if (%s) {", g.emitExpr(alt.Test)))
		g.emitBody(alt.Consequent)
		g.emitElse(alt.Alternate)
	}
}

// emitRepeatStatement lowers `repeat count { body }` to a counting loop
// with a fresh iterator name.
func (g *Generator) emitRepeatStatement(st *ir.RepeatStatement) {
	i := g.mangler.Fresh("i")
	count := g.emitExpr(st.Count)
	g.emit(fmt.Sprintf("for (let %s = 0; %s < %s; %s++) {", i, i, count, i))
	g.emitBody(st.Body)
	g.emit("}")
}

// emitForRangeStatement lowers `for x in low ... high { body }` (or
// `..<`) to a counting loop over the range's own iterator variable.
func (g *Generator) emitForRangeStatement(st *ir.ForRangeStatement) {
	name := g.mangler.Name(st.Iterator, st.Iterator.Name)
	low := g.emitExpr(st.Low)
	high := g.emitExpr(st.High)
	cmp := "<"
	if st.Op == ir.RangeInclusive {
		cmp = "<="
	}
	g.emit(fmt.Sprintf("for (let %s = %s; %s %s %s; %s++) {", name, low, name, cmp, high, name))
	g.emitBody(st.Body)
	g.emit("}")
}

// emitForStatement lowers `for x in collection { body }` to the
// target's for-of equivalent.
func (g *Generator) emitForStatement(st *ir.ForStatement) {
	name := g.mangler.Name(st.Iterator, st.Iterator.Name)
	g.emit(fmt.Sprintf("for (const %s of %s) {", name, g.emitExpr(st.Collection)))
	g.emitBody(st.Body)
	g.emit("}")
}
