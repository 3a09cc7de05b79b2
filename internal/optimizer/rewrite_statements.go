package optimizer

import "github.com/rtoal/carlos/internal/ir"

// optimizeStatements rewrites a statement list, splicing each child's
// rewrite result (zero, one, or more statements) into the parent list so
// a collapsed IfStatement or eliminated dead loop disappears from its
// enclosing block rather than leaving a hole.
func (o *optimizer) optimizeStatements(stmts []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, o.optimizeStatement(s)...)
	}
	return out
}

func (o *optimizer) optimizeStatement(s ir.Statement) []ir.Statement {
	switch st := s.(type) {
	case *ir.VariableDeclaration:
		return []ir.Statement{&ir.VariableDeclaration{
			Variable:    st.Variable,
			Initializer: o.optimizeExpr(st.Initializer),
		}}
	case *ir.TypeDeclaration:
		return []ir.Statement{st}
	case *ir.FunctionDeclaration:
		return []ir.Statement{&ir.FunctionDeclaration{
			Function: st.Function,
			Params:   st.Params,
			Body:     o.optimizeStatements(st.Body),
		}}
	case *ir.Assignment:
		return o.optimizeAssignment(st)
	case *ir.Increment:
		return []ir.Statement{st}
	case *ir.Decrement:
		return []ir.Statement{st}
	case *ir.Break:
		return []ir.Statement{st}
	case *ir.Return:
		return []ir.Statement{&ir.Return{Expr: o.optimizeExpr(st.Expr)}}
	case *ir.ShortReturn:
		return []ir.Statement{st}
	case *ir.IfStatement:
		return o.optimizeIfStatement(st)
	case *ir.ShortIfStatement:
		return o.optimizeShortIfStatement(st)
	case *ir.WhileStatement:
		return o.optimizeWhileStatement(st)
	case *ir.RepeatStatement:
		return o.optimizeRepeatStatement(st)
	case *ir.ForRangeStatement:
		return o.optimizeForRangeStatement(st)
	case *ir.ForStatement:
		return o.optimizeForStatement(st)
	case *ir.ExpressionStatement:
		return []ir.Statement{&ir.ExpressionStatement{Expr: o.optimizeExpr(st.Expr)}}
	default:
		return []ir.Statement{st}
	}
}

// optimizeAssignment drops `x = x` once both sides are optimized and
// found structurally identical; anything else is kept.
func (o *optimizer) optimizeAssignment(st *ir.Assignment) []ir.Statement {
	target := o.optimizeExpr(st.Target)
	source := o.optimizeExpr(st.Source)

	if o.cfg.isEnabled(PassSelfAssignment) && exprEqual(target, source) {
		return nil
	}

	return []ir.Statement{&ir.Assignment{
		Target: target.(ir.AssignmentTarget),
		Source: source,
	}}
}

// optimizeIfStatement optimizes test, consequent, and alternate (which
// may itself collapse), then — if the config allows it and the test
// folded to a literal bool — collapses the whole statement to its taken
// branch, spliced into the parent.
func (o *optimizer) optimizeIfStatement(st *ir.IfStatement) []ir.Statement {
	result := o.rewriteIf(st)
	switch r := result.(type) {
	case []ir.Statement:
		return r
	case *ir.IfStatement:
		return []ir.Statement{r}
	default:
		return nil
	}
}

// rewriteIf is the recursive half of optimizeIfStatement: it returns
// either a (possibly unchanged-shape) *ir.IfStatement, when the test did
// not fold to a literal, or a []ir.Statement when it did.
func (o *optimizer) rewriteIf(st *ir.IfStatement) interface{} {
	test := o.optimizeExpr(st.Test)
	consequent := o.optimizeStatements(st.Consequent)

	var alternate interface{}
	switch alt := st.Alternate.(type) {
	case nil:
		alternate = nil
	case []ir.Statement:
		alternate = o.optimizeStatements(alt)
	case *ir.IfStatement:
		alternate = o.rewriteIf(alt)
	}

	if o.cfg.isEnabled(PassDeadBranch) {
		if b, ok := literalBool(test); ok {
			if b {
				return consequent
			}
			switch a := alternate.(type) {
			case nil:
				return []ir.Statement{}
			case []ir.Statement:
				return a
			case *ir.IfStatement:
				return []ir.Statement{a}
			}
		}
	}

	return &ir.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

// optimizeShortIfStatement collapses `if false {...}` to nothing and
// `if true {...}` to its body, spliced into the parent.
func (o *optimizer) optimizeShortIfStatement(st *ir.ShortIfStatement) []ir.Statement {
	test := o.optimizeExpr(st.Test)
	consequent := o.optimizeStatements(st.Consequent)

	if o.cfg.isEnabled(PassDeadBranch) {
		if b, ok := literalBool(test); ok {
			if b {
				return consequent
			}
			return nil
		}
	}

	return []ir.Statement{&ir.ShortIfStatement{Test: test, Consequent: consequent}}
}

// optimizeWhileStatement eliminates `while false {...}` entirely.
func (o *optimizer) optimizeWhileStatement(st *ir.WhileStatement) []ir.Statement {
	test := o.optimizeExpr(st.Test)
	body := o.optimizeStatements(st.Body)

	if o.cfg.isEnabled(PassDeadBranch) {
		if b, ok := literalBool(test); ok && !b {
			return nil
		}
	}

	return []ir.Statement{&ir.WhileStatement{Test: test, Body: body}}
}

// optimizeRepeatStatement eliminates `repeat 0 {...}` entirely.
func (o *optimizer) optimizeRepeatStatement(st *ir.RepeatStatement) []ir.Statement {
	count := o.optimizeExpr(st.Count)
	body := o.optimizeStatements(st.Body)

	if o.cfg.isEnabled(PassDeadBranch) {
		if n, ok := literalInt(count); ok && n == 0 {
			return nil
		}
	}

	return []ir.Statement{&ir.RepeatStatement{Count: count, Body: body}}
}

// optimizeForRangeStatement eliminates a range loop whose bounds are
// both integer literals with low > high — it can never execute its body.
func (o *optimizer) optimizeForRangeStatement(st *ir.ForRangeStatement) []ir.Statement {
	low := o.optimizeExpr(st.Low)
	high := o.optimizeExpr(st.High)
	body := o.optimizeStatements(st.Body)

	if o.cfg.isEnabled(PassDeadBranch) {
		if lo, ok1 := literalInt(low); ok1 {
			if hi, ok2 := literalInt(high); ok2 && lo > hi {
				return nil
			}
		}
	}

	return []ir.Statement{&ir.ForRangeStatement{
		Iterator: st.Iterator,
		Low:      low,
		Op:       st.Op,
		High:     high,
		Body:     body,
	}}
}

// optimizeForStatement eliminates `for x in [](of T) {...}` — iterating
// a known-empty array never runs its body.
func (o *optimizer) optimizeForStatement(st *ir.ForStatement) []ir.Statement {
	collection := o.optimizeExpr(st.Collection)
	body := o.optimizeStatements(st.Body)

	if o.cfg.isEnabled(PassDeadBranch) {
		if _, ok := collection.(*ir.EmptyArray); ok {
			return nil
		}
	}

	return []ir.Statement{&ir.ForStatement{
		Iterator:   st.Iterator,
		Collection: collection,
		Body:       body,
	}}
}
