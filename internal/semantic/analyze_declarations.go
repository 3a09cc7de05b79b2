package semantic

import (
	"github.com/rtoal/carlos/internal/ast"
	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

// analyzeVariableDeclaration handles `let|const x = E`: E is analyzed
// first (so it cannot refer to x, guaranteed by ordering), then the
// Variable is created and declared.
func (a *Analyzer) analyzeVariableDeclaration(n *ast.VariableDeclaration) (ir.Statement, error) {
	init, err := a.analyzeExpression(n.Initializer)
	if err != nil {
		return nil, err
	}

	v := &ir.Variable{Name: n.Name, Type: init.ExprType(), ReadOnly: n.ReadOnly}
	if err := a.scope.Declare(n.Name, v); err != nil {
		return nil, a.abort(&AlreadyDeclaredError{base: base{at: n.Pos()}, Name: n.Name})
	}

	return &ir.VariableDeclaration{Variable: v, Initializer: init}, nil
}

// analyzeTypeDeclaration handles `struct S { f1:T1 … fn:Tn }`. S is
// pre-declared with empty fields first, so a later field's type
// expression may mention S indirectly (as S? or [S]); after every field
// type is resolved, this enforces fields-distinct-by-name and
// no-direct-recursion.
func (a *Analyzer) analyzeTypeDeclaration(n *ast.TypeDeclaration) (ir.Statement, error) {
	st := &types.StructType{Name: n.Name}
	if err := a.scope.Declare(n.Name, st); err != nil {
		return nil, a.abort(&AlreadyDeclaredError{base: base{at: n.Pos()}, Name: n.Name})
	}

	fields := make([]types.Field, 0, len(n.Fields))
	seen := make(map[string]bool, len(n.Fields))
	for _, fd := range n.Fields {
		if seen[fd.Name] {
			return nil, a.abort(&StructError{base: base{at: fd.Pos()}, Kind: FieldsNotDistinct, Name: fd.Name})
		}
		seen[fd.Name] = true

		ft, err := a.resolveTypeExpression(fd.Type)
		if err != nil {
			return nil, err
		}
		if ft == types.Type(st) {
			return nil, a.abort(&StructError{base: base{at: fd.Pos()}, Kind: RecursiveStruct, Name: n.Name})
		}
		fields = append(fields, types.Field{Name: fd.Name, Type: ft})
	}
	st.Fields = fields

	return &ir.TypeDeclaration{Type: st}, nil
}

// analyzeFunctionDeclaration handles `function f(p1:T1,…): R { body }`:
// parameter and return types are resolved, the
// FunctionType and Function are built and declared in the *enclosing*
// scope (so the body may call itself), then a fresh frame with
// inLoop=false, currentFunction=f is opened for the parameters and body.
func (a *Analyzer) analyzeFunctionDeclaration(n *ast.FunctionDeclaration) (ir.Statement, error) {
	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		pt, err := a.resolveTypeExpression(p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = pt
	}

	var retType types.Type = types.VOID
	if n.ReturnType != nil {
		rt, err := a.resolveTypeExpression(n.ReturnType)
		if err != nil {
			return nil, err
		}
		retType = rt
	}

	fn := &ir.Function{Name: n.Name, Type: types.NewFunctionType(paramTypes, retType)}
	if err := a.scope.Declare(n.Name, fn); err != nil {
		return nil, a.abort(&AlreadyDeclaredError{base: base{at: n.Pos()}, Name: n.Name})
	}

	outer := a.scope
	a.scope = outer.EnterFunction(fn)
	defer func() { a.scope = outer }()

	params := make([]*ir.Variable, len(n.Params))
	for i, p := range n.Params {
		v := &ir.Variable{Name: p.Name, Type: paramTypes[i], ReadOnly: false}
		if err := a.scope.Declare(p.Name, v); err != nil {
			return nil, a.abort(&AlreadyDeclaredError{base: base{at: p.Pos()}, Name: p.Name})
		}
		params[i] = v
	}

	body, err := a.analyzeBlock(n.Body)
	if err != nil {
		return nil, err
	}

	return &ir.FunctionDeclaration{Function: fn, Params: params, Body: body}, nil
}
