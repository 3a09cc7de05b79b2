package semantic

import (
	"fmt"

	"github.com/rtoal/carlos/internal/cerrors"
	"github.com/rtoal/carlos/internal/token"
	"github.com/rtoal/carlos/internal/types"
)

// SemanticError is implemented by every distinct semantic-error kind.
// Every one carries enough to build a cerrors.CompilerError and a plain
// error message; kinds are distinct error *types* (one struct per kind,
// with a Kind sub-enum where a family shares a message shape) rather
// than one struct with a flat string-tag Type field.
type SemanticError interface {
	error
	Pos() token.Position
}

// AnalysisError wraps the error that aborted analysis. Analysis stops at
// the first error, so this only ever holds exactly one, but it's a
// distinct type — rather than returning the SemanticError directly — so
// callers can type-switch on "did analysis fail" independent of which
// kind failed.
type AnalysisError struct {
	Err SemanticError
}

func (e *AnalysisError) Error() string { return e.Err.Error() }
func (e *AnalysisError) Unwrap() error { return e.Err }

// base is embedded by every concrete SemanticError to carry a position.
type base struct {
	at token.Position
}

func (b base) Pos() token.Position { return b.at }

// NotDeclaredError — lookup(name) found nothing in the scope chain.
type NotDeclaredError struct {
	base
	Name string
}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("%s has not been declared", e.Name)
}

// AlreadyDeclaredError — declare(name, _) found name already bound
// somewhere in the chain (Carlos forbids shadowing).
type AlreadyDeclaredError struct {
	base
	Name string
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("%s has already been declared", e.Name)
}

// NotATypeError — a type expression names something that isn't a type.
type NotATypeError struct {
	base
	Name string
}

func (e *NotATypeError) Error() string {
	return fmt.Sprintf("%s is not a type", e.Name)
}

// NotCallableError — the callee of a call is neither a Function nor a
// StructType.
type NotCallableError struct {
	base
}

func (e *NotCallableError) Error() string {
	return "not callable"
}

// TypeMismatchKind distinguishes the TypeMismatch sub-kinds.
type TypeMismatchKind int

const (
	ExpectedBoolean TypeMismatchKind = iota
	ExpectedInteger
	ExpectedNumber
	ExpectedNumberOrString
	ExpectedArray
	ExpectedOptional
	ExpectedStruct
	ExpectedOptionalStruct
	ExpectedSameType
	NotAssignable
)

// TypeMismatchError covers every TypeMismatch sub-kind. From/To are
// populated only for NotAssignable; Got is populated for the "Expected
// X" kinds.
type TypeMismatchError struct {
	base
	Kind TypeMismatchKind
	Got  types.Type
	From types.Type
	To   types.Type
}

func (e *TypeMismatchError) Error() string {
	switch e.Kind {
	case ExpectedBoolean:
		return fmt.Sprintf("expected a boolean, got %s", e.Got.String())
	case ExpectedInteger:
		return fmt.Sprintf("expected an integer, got %s", e.Got.String())
	case ExpectedNumber:
		return fmt.Sprintf("expected a number, got %s", e.Got.String())
	case ExpectedNumberOrString:
		return fmt.Sprintf("expected a number or string, got %s", e.Got.String())
	case ExpectedArray:
		return fmt.Sprintf("expected an array, got %s", e.Got.String())
	case ExpectedOptional:
		return fmt.Sprintf("expected an optional, got %s", e.Got.String())
	case ExpectedStruct:
		return fmt.Sprintf("expected a struct, got %s", e.Got.String())
	case ExpectedOptionalStruct:
		return fmt.Sprintf("expected an optional struct, got %s", e.Got.String())
	case ExpectedSameType:
		return "operands do not have the same type"
	case NotAssignable:
		return fmt.Sprintf("Cannot assign a %s to a %s", e.From.String(), e.To.String())
	default:
		return "type mismatch"
	}
}

// StructErrorKind distinguishes the StructError sub-kinds.
type StructErrorKind int

const (
	FieldsNotDistinct StructErrorKind = iota
	FieldNotFound
	RecursiveStruct
)

// StructError covers every StructError sub-kind.
type StructError struct {
	base
	Kind StructErrorKind
	Name string
}

func (e *StructError) Error() string {
	switch e.Kind {
	case FieldsNotDistinct:
		return fmt.Sprintf("field %s already declared", e.Name)
	case FieldNotFound:
		return fmt.Sprintf("no such field: %s", e.Name)
	case RecursiveStruct:
		return "Struct type must not be recursive"
	default:
		return "struct error"
	}
}

// ArgumentError — an argument-count mismatch at a call site.
type ArgumentError struct {
	base
	Expected int
	Got      int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Expected, e.Got)
}

// AssignmentError — an assignment to a read-only target.
type AssignmentError struct {
	base
	Name string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("Cannot assign to immutable %s", e.Name)
}

// ControlFlowKind distinguishes the ControlFlowError sub-kinds.
type ControlFlowKind int

const (
	BreakOutsideLoop ControlFlowKind = iota
	ReturnOutsideFunction
	ReturnValueInVoid
	ReturnValueMissing
)

// ControlFlowError covers every ControlFlowError sub-kind.
type ControlFlowError struct {
	base
	Kind ControlFlowKind
}

func (e *ControlFlowError) Error() string {
	switch e.Kind {
	case BreakOutsideLoop:
		return "Break can only appear in a loop"
	case ReturnOutsideFunction:
		return "Return can only appear in a function"
	case ReturnValueInVoid:
		return "Cannot return a value from this function"
	case ReturnValueMissing:
		return "Something should be returned"
	default:
		return "invalid control flow"
	}
}

// ToCompilerError renders any SemanticError as a cerrors.CompilerError
// quoting the offending source range.
func ToCompilerError(e SemanticError, source, file string) *cerrors.CompilerError {
	return cerrors.NewCompilerError(e.Pos(), e.Error(), source, file)
}
