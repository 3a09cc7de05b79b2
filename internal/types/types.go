// Package types implements Carlos's structural type system: the six
// primitive singletons, and the Array/Optional/Function/Struct type
// constructors.
package types

import "strings"

// Type is implemented by every Carlos type. Equals is structural for
// Array/Optional/Function and identity-based for primitives and structs.
type Type interface {
	String() string
	Equals(other Type) bool
}

// PrimitiveType is one of the six canonical singletons. Two PrimitiveType
// values are equal iff they are the same singleton.
type PrimitiveType struct {
	name string
}

func (p *PrimitiveType) String() string { return p.name }

func (p *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o == p
}

// Canonical primitive singletons. Every occurrence of, say, the int type
// anywhere in a decorated program is this exact pointer.
var (
	INT     = &PrimitiveType{name: "int"}
	FLOAT   = &PrimitiveType{name: "float"}
	BOOLEAN = &PrimitiveType{name: "boolean"}
	STRING  = &PrimitiveType{name: "string"}
	VOID    = &PrimitiveType{name: "void"}
	ANY     = &PrimitiveType{name: "any"}
)

// byName backs type-alias resolution in the standard-library registry and
// in any type expression that names a primitive.
var byName = map[string]*PrimitiveType{
	"int":     INT,
	"float":   FLOAT,
	"boolean": BOOLEAN,
	"string":  STRING,
	"void":    VOID,
	"any":     ANY,
}

// LookupPrimitive returns the canonical singleton for a primitive type
// name, or nil if name does not name a primitive.
func LookupPrimitive(name string) *PrimitiveType {
	return byName[name]
}

// ArrayType is invariant in Base.
type ArrayType struct {
	Base Type
}

func (a *ArrayType) String() string { return "[" + a.Base.String() + "]" }

func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && typesEqual(a.Base, o.Base)
}

// OptionalType is invariant in Base.
type OptionalType struct {
	Base Type
}

func (o *OptionalType) String() string { return o.Base.String() + "?" }

func (o *OptionalType) Equals(other Type) bool {
	p, ok := other.(*OptionalType)
	return ok && typesEqual(o.Base, p.Base)
}

// FunctionType is covariant in ReturnType and contravariant in Params for
// assignability; Equals requires per-position equivalence plus the same
// return type (invariant equivalence, distinct from assignability).
type FunctionType struct {
	ReturnType Type
	Params     []Type
}

// NewFunctionType builds a FunctionType, defaulting the return type to
// VOID when ret is nil.
func NewFunctionType(params []Type, ret Type) *FunctionType {
	if ret == nil {
		ret = VOID
	}
	return &FunctionType{Params: params, ReturnType: ret}
}

func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")->")
	sb.WriteString(f.ReturnType.String())
	return sb.String()
}

func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	if !typesEqual(f.ReturnType, o.ReturnType) {
		return false
	}
	for i := range f.Params {
		if !typesEqual(f.Params[i], o.Params[i]) {
			return false
		}
	}
	return true
}

// Field is one named, ordered member of a StructType.
type Field struct {
	Name string
	Type Type
}

// StructType has nominal (identity-based) equivalence: two StructType
// values are equal only when they are the same pointer. Field names are
// unique within a struct; a struct may reference itself only indirectly,
// through OptionalType or ArrayType, never as a direct field type — the
// analyzer enforces that invariant at declaration time, not here.
type StructType struct {
	Name   string
	Fields []Field
}

func (s *StructType) String() string { return s.Name }

func (s *StructType) Equals(other Type) bool {
	o, ok := other.(*StructType)
	return ok && o == s
}

// FieldRef returns a pointer to the named field's slot in s.Fields, and
// whether it exists. The pointer is stable for the lifetime of s (Fields
// is populated exactly once, at declaration) so callers can use it as an
// identity key, the same way a *Variable or *Function is used elsewhere.
func (s *StructType) FieldRef(name string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// FieldType returns the type of the named field, and whether it exists.
func (s *StructType) FieldType(name string) (Type, bool) {
	f, ok := s.FieldRef(name)
	if !ok {
		return nil, false
	}
	return f.Type, true
}

// typesEqual is Equals with a nil-safe fast path; two nil types are
// considered equal only to simplify callers that haven't yet attached a
// type (which should never reach this function on a decorated IR, but
// guards against analyzer bugs turning into a nil-pointer panic instead
// of a wrong-answer).
func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}

// Equivalent reports whether a and b are the same type: recursive
// structural equality for Array/Optional/Function, identity for
// primitives and structs.
func Equivalent(a, b Type) bool {
	return typesEqual(a, b)
}

// AssignableFrom reports whether a value of type from may be assigned to
// a location of type to: to is any, or equivalent to from, or to is a
// FunctionType with a covariantly-assignable return type and
// contravariantly-assignable parameters.
func AssignableFrom(from, to Type) bool {
	if to == ANY {
		return true
	}
	if Equivalent(from, to) {
		return true
	}
	toFn, toIsFn := to.(*FunctionType)
	fromFn, fromIsFn := from.(*FunctionType)
	if !toIsFn || !fromIsFn {
		return false
	}
	if len(toFn.Params) != len(fromFn.Params) {
		return false
	}
	if !AssignableFrom(fromFn.ReturnType, toFn.ReturnType) {
		return false
	}
	for i := range toFn.Params {
		// Contravariant: the target's parameter type must accept being
		// handed anything the source's parameter type accepts, i.e. the
		// source's declared parameter type must be assignable *from* the
		// target's — parameters flip direction relative to the return type.
		if !AssignableFrom(toFn.Params[i], fromFn.Params[i]) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether t is int or float.
func IsNumeric(t Type) bool {
	return t == INT || t == FLOAT
}

// IsNumericOrString reports whether t is int, float, or string — the
// domain shared by '+'.
func IsNumericOrString(t Type) bool {
	return IsNumeric(t) || t == STRING
}
