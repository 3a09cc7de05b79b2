// Package stdlib builds the frozen, process-wide standard-library
// registry: the predefined type aliases, the `π` constant, and the
// built-in functions. The registry is constructed exactly once per
// process, behind sync.Once, so that every analyzer instance's identity
// comparisons against it (and the generator's built-in-lowering identity
// comparisons) agree.
package stdlib

import (
	"math"
	"sync"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/types"
)

// Registry is the frozen set of predefined names. Functions is keyed by
// source name for lookup convenience, but identity comparisons elsewhere
// (the generator's built-in lowering) must compare against the specific
// *ir.Function pointers exposed here, never reconstruct one by name.
type Registry struct {
	Pi        *ir.Variable
	Functions map[string]*ir.Function
}

var (
	once     sync.Once
	instance *Registry
)

// Get returns the single process-wide Registry, building it on first
// call.
func Get() *Registry {
	once.Do(func() {
		instance = build()
	})
	return instance
}

func fn(name string, ret types.Type, params ...types.Type) *ir.Function {
	return &ir.Function{Name: name, Type: types.NewFunctionType(params, ret)}
}

func build() *Registry {
	anyT := types.ANY
	floatT := types.FLOAT
	stringT := types.STRING
	intArray := &types.ArrayType{Base: types.INT}

	r := &Registry{
		Pi: &ir.Variable{Name: "π", Type: types.FLOAT, ReadOnly: true},
		Functions: map[string]*ir.Function{
			"print":      fn("print", types.VOID, anyT),
			"sin":        fn("sin", floatT, floatT),
			"cos":        fn("cos", floatT, floatT),
			"exp":        fn("exp", floatT, floatT),
			"ln":         fn("ln", floatT, floatT),
			"hypot":      fn("hypot", floatT, floatT, floatT),
			"bytes":      fn("bytes", intArray, stringT),
			"codepoints": fn("codepoints", intArray, stringT),
		},
	}
	return r
}

// PiValue is the constant value bound to the `π` registry entry.
const PiValue = math.Pi

// TypeAliases maps every primitive alias name to its canonical
// singleton.
func TypeAliases() map[string]*types.PrimitiveType {
	return map[string]*types.PrimitiveType{
		"int":     types.INT,
		"float":   types.FLOAT,
		"boolean": types.BOOLEAN,
		"string":  types.STRING,
		"void":    types.VOID,
	}
}
