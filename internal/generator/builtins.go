package generator

import (
	"fmt"
	"strings"

	"github.com/rtoal/carlos/internal/ir"
	"github.com/rtoal/carlos/internal/stdlib"
)

// builtinName returns the bare target-language name a built-in function
// lowers to when referenced as a first-class value (not called), e.g.
// passed as an argument — identity-compared against the registry, never
// by source name, so nothing can be mistaken for the standard one.
func builtinName(fn *ir.Function, reg *stdlib.Registry) (string, bool) {
	switch fn {
	case reg.Functions["print"]:
		return "console.log", true
	case reg.Functions["sin"]:
		return "Math.sin", true
	case reg.Functions["cos"]:
		return "Math.cos", true
	case reg.Functions["exp"]:
		return "Math.exp", true
	case reg.Functions["ln"]:
		return "Math.log", true
	case reg.Functions["hypot"]:
		return "Math.hypot", true
	default:
		return "", false
	}
}

// lowerBuiltinCall substitutes a called built-in's target expression:
// `print(x)` to the target's print-equivalent, `sin/cos/exp/ln/hypot` to
// the target math library, `bytes`/`codepoints` to UTF-8 byte/code-point
// lists.
func lowerBuiltinCall(fn *ir.Function, args []string, reg *stdlib.Registry) (string, bool) {
	switch fn {
	case reg.Functions["bytes"]:
		return fmt.Sprintf("Array.from(Buffer.from(%s, 'utf-8'))", args[0]), true
	case reg.Functions["codepoints"]:
		return fmt.Sprintf("Array.from(%s).map(c => c.codePointAt(0))", args[0]), true
	}
	if name, ok := builtinName(fn, reg); ok {
		return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), true
	}
	return "", false
}
