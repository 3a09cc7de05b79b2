package semantic

import "github.com/rtoal/carlos/internal/ir"

// Entity is anything declare/lookup can bind a name to: a *ir.Variable,
// a *ir.Function, or a *types.StructType (structs double as their own
// constructor).
type Entity interface{}

// Flags carries the per-frame overrides a call to Enter may apply. A
// zero Flags leaves inLoop/currentFunction unset, so the new frame
// simply inherits whatever the nearest enclosing frame that *did* set
// them decided.
type Flags struct {
	InLoop             bool
	SetInLoop          bool
	CurrentFunction    *ir.Function
	SetCurrentFunction bool
}

// Scope is one frame of the lexical scope stack: a name→entity mapping
// plus the inLoop/currentFunction settings, chained to an outer frame.
// Declare enforces no-shadowing against the *entire* chain, not just the
// current frame, and the inLoop/currentFunction settings live per-frame
// rather than on the analyzer, since each new block may override either
// independently of its enclosing function.
type Scope struct {
	symbols map[string]Entity
	outer   *Scope

	inLoop          bool
	inLoopSet       bool
	currentFunction *ir.Function
	currentFuncSet  bool
}

// NewGlobalScope creates the outermost frame, pre-populated by the
// caller with every standard-library name.
func NewGlobalScope() *Scope {
	return &Scope{symbols: make(map[string]Entity)}
}

// Enter pushes a new frame enclosed by s, applying flagOverrides.
func (s *Scope) Enter(flags Flags) *Scope {
	child := &Scope{
		symbols: make(map[string]Entity),
		outer:   s,
	}
	if flags.SetInLoop {
		child.inLoop = flags.InLoop
		child.inLoopSet = true
	}
	if flags.SetCurrentFunction {
		child.currentFunction = flags.CurrentFunction
		child.currentFuncSet = true
	}
	return child
}

// EnterBlock pushes a plain block frame that inherits inLoop and
// currentFunction from the enclosing frame unchanged — used for if/else
// bodies, which open a fresh scope for declarations without altering
// loop/function context.
func (s *Scope) EnterBlock() *Scope {
	return s.Enter(Flags{})
}

// EnterLoop pushes a frame with inLoop=true, for while/repeat/for bodies.
func (s *Scope) EnterLoop() *Scope {
	return s.Enter(Flags{InLoop: true, SetInLoop: true})
}

// EnterFunction pushes a frame with inLoop=false and currentFunction=f,
// for a function body.
func (s *Scope) EnterFunction(f *ir.Function) *Scope {
	return s.Enter(Flags{
		InLoop: false, SetInLoop: true,
		CurrentFunction: f, SetCurrentFunction: true,
	})
}

// Leave returns the enclosing frame.
func (s *Scope) Leave() *Scope {
	return s.outer
}

// Declare binds name to entity in the current frame. It fails with
// AlreadyDeclared if name resolves anywhere in the chain — Carlos has no
// shadowing, so declare checks lookup against the whole chain rather
// than just the current frame.
func (s *Scope) Declare(name string, entity Entity) error {
	if _, ok := s.Lookup(name); ok {
		return &AlreadyDeclaredError{Name: name}
	}
	s.symbols[name] = entity
	return nil
}

// Lookup walks outward from s and returns the entity bound to name, or
// false if no frame in the chain declares it.
func (s *Scope) Lookup(name string) (Entity, bool) {
	for f := s; f != nil; f = f.outer {
		if e, ok := f.symbols[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// InLoop reports the nearest non-null inLoop setting in the chain.
func (s *Scope) InLoop() bool {
	for f := s; f != nil; f = f.outer {
		if f.inLoopSet {
			return f.inLoop
		}
	}
	return false
}

// CurrentFunction reports the nearest non-null currentFunction setting
// in the chain, or nil at top level.
func (s *Scope) CurrentFunction() *ir.Function {
	for f := s; f != nil; f = f.outer {
		if f.currentFuncSet {
			return f.currentFunction
		}
	}
	return nil
}
