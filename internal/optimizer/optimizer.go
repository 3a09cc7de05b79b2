// Package optimizer implements a pure IR-to-IR rewriter that simplifies
// a decorated *ir.Program without changing its observed behavior. Passes
// are named and independently toggleable through a functional-option
// config, and each one walks the tree recursively rather than operating
// on a flat instruction stream, since the optimizer here runs before
// code generation rather than after it.
package optimizer

import "github.com/rtoal/carlos/internal/ir"

// Pass names one independently toggleable rewrite rule.
type Pass string

const (
	PassSelfAssignment  Pass = "self-assignment"
	PassConstantFold    Pass = "constant-fold"
	PassIdentityAlgebra Pass = "identity-algebra"
	PassShortCircuit    Pass = "short-circuit"
	PassUnwrapOptional  Pass = "unwrap-optional"
	PassConditionalFold Pass = "conditional-fold"
	PassDeadBranch      Pass = "dead-branch"
)

// Option toggles a Pass on or off for one Optimize call.
type Option func(*config)

type config struct {
	enabled map[Pass]bool
}

func defaultConfig() config {
	return config{
		enabled: map[Pass]bool{
			PassSelfAssignment:  true,
			PassConstantFold:    true,
			PassIdentityAlgebra: true,
			PassShortCircuit:    true,
			PassUnwrapOptional:  true,
			PassConditionalFold: true,
			PassDeadBranch:      true,
		},
	}
}

func (c config) isEnabled(p Pass) bool {
	if c.enabled == nil {
		return true
	}
	enabled, ok := c.enabled[p]
	if !ok {
		return true
	}
	return enabled
}

// WithPass enables or disables a single Pass.
func WithPass(p Pass, enabled bool) Option {
	return func(c *config) {
		if c.enabled == nil {
			c.enabled = make(map[Pass]bool)
		}
		c.enabled[p] = enabled
	}
}

// optimizer carries the active pass configuration through one rewrite
// of a program.
type optimizer struct {
	cfg config
}

// Optimize rewrites program's statement list and returns a new
// *ir.Program; program itself is left untouched. With no options, every
// pass runs.
func Optimize(program *ir.Program, opts ...Option) *ir.Program {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	o := &optimizer{cfg: cfg}
	return &ir.Program{Statements: o.optimizeStatements(program.Statements)}
}
