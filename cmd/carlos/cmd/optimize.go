package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtoal/carlos/internal/demo"
	"github.com/rtoal/carlos/internal/generator"
	"github.com/rtoal/carlos/internal/optimizer"
	"github.com/rtoal/carlos/internal/semantic"
)

var disabledPasses []string

var allPasses = map[string]optimizer.Pass{
	"self-assignment":  optimizer.PassSelfAssignment,
	"constant-fold":    optimizer.PassConstantFold,
	"identity-algebra": optimizer.PassIdentityAlgebra,
	"short-circuit":    optimizer.PassShortCircuit,
	"unwrap-optional":  optimizer.PassUnwrapOptional,
	"conditional-fold": optimizer.PassConditionalFold,
	"dead-branch":      optimizer.PassDeadBranch,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [program]",
	Short: "Show the effect of the IR optimizer on a demo program",
	Long: `Analyze a demo program, then generate its target source both before
and after running the IR optimizer, so the effect of each pass is
visible in the diff between the two.

Individual passes can be disabled with --disable, which may be repeated:

  carlos optimize fizzbuzz --disable dead-branch --disable constant-fold`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringSliceVar(&disabledPasses, "disable", nil, "optimizer pass to disable (repeatable)")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, ok := demo.Get(name)
	if !ok {
		return fmt.Errorf("unknown demo program %q (see 'carlos list')", name)
	}

	decorated, err := semantic.Analyze(p.Tree, "", p.Name)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var opts []optimizer.Option
	for _, name := range disabledPasses {
		pass, ok := allPasses[name]
		if !ok {
			return fmt.Errorf("unknown optimizer pass %q", name)
		}
		opts = append(opts, optimizer.WithPass(pass, false))
	}

	unoptimized := generator.Generate(decorated)
	optimized := generator.Generate(optimizer.Optimize(decorated, opts...))

	fmt.Println("-- before --")
	fmt.Println(unoptimized)
	fmt.Println("-- after --")
	fmt.Println(optimized)
	return nil
}
