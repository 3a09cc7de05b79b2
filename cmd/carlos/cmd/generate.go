package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtoal/carlos/internal/demo"
	"github.com/rtoal/carlos/internal/generator"
	"github.com/rtoal/carlos/internal/optimizer"
	"github.com/rtoal/carlos/internal/semantic"
)

var skipOptimize bool

var generateCmd = &cobra.Command{
	Use:   "generate [program]",
	Short: "Run the full pipeline and print the generated target source",
	Long: `Run a demo program through semantic analysis, IR optimization, and
code generation, printing the resulting target source.

Examples:
  carlos generate hello
  carlos generate fizzbuzz --skip-optimize`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&skipOptimize, "skip-optimize", false, "generate straight from the decorated tree, without running the optimizer")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, ok := demo.Get(name)
	if !ok {
		return fmt.Errorf("unknown demo program %q (see 'carlos list')", name)
	}

	decorated, err := semantic.Analyze(p.Tree, "", p.Name)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	program := decorated
	if !skipOptimize {
		program = optimizer.Optimize(decorated)
	}

	fmt.Println(generator.Generate(program))
	return nil
}
