package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtoal/carlos/internal/demo"
	"github.com/rtoal/carlos/internal/semantic"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [program]",
	Short: "Run semantic analysis on a demo program",
	Long: `Decorate a demo program with the semantic analyzer and report whether
it type-checks.

Examples:
  carlos analyze factorial
  carlos analyze optional`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, ok := demo.Get(name)
	if !ok {
		return fmt.Errorf("unknown demo program %q (see 'carlos list')", name)
	}

	if _, err := semantic.Analyze(p.Tree, "", p.Name); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Printf("%s: OK\n", p.Name)
	return nil
}
