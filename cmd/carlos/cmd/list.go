package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtoal/carlos/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demo programs",
	Long:  `List the canned parse trees that the analyze, optimize, and generate subcommands can run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range demo.List() {
			fmt.Printf("%-10s %s\n", p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
