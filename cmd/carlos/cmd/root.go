package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "carlos",
	Short: "Carlos semantic analyzer, optimizer, and code generator",
	Long: `carlos drives the core of a Carlos compiler: semantic analysis,
IR optimization, and code generation.

It does not parse Carlos source itself — the programs it runs are the
canned parse trees in internal/demo, which stand in for an external
parser. Each subcommand exercises one or more pipeline stages:

  analyze  - decorate a demo program and report its type errors, if any
  optimize - print the generated target source before and after the IR optimizer runs
  generate - run the full pipeline and print the generated target source
  list     - list the available demo programs`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
