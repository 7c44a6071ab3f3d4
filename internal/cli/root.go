// Package cli wires the cobra commands for the sprout binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprout-cli/sprout/internal/debug"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Scaffold new projects from templates",
	Long: `sprout creates a new project directory from a reusable template.

Use "sprout create [template] [destination]" to:
  1. Pick a template (interactively, or by name/path/repository URL)
  2. Answer the template's questions
  3. Render the template files into the destination directory

Templates come from local directories or git repositories and may declare
their own questions and a completion message in a sprout.config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug tracing")

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
