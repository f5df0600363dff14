package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "templatecheck",
	Short:        "Validate cargo-generate template output",
	Long:         "Templatecheck generates Rust projects from the library template and validates file structure, file formats, template expansion, and builds.",
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&templateFlag, "template", "templates/library", "Path to the cargo-generate template directory")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matrixCmd)
}

// templateFlag holds the --template flag value.
var templateFlag string
