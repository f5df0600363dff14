package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/templatecheck/internal/generator"
	"github.com/moasq/templatecheck/internal/runner"
	"github.com/moasq/templatecheck/internal/toolchain"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Validate the standard configuration matrix",
	Long:  "Run every named configuration against the template sequentially, each in its own scratch directory, and print a summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &runner.Runner{
			Generator: generator.New(templateFlag),
			Build:     toolchain.NewCargo(),
			Docs:      toolchain.NewMkDocs(),
		}

		_, allPassed := r.RunMatrix(cmd.Context())
		if !allPassed {
			return fmt.Errorf("some configurations failed")
		}
		return nil
	},
}
