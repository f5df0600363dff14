package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/templatecheck/internal/config"
	"github.com/moasq/templatecheck/internal/generator"
	"github.com/moasq/templatecheck/internal/runner"
	"github.com/moasq/templatecheck/internal/terminal"
	"github.com/moasq/templatecheck/internal/toolchain"
)

// Boolean flags are declared as strings so only a strict true/false token
// (case-insensitive) is accepted; cobra's native bool flags also take 1/t/T.
var validateFlags = struct {
	projectName string

	mkdocs            string
	vscode            string
	xplat             string
	bigEndian         string
	wine              string
	bench             string
	miri              string
	fuzz              string
	buildCLibs        string
	buildCSharpLibs   string
	buildCLibsWithPGO string
	publishCrateOnTag string

	license string
	noStd   string
}{}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Generate one project and validate it",
	Long:  "Generate a project from the template with the given feature flags and validate structure, formats, template expansion, and builds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vectorFromFlags()
		if err != nil {
			return err
		}

		r := &runner.Runner{
			Generator: generator.New(templateFlag),
			Build:     toolchain.NewCargo(),
			Docs:      toolchain.NewMkDocs(),
		}

		terminal.Header("Template Validation")
		passed, err := r.RunOne(cmd.Context(), v)
		if err != nil {
			return err
		}
		if !passed {
			return fmt.Errorf("validation failed")
		}
		terminal.Success("All validations passed")
		return nil
	},
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.projectName, "project-name", "", "Project name (must be a valid Rust crate name)")
	f.StringVar(&validateFlags.mkdocs, "mkdocs", "true", "Include external documentation")
	f.StringVar(&validateFlags.vscode, "vscode", "true", "Include VSCode configurations")
	f.StringVar(&validateFlags.xplat, "xplat", "true", "Include cross-platform testing")
	f.StringVar(&validateFlags.bigEndian, "big-endian", "false", "Include big-endian support")
	f.StringVar(&validateFlags.wine, "wine", "true", "Run tests against Wine")
	f.StringVar(&validateFlags.bench, "bench", "true", "Include benchmark configuration")
	f.StringVar(&validateFlags.miri, "miri", "false", "Include Miri for unsafe code detection")
	f.StringVar(&validateFlags.fuzz, "fuzz", "false", "Include fuzz testing configuration")
	f.StringVar(&validateFlags.buildCLibs, "build-c-libs", "true", "Build C libraries in CI")
	f.StringVar(&validateFlags.buildCSharpLibs, "build-csharp-libs", "false", "Build C# bindings")
	f.StringVar(&validateFlags.buildCLibsWithPGO, "build-c-libs-with-pgo", "true", "Build C libraries with PGO")
	f.StringVar(&validateFlags.publishCrateOnTag, "publish-crate-on-tag", "true", "Publish to crates.io on tag")
	f.StringVar(&validateFlags.license, "license", "GPL v3 (with Reloaded FAQ)", "License type")
	f.StringVar(&validateFlags.noStd, "no-std", "STD", "no_std support option")

	_ = validateCmd.MarkFlagRequired("project-name")
}

// vectorFromFlags parses the flag values into a Vector, rejecting any
// boolean value that is not a true/false token.
func vectorFromFlags() (config.Vector, error) {
	v := config.Vector{
		ProjectName: validateFlags.projectName,
		License:     validateFlags.license,
		NoStd:       validateFlags.noStd,
	}

	bools := []struct {
		name  string
		value string
		dst   *bool
	}{
		{"mkdocs", validateFlags.mkdocs, &v.Mkdocs},
		{"vscode", validateFlags.vscode, &v.VSCode},
		{"xplat", validateFlags.xplat, &v.XPlat},
		{"big-endian", validateFlags.bigEndian, &v.BigEndian},
		{"wine", validateFlags.wine, &v.Wine},
		{"bench", validateFlags.bench, &v.Bench},
		{"miri", validateFlags.miri, &v.Miri},
		{"fuzz", validateFlags.fuzz, &v.Fuzz},
		{"build-c-libs", validateFlags.buildCLibs, &v.BuildCLibs},
		{"build-csharp-libs", validateFlags.buildCSharpLibs, &v.BuildCSharpLibs},
		{"build-c-libs-with-pgo", validateFlags.buildCLibsWithPGO, &v.BuildCLibsWithPGO},
		{"publish-crate-on-tag", validateFlags.publishCrateOnTag, &v.PublishCrateOnTag},
	}
	for _, b := range bools {
		parsed, err := config.ParseBoolToken(b.value)
		if err != nil {
			return config.Vector{}, fmt.Errorf("--%s: %w", b.name, err)
		}
		*b.dst = parsed
	}

	return v, nil
}
