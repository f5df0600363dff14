// Package generator invokes cargo-generate to expand the library template
// into a scratch directory for validation.
package generator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moasq/templatecheck/internal/config"
)

// Defaults for the template variables that are not feature flags.
const (
	defaultGHUsername  = "test-user"
	defaultGHRepoName  = "test-repo"
	defaultDescription = "Test project for template validation"
)

// Generator runs cargo-generate against a local template path.
type Generator struct {
	// TemplatePath is the template directory passed to --path.
	TemplatePath string
	// CargoPath overrides the cargo binary, default "cargo".
	CargoPath string
}

// New returns a Generator for the given template directory.
func New(templatePath string) *Generator {
	return &Generator{TemplatePath: templatePath}
}

func (g *Generator) cargo() string {
	if g.CargoPath != "" {
		return g.CargoPath
	}
	return "cargo"
}

// Defines serializes the vector as ordered key=value template definitions.
// Dependent defines follow the same gating as the structural rule set:
// big_endian only with xplat, build_csharp_libs only with build_c_libs, and
// the PGO define only with bench and build_c_libs together.
func Defines(v config.Vector) []string {
	defines := []string{
		"gh_username=" + defaultGHUsername,
		"gh_reponame=" + defaultGHRepoName,
		"project_description=" + defaultDescription,
		"mkdocs=" + strconv.FormatBool(v.Mkdocs),
		"vscode=" + strconv.FormatBool(v.VSCode),
		"xplat=" + strconv.FormatBool(v.XPlat),
		"wine=" + strconv.FormatBool(v.Wine),
		"bench=" + strconv.FormatBool(v.Bench),
		"miri=" + strconv.FormatBool(v.Miri),
		"fuzz=" + strconv.FormatBool(v.Fuzz),
		"build_c_libs=" + strconv.FormatBool(v.BuildCLibs),
		"publish_crate_on_tag=" + strconv.FormatBool(v.PublishCrateOnTag),
		"license=" + v.License,
		"no_std_support=" + v.NoStd,
	}

	if v.XPlat {
		defines = append(defines, "big_endian="+strconv.FormatBool(v.BigEndian))
	}
	if v.BuildCLibs {
		defines = append(defines, "build_csharp_libs="+strconv.FormatBool(v.BuildCSharpLibs))
	}
	if v.Bench && v.BuildCLibs {
		defines = append(defines, "build_c_libs-with-pgo="+strconv.FormatBool(v.BuildCLibsWithPGO))
	}

	return defines
}

// args builds the full cargo-generate argument list for one run.
func (g *Generator) args(v config.Vector, destDir string) []string {
	args := []string{
		"generate",
		"--path", g.TemplatePath,
		"--name", v.ProjectName,
		"--destination", destDir,
	}
	for _, def := range Defines(v) {
		args = append(args, "--define", def)
	}
	return args
}

// Generate expands the template into destDir and returns the generated
// project directory (destDir/project-name). Any generation failure — a
// non-zero exit or a missing output tree — is a hard failure: validation
// must not start without the artifact.
func (g *Generator) Generate(ctx context.Context, v config.Vector, destDir string) (string, error) {
	if _, err := os.Stat(g.TemplatePath); err != nil {
		return "", fmt.Errorf("template path not found: %s: %w", g.TemplatePath, err)
	}

	cmd := exec.CommandContext(ctx, g.cargo(), g.args(v, destDir)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("cargo generate failed: %w%s", err, outputSuffix(out))
	}

	projectDir := filepath.Join(destDir, v.ProjectName)
	info, err := os.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("generated project not found at %s", projectDir)
	}

	return projectDir, nil
}

func outputSuffix(out []byte) string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return ""
	}
	return "\n" + trimmed
}
