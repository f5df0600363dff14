// Package runner drives one validation run end to end: scratch directory,
// template generation, validation, cleanup — and the named-configuration
// matrix built on top of single runs.
package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/moasq/templatecheck/internal/config"
	"github.com/moasq/templatecheck/internal/terminal"
	"github.com/moasq/templatecheck/internal/validate"
)

// ProjectGenerator expands the template for one vector into destDir and
// returns the generated project directory.
type ProjectGenerator interface {
	Generate(ctx context.Context, v config.Vector, destDir string) (string, error)
}

// Runner wires the generator and the external build collaborators into the
// validation engine. Build and Docs may be nil to skip external builds.
type Runner struct {
	Generator ProjectGenerator
	Build     validate.BuildRunner
	Docs      validate.DocsRunner
}

// RunOne validates a single configuration as a fully independent run: it
// generates the project into a fresh temp directory, runs every validation
// step, and removes the temp directory on every exit path. The returned
// error is reserved for hard failures (scratch setup or generation); check
// failures are reported through the boolean.
func (r *Runner) RunOne(ctx context.Context, v config.Vector) (passed bool, err error) {
	tmpDir, err := os.MkdirTemp("", "templatecheck-")
	if err != nil {
		return false, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	terminal.Detail("Project", v.ProjectName)
	terminal.Detail("License", v.License)
	terminal.Detail("Scratch", tmpDir)

	spinner := terminal.NewSpinner("Generating project...")
	spinner.Start()
	projectDir, err := r.Generator.Generate(ctx, v, tmpDir)
	spinner.Stop()
	if err != nil {
		terminal.Error("Generation failed")
		return false, err
	}
	terminal.Success("Project generated")

	validator := &validate.Validator{
		Root:   projectDir,
		Vector: v,
		Build:  r.Build,
		Docs:   r.Docs,
	}
	result := validator.Run(ctx)

	reportStep("File structure", result.Structure)
	reportStep("Content checks", result.Content)
	reportStep("File formats", result.Formats)
	reportStep("Template remnants", result.Remnants)

	switch {
	case result.BuildRan && result.BuildErr != nil:
		terminal.Error(fmt.Sprintf("Build validation failed: %v", result.BuildErr))
	case result.BuildRan:
		terminal.Success("Build validation passed")
	}

	switch {
	case result.DocsSkipped:
		terminal.Info("Docs build skipped (mkdocs disabled)")
	case result.DocsRan && result.DocsErr != nil:
		terminal.Error(fmt.Sprintf("Docs validation failed: %v", result.DocsErr))
	case result.DocsRan:
		terminal.Success("Docs validation passed")
	}

	return result.Passed(), nil
}

func reportStep(name string, report *validate.Report) {
	if report.Passed() {
		terminal.Success(fmt.Sprintf("%s validation passed", name))
		return
	}
	terminal.Error(fmt.Sprintf("%s validation failed with %d error(s)", name, report.Errors))
	for _, diag := range report.Diagnostics {
		fmt.Printf("    %s\n", diag)
	}
}

// MatrixResult is the outcome of one named configuration.
type MatrixResult struct {
	Name        string
	DisplayName string
	Passed      bool
	Err         error
}

// RunMatrix validates every named configuration sequentially. Runs share no
// state; a generation failure in one configuration fails that entry and the
// matrix continues with the next.
func (r *Runner) RunMatrix(ctx context.Context) ([]MatrixResult, bool) {
	results := make([]MatrixResult, 0, len(config.Matrix()))
	allPassed := true

	for _, named := range config.Matrix() {
		terminal.Section("Running: " + named.DisplayName)
		passed, err := r.RunOne(ctx, named.Vector)
		if err != nil {
			terminal.Error(fmt.Sprintf("%s: %v", named.Name, err))
			passed = false
		}
		if !passed {
			allPassed = false
		}
		results = append(results, MatrixResult{
			Name:        named.Name,
			DisplayName: named.DisplayName,
			Passed:      passed,
			Err:         err,
		})
	}

	terminal.Section("Matrix Summary")
	passedCount := 0
	for _, res := range results {
		if res.Passed {
			terminal.Success(fmt.Sprintf("%s (%s): PASSED", res.DisplayName, res.Name))
			passedCount++
		} else {
			terminal.Error(fmt.Sprintf("%s (%s): FAILED", res.DisplayName, res.Name))
		}
	}
	terminal.Info(fmt.Sprintf("Passed: %d / %d", passedCount, len(results)))

	return results, allPassed
}
