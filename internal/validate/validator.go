package validate

import (
	"context"

	"github.com/moasq/templatecheck/internal/config"
)

// BuildRunner compiles and tests the generated source tree. Implemented by
// the cargo toolchain wrapper; faked in tests.
type BuildRunner interface {
	Build(ctx context.Context, projectDir string) error
}

// DocsRunner builds the generated documentation site in strict mode.
type DocsRunner interface {
	BuildDocs(ctx context.Context, projectDir string) error
}

// Validator runs the full validation sequence against one generated tree.
// Build and Docs may be nil to run the filesystem checks only.
type Validator struct {
	Root   string
	Vector config.Vector
	Build  BuildRunner
	Docs   DocsRunner
}

// Result aggregates the outcome of every validation step. Steps run
// unconditionally (except the documented skips) so the result is exhaustive
// rather than first-failure-only.
type Result struct {
	Structure *Report
	Content   *Report
	Formats   *Report
	Remnants  *Report

	BuildErr    error
	BuildRan    bool
	DocsErr     error
	DocsRan     bool
	DocsSkipped bool // documentation disabled in the vector
}

// Passed reports whether every executed step succeeded.
func (r *Result) Passed() bool {
	if !r.Structure.Passed() || !r.Content.Passed() || !r.Formats.Passed() || !r.Remnants.Passed() {
		return false
	}
	return r.BuildErr == nil && r.DocsErr == nil
}

// Diagnostics returns all step diagnostics in execution order.
func (r *Result) Diagnostics() []string {
	var out []string
	for _, rep := range []*Report{r.Structure, r.Content, r.Formats, r.Remnants} {
		out = append(out, rep.Diagnostics...)
	}
	return out
}

// Run executes structural validation, content validation, the format parse
// pass, the remnant scan, the external build, and the external docs build, in
// that order. It never short-circuits between steps: a failed build still
// lets the docs build run, since the two validate independent subtrees.
func (v *Validator) Run(ctx context.Context) *Result {
	result := &Result{
		Structure: CheckStructure(v.Root, v.Vector),
		Content:   CheckContent(v.Root, v.Vector),
		Formats:   CheckFormats(v.Root),
		Remnants:  CheckRemnants(v.Root),
	}

	if v.Build != nil {
		result.BuildRan = true
		result.BuildErr = v.Build.Build(ctx, v.Root)
	}

	if !v.Vector.Mkdocs {
		result.DocsSkipped = true
	} else if v.Docs != nil {
		result.DocsRan = true
		result.DocsErr = v.Docs.BuildDocs(ctx, v.Root)
	}

	return result
}
