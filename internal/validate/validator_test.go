package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/templatecheck/internal/config"
)

type fakeBuild struct {
	calls int
	err   error
}

func (f *fakeBuild) Build(ctx context.Context, projectDir string) error {
	f.calls++
	return f.err
}

type fakeDocs struct {
	calls int
	err   error
}

func (f *fakeDocs) BuildDocs(ctx context.Context, projectDir string) error {
	f.calls++
	return f.err
}

func TestValidatorFullPass(t *testing.T) {
	v := config.Vector{ProjectName: "demo", Mkdocs: true, VSCode: true, License: "MIT"}
	root := scaffold(t, v)

	build := &fakeBuild{}
	docs := &fakeDocs{}
	result := (&Validator{Root: root, Vector: v, Build: build, Docs: docs}).Run(context.Background())

	assert.True(t, result.Passed(), "diagnostics: %v", result.Diagnostics())
	assert.True(t, result.BuildRan)
	assert.True(t, result.DocsRan)
	assert.Equal(t, 1, build.calls)
	assert.Equal(t, 1, docs.calls)
}

func TestValidatorSkipsDocsWhenDisabled(t *testing.T) {
	v := config.Vector{ProjectName: "demo", License: "MIT"}
	root := scaffold(t, v)

	docs := &fakeDocs{}
	result := (&Validator{Root: root, Vector: v, Build: &fakeBuild{}, Docs: docs}).Run(context.Background())

	assert.True(t, result.Passed(), "diagnostics: %v", result.Diagnostics())
	assert.True(t, result.DocsSkipped)
	assert.False(t, result.DocsRan)
	assert.Equal(t, 0, docs.calls, "docs builder must not be invoked when documentation is disabled")
}

// A failed build must not suppress the docs build: the two validate
// independent subtrees and one run should surface both outcomes.
func TestValidatorBuildFailureDoesNotSuppressDocs(t *testing.T) {
	v := config.Vector{ProjectName: "demo", Mkdocs: true, License: "MIT"}
	root := scaffold(t, v)

	buildErr := errors.New("cargo test failed")
	docs := &fakeDocs{}
	result := (&Validator{Root: root, Vector: v, Build: &fakeBuild{err: buildErr}, Docs: docs}).Run(context.Background())

	assert.False(t, result.Passed())
	require.ErrorIs(t, result.BuildErr, buildErr)
	assert.True(t, result.DocsRan)
	assert.Equal(t, 1, docs.calls)
	assert.NoError(t, result.DocsErr)
}

func TestValidatorNilCollaborators(t *testing.T) {
	v := config.Vector{ProjectName: "demo", License: "MIT"}
	root := scaffold(t, v)

	result := (&Validator{Root: root, Vector: v}).Run(context.Background())

	assert.True(t, result.Passed(), "diagnostics: %v", result.Diagnostics())
	assert.False(t, result.BuildRan)
	assert.False(t, result.DocsRan)
}

func TestValidatorAggregatesEveryStep(t *testing.T) {
	v := config.Vector{ProjectName: "demo", License: "MIT"}
	root := scaffold(t, v)

	// One violation per filesystem step: a forbidden path, a wrong license,
	// a malformed TOML, and a template remnant.
	writeFile(t, root, "flake.nix", "{}")
	writeFile(t, root, "LICENSE", "not the MIT text\n")
	writeFile(t, root, "broken.toml", "[unclosed\n")
	writeFile(t, root, "leftover.md", "{{ project-name }}\n")

	result := (&Validator{Root: root, Vector: v}).Run(context.Background())

	assert.False(t, result.Passed())
	assert.Equal(t, 1, result.Structure.Errors)
	assert.Equal(t, 1, result.Content.Errors)
	assert.Equal(t, 1, result.Formats.Errors)
	assert.Equal(t, 1, result.Remnants.Errors)
	assert.Len(t, result.Diagnostics(), 4)
}
