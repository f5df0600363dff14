package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/moasq/templatecheck/internal/config"
)

// stubGenerator writes a minimal generated tree instead of invoking
// cargo-generate, and records the destination it was given.
type stubGenerator struct {
	destDir string
	err     error
	files   map[string]string
}

func (s *stubGenerator) Generate(ctx context.Context, v config.Vector, destDir string) (string, error) {
	s.destDir = destDir
	if s.err != nil {
		return "", s.err
	}
	projectDir := filepath.Join(destDir, v.ProjectName)
	for rel, content := range s.files {
		full := filepath.Join(projectDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return "", err
		}
	}
	return projectDir, nil
}

// minimalTree satisfies every check for an all-features-off MIT vector.
func minimalTree(projectName string) map[string]string {
	return map[string]string{
		"LICENSE":                            "MIT License\n\nPermission is hereby granted...\n",
		"src/Cargo.toml":                     "[workspace]\nmembers = [\"" + projectName + "\"]\n",
		"src/" + projectName + "/Cargo.toml": "[package]\nname = \"" + projectName + "\"\n",
		"src/" + projectName + "/src/lib.rs": "pub fn " + projectName + "() {}\n",
		".github/workflows/rust.yml":         "name: Rust CI\non: push\n",
	}
}

func TestRunOnePasses(t *testing.T) {
	gen := &stubGenerator{files: minimalTree("demo")}
	r := &Runner{Generator: gen}

	passed, err := r.RunOne(context.Background(), config.Vector{ProjectName: "demo", License: "MIT"})
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if !passed {
		t.Error("expected a clean tree to pass")
	}
}

func TestRunOneReportsCheckFailures(t *testing.T) {
	files := minimalTree("demo")
	delete(files, "LICENSE")
	files["leftover.md"] = "{{ project-name }}\n"
	gen := &stubGenerator{files: files}
	r := &Runner{Generator: gen}

	passed, err := r.RunOne(context.Background(), config.Vector{ProjectName: "demo", License: "MIT"})
	if err != nil {
		t.Fatalf("check failures must not surface as a hard error, got: %v", err)
	}
	if passed {
		t.Error("expected violations to fail the run")
	}
}

func TestRunOneGenerationFailureIsHard(t *testing.T) {
	genErr := errors.New("cargo generate failed")
	gen := &stubGenerator{err: genErr}
	r := &Runner{Generator: gen}

	passed, err := r.RunOne(context.Background(), config.Vector{ProjectName: "demo", License: "MIT"})
	if !errors.Is(err, genErr) {
		t.Fatalf("expected generation error to propagate, got: %v", err)
	}
	if passed {
		t.Error("a failed generation cannot pass")
	}
}

// The scratch directory is removed on every exit path.
func TestRunOneCleansUpScratchDir(t *testing.T) {
	for name, gen := range map[string]*stubGenerator{
		"pass": {files: minimalTree("demo")},
		"fail": {err: errors.New("boom")},
	} {
		if _, err := (&Runner{Generator: gen}).RunOne(context.Background(), config.Vector{ProjectName: "demo", License: "MIT"}); err != nil && name == "pass" {
			t.Fatalf("%s: RunOne: %v", name, err)
		}
		if gen.destDir == "" {
			t.Fatalf("%s: generator never received a scratch directory", name)
		}
		if _, err := os.Stat(gen.destDir); !os.IsNotExist(err) {
			t.Errorf("%s: scratch directory %s not removed (stat err: %v)", name, gen.destDir, err)
		}
	}
}

func TestRunMatrixContinuesPastFailures(t *testing.T) {
	// The stub ignores the vector's flags, so feature-rich configurations
	// fail their structural checks while producing no hard error.
	gen := &stubGenerator{files: minimalTree("ignored")}
	r := &Runner{Generator: gen}

	results, allPassed := r.RunMatrix(context.Background())
	if allPassed {
		t.Error("expected at least one configuration to fail")
	}
	if len(results) != len(config.Matrix()) {
		t.Errorf("matrix stopped early: got %d results, want %d", len(results), len(config.Matrix()))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected hard error: %v", res.Name, res.Err)
		}
	}
}
