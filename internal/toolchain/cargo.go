// Package toolchain wraps the external build collaborators: the Rust
// toolchain for the generated source tree and MkDocs for the generated
// documentation. Invocations are synchronous; the exit code is the sole
// success signal, with captured output surfaced on failure.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Cargo runs the Rust build validation sequence against a generated project.
type Cargo struct {
	// Path overrides the cargo binary, default "cargo".
	Path string
}

// NewCargo returns a Cargo using the default binary.
func NewCargo() *Cargo {
	return &Cargo{}
}

func (c *Cargo) cargo() string {
	if c.Path != "" {
		return c.Path
	}
	return "cargo"
}

// Build runs cargo check, cargo build, and cargo test in order against the
// src/ workspace of the generated project. The first non-zero exit fails the
// step with the command's combined output.
func (c *Cargo) Build(ctx context.Context, projectDir string) error {
	srcDir := filepath.Join(projectDir, "src")
	if _, err := os.Stat(srcDir); err != nil {
		return fmt.Errorf("src/ directory not found in %s", projectDir)
	}

	for _, subcommand := range []string{"check", "build", "test"} {
		cmd := exec.CommandContext(ctx, c.cargo(), subcommand)
		cmd.Dir = srcDir
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("cargo %s failed: %w%s", subcommand, err, outputSuffix(out))
		}
	}
	return nil
}

func outputSuffix(out []byte) string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return ""
	}
	return "\n" + trimmed
}
