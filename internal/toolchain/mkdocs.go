package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// MkDocs builds the generated documentation site.
type MkDocs struct {
	// Path overrides the mkdocs binary, default "mkdocs".
	Path string
}

// NewMkDocs returns a MkDocs using the default binary.
func NewMkDocs() *MkDocs {
	return &MkDocs{}
}

func (m *MkDocs) mkdocs() string {
	if m.Path != "" {
		return m.Path
	}
	return "mkdocs"
}

// BuildDocs runs `mkdocs build --strict` in the doc/ subtree. Strict mode
// treats warnings as errors, so an incomplete nav or broken link fails the
// step.
func (m *MkDocs) BuildDocs(ctx context.Context, projectDir string) error {
	docDir := filepath.Join(projectDir, "doc")
	if _, err := os.Stat(docDir); err != nil {
		return fmt.Errorf("doc/ directory not found in %s", projectDir)
	}

	cmd := exec.CommandContext(ctx, m.mkdocs(), "build", "--strict")
	cmd.Dir = docDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mkdocs build failed: %w%s", err, outputSuffix(out))
	}
	return nil
}
