package validate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exists reports whether rel (slash-separated) exists under root.
// Absence is a valid outcome at this layer, never an error.
func Exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

// CheckExists checks a positive path obligation. It returns whether the
// path exists and a single diagnostic line describing the outcome.
func CheckExists(root, rel, desc string) (bool, string) {
	if Exists(root, rel) {
		return true, fmt.Sprintf("%s exists", desc)
	}
	return false, fmt.Sprintf("%s does not exist (expected: %s)", desc, rel)
}

// CheckNotExists checks a negative path obligation.
func CheckNotExists(root, rel, desc string) (bool, string) {
	if !Exists(root, rel) {
		return true, fmt.Sprintf("%s does not exist (as expected)", desc)
	}
	return false, fmt.Sprintf("%s exists but should not (found: %s)", desc, rel)
}
