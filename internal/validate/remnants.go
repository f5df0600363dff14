package validate

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// remnantGlob selects the text files scanned for unexpanded template syntax.
const remnantGlob = "*.{yml,yaml,toml,json,rs,md}"

// Liquid/Jinja-style markers that indicate incomplete template expansion.
var remnantMarkers = []string{"{{", "{%"}

// actionsExpr is the GitHub Actions expression escape. Lines carrying it are
// legitimate CI syntax that shares bracket characters with the template
// markers, so they are never flagged.
const actionsExpr = "${{"

// CheckRemnants scans every text file of interest for leftover template
// placeholder syntax. A line is skipped when it is a comment (prefix check
// after trimming) or contains a GitHub Actions expression; every other line
// carrying a marker is one error with path, line number, and trimmed content.
//
// The comment heuristic is deliberately a prefix check: a marker inside a
// multi-line comment, or in a string literal starting a line with a
// non-comment character, is still flagged.
func CheckRemnants(root string) *Report {
	report := &Report{}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if ok, matchErr := doublestar.Match(remnantGlob, d.Name()); matchErr != nil || !ok {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			report.Errorf("cannot read %s: %v", rel, readErr)
			return nil
		}

		for i, line := range strings.Split(string(data), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
				continue
			}
			if strings.Contains(line, actionsExpr) {
				continue
			}
			for _, marker := range remnantMarkers {
				if strings.Contains(line, marker) {
					report.Errorf("template remnant: %s:%d: %s", rel, i+1, trimmed)
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		report.Errorf("remnant scan failed: %v", walkErr)
	}

	return report
}
