package validate

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// skipDirs are path segments excluded from both scanner passes: vendored
// dependencies and version-control metadata.
var skipDirs = map[string]bool{
	"vendor": true,
	".git":   true,
}

// mkdocsConfigName is exempt from the YAML parse pass: MkDocs configs embed
// !!python/name: tags a generic YAML parser rejects.
const mkdocsConfigName = "mkdocs.yml"

// CheckFormats walks the generated tree and parses every structured-data
// file with the parser its extension implies. Each malformed file is one
// error naming the file and the underlying parse error.
func CheckFormats(root string) *Report {
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

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				report.Errorf("cannot read %s: %v", rel, readErr)
				return nil
			}
			var v any
			if jsonErr := json.Unmarshal(data, &v); jsonErr != nil {
				report.Errorf("invalid JSON: %s: %v", rel, jsonErr)
			}
		case ".toml":
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				report.Errorf("cannot read %s: %v", rel, readErr)
				return nil
			}
			var v map[string]any
			if tomlErr := toml.Unmarshal(data, &v); tomlErr != nil {
				report.Errorf("invalid TOML: %s: %v", rel, tomlErr)
			}
		case ".yml", ".yaml":
			if d.Name() == mkdocsConfigName {
				return nil
			}
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				report.Errorf("cannot read %s: %v", rel, readErr)
				return nil
			}
			var v any
			if yamlErr := yaml.Unmarshal(data, &v); yamlErr != nil {
				report.Errorf("invalid YAML: %s: %v", rel, yamlErr)
			}
		}
		return nil
	})
	if walkErr != nil {
		report.Errorf("format scan failed: %v", walkErr)
	}

	return report
}
