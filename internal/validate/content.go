package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/moasq/templatecheck/internal/config"
)

const (
	fuzzTargetPath = "src/fuzz/fuzz_targets/fuzz_example.rs"
	vscodeTasks    = "src/.vscode/tasks.json"

	fuzzTutorialURL = "https://rust-fuzz.github.io/book/cargo-fuzz/tutorial.html"
	fuzzRunCommand  = "cargo +nightly fuzz run fuzz_example"

	// The template ships a "List Fuzz Targets" task; the older "Run Fuzzer"
	// task must have been removed during generation.
	fuzzListTaskMarker = `"label": "List Fuzz Targets"`
	fuzzRunTaskMarker  = `"label": "Run Fuzzer"`
)

// licenseVariants are the alternative license files the template carries;
// generation must delete all but the selected one.
var licenseVariants = []string{
	"LICENSE-MIT",
	"LICENSE-APACHE",
	"LICENSE-GPL3",
	"LICENSE-GPL3-R",
	"LICENSE-LGPL3",
}

// selectedVariant maps a normalized license identifier to the variant file
// kept as LICENSE.
var selectedVariant = map[string]string{
	config.LicenseMIT:          "LICENSE-MIT",
	config.LicenseApache:       "LICENSE-APACHE",
	config.LicenseGPL3:         "LICENSE-GPL3",
	config.LicenseGPL3Reloaded: "LICENSE-GPL3-R",
	config.LicenseLGPL3:        "LICENSE-LGPL3",
}

// CheckContent runs every content validator that applies to the vector:
// license anchor text, license-variant cleanup, and — when fuzzing is
// enabled — the fuzz target header and VSCode fuzz task markers.
func CheckContent(root string, v config.Vector) *Report {
	report := &Report{}
	report.Merge(CheckLicenseContent(root, v.License))
	report.Merge(CheckLicenseCleanup(root, v.License))
	if v.Fuzz {
		report.Merge(CheckFuzzTargetHeader(root))
		report.Merge(CheckFuzzTasks(root, v))
	}
	return report
}

// CheckLicenseContent asserts the primary LICENSE file contains the anchor
// text for the selected license. Unknown license identifiers pass trivially:
// they are structurally permitted but not content-validated.
func CheckLicenseContent(root, license string) *Report {
	report := &Report{}

	data, err := os.ReadFile(filepath.Join(root, "LICENSE"))
	if err != nil {
		report.Errorf("LICENSE file not readable: %v", err)
		return report
	}
	content := string(data)

	normalized := config.NormalizeLicense(license)
	switch {
	case normalized == config.LicenseMIT:
		if !strings.Contains(content, "MIT License") {
			report.Errorf("LICENSE does not contain MIT License text")
		}
	case normalized == config.LicenseApache:
		if !strings.Contains(content, "Apache License") {
			report.Errorf("LICENSE does not contain Apache License text")
		}
	case strings.HasPrefix(normalized, "LGPL"):
		// The canonical header appears in either title or all-caps casing.
		if !strings.Contains(content, "GNU Lesser General Public License") &&
			!strings.Contains(content, "GNU LESSER GENERAL PUBLIC LICENSE") {
			report.Errorf("LICENSE does not contain LGPL License text")
		}
	case strings.HasPrefix(normalized, "GPL"):
		if !strings.Contains(content, "GNU General Public License") &&
			!strings.Contains(content, "GNU GENERAL PUBLIC LICENSE") {
			report.Errorf("LICENSE does not contain GPL License text")
		}
	}

	return report
}

// CheckLicenseCleanup asserts every license-variant file except the selected
// one was deleted. Unknown license identifiers have no variant mapping, so
// nothing is forbidden.
func CheckLicenseCleanup(root, license string) *Report {
	report := &Report{}

	keep, known := selectedVariant[config.NormalizeLicense(license)]
	if !known {
		return report
	}

	for _, variant := range licenseVariants {
		if variant == keep {
			continue
		}
		if ok, diag := CheckNotExists(root, variant, "Unused "+variant); !ok {
			report.Errorf("%s", diag)
		}
	}
	return report
}

// CheckFuzzTargetHeader asserts the example fuzz target keeps its header
// comment: the cargo-fuzz tutorial link and the run command. Each missing
// piece is one error; a missing file is one error.
func CheckFuzzTargetHeader(root string) *Report {
	report := &Report{}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(fuzzTargetPath)))
	if err != nil {
		report.Errorf("fuzz target not readable for header validation: %v", err)
		return report
	}
	content := string(data)

	if !strings.Contains(content, fuzzTutorialURL) {
		report.Errorf("fuzz target missing cargo-fuzz tutorial URL in header")
	}
	if !strings.Contains(content, fuzzRunCommand) {
		report.Errorf("fuzz target missing run command in header")
	}
	return report
}

// CheckFuzzTasks asserts the generated VSCode task list carries the fuzz
// task markers: "List Fuzz Targets" must be present and the mutually
// exclusive "Run Fuzzer" must not. Skipped entirely when VSCode configs are
// not generated.
func CheckFuzzTasks(root string, v config.Vector) *Report {
	report := &Report{}
	if !v.VSCode {
		return report
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(vscodeTasks)))
	if err != nil {
		report.Errorf("VSCode tasks.json not readable for fuzz task validation: %v", err)
		return report
	}
	content := string(data)

	if strings.Contains(content, fuzzRunTaskMarker) {
		report.Errorf("tasks.json should not contain %s task", fuzzRunTaskMarker)
	}
	if !strings.Contains(content, fuzzListTaskMarker) {
		report.Errorf("tasks.json missing %s task", fuzzListTaskMarker)
	}
	return report
}
