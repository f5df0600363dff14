package config

import (
	"fmt"
	"strings"
)

// Vector is the full set of template feature flags for one generation run.
// It is fixed for the lifetime of a validation run; every expected-path
// obligation is derived from it.
type Vector struct {
	ProjectName string

	Mkdocs            bool
	VSCode            bool
	XPlat             bool
	BigEndian         bool
	Wine              bool
	Bench             bool
	Miri              bool
	Fuzz              bool
	BuildCLibs        bool
	BuildCSharpLibs   bool
	BuildCLibsWithPGO bool
	PublishCrateOnTag bool

	License string
	NoStd   string
}

// Canonical license identifiers, as the template's prompt presents them.
// Matching is case-insensitive; see NormalizeLicense.
const (
	LicenseMIT          = "MIT"
	LicenseApache       = "APACHE 2.0"
	LicenseGPL3         = "GPL V3"
	LicenseGPL3Reloaded = "GPL V3 (WITH RELOADED FAQ)"
	LicenseLGPL3        = "LGPL V3"
)

// NormalizeLicense upper-cases and trims a license identifier for matching.
func NormalizeLicense(license string) string {
	return strings.ToUpper(strings.TrimSpace(license))
}

// KnownLicense reports whether the identifier is one of the template's
// selectable licenses. Unknown identifiers are structurally permitted but
// skip content validation.
func KnownLicense(license string) bool {
	switch NormalizeLicense(license) {
	case LicenseMIT, LicenseApache, LicenseGPL3, LicenseGPL3Reloaded, LicenseLGPL3:
		return true
	}
	return false
}

// ParseBoolToken parses a strict true/false token (case-insensitive).
// Unlike strconv.ParseBool it rejects 1/0/t/f/yes/no so that a mistyped
// flag value fails loudly instead of silently defaulting.
func ParseBoolToken(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q (expected true or false)", s)
}
