package validate

import (
	"github.com/moasq/templatecheck/internal/config"
)

// ObligationKind tags an Obligation so the evaluator can dispatch without
// inspecting types.
type ObligationKind int

const (
	// RequiredPath means the path must exist in the generated tree.
	RequiredPath ObligationKind = iota
	// ForbiddenPath means the path must not exist in the generated tree.
	ForbiddenPath
)

// Obligation is a single required-or-forbidden assertion about one relative
// path in the generated tree. Obligations are built fresh per run from the
// feature rules and never persisted.
type Obligation struct {
	Kind ObligationKind
	Path string // slash-separated, relative to the project root
	Desc string
}

func required(path, desc string) Obligation  { return Obligation{Kind: RequiredPath, Path: path, Desc: desc} }
func forbidden(path, desc string) Obligation { return Obligation{Kind: ForbiddenPath, Path: path, Desc: desc} }

// feature is one node in the feature-dependency graph. Features are declared
// in dependency order (prerequisites before dependents), so a single forward
// pass resolves effective enablement.
//
// Gating rules:
//   - prerequisite enabled, feature enabled:  emit whenOn
//   - prerequisite enabled, feature disabled: emit whenOff
//   - prerequisite disabled: emit only a forbidden obligation for orphanRoot
//     (if any) — never the feature's children, which were never meant to be
//     generated in the first place.
type feature struct {
	name    string
	prereq  string // name of the prerequisite feature, "" for top-level
	enabled func(config.Vector) bool
	whenOn  func(config.Vector) []Obligation
	whenOff func(config.Vector) []Obligation
	// orphanRoot is the feature's top-level path, forbidden when the
	// prerequisite is disabled. Empty when the path is already covered by
	// the prerequisite's own forbidden root (e.g. doc/.vscode under doc/).
	orphanRoot string
	orphanDesc string
}

// features is the declarative structural rule set: one node per template
// feature flag, in the template's declared order. Dependent features
// (mkdocs → nested vscode, build_c_libs → build_csharp_libs, bench → pgo,
// xplat → big_endian) name their prerequisite instead of nesting conditionals.
var features = []feature{
	{
		name:    "mkdocs",
		enabled: func(v config.Vector) bool { return v.Mkdocs },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("doc/mkdocs.yml", "Doc mkdocs.yml"),
				required("doc/docs", "MkDocs source directory"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("doc", "Documentation directory"),
				forbidden(".github/workflows/deploy-mkdocs.yml", "MkDocs deployment workflow"),
			}
		},
	},
	{
		name:    "vscode",
		enabled: func(v config.Vector) bool { return v.VSCode },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("src/.vscode/settings.json", "VSCode settings"),
				required("src/.vscode/tasks.json", "VSCode tasks"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("src/.vscode", "VSCode directory"),
			}
		},
	},
	{
		// The doc-nested VSCode config only exists inside doc/, so it is
		// gated on mkdocs: with mkdocs disabled it is not independently
		// checked at all.
		name:    "doc_vscode",
		prereq:  "mkdocs",
		enabled: func(v config.Vector) bool { return v.VSCode },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("doc/.vscode/settings.json", "Doc VSCode settings"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("doc/.vscode", "Doc VSCode directory"),
			}
		},
	},
	{
		name:    "build_c_libs",
		enabled: func(v config.Vector) bool { return v.BuildCLibs },
		whenOn: func(v config.Vector) []Obligation {
			return []Obligation{
				required("src/"+v.ProjectName+"/src/exports.rs", "C exports file"),
				required(".github/cbindgen_c.toml", "cbindgen C config"),
				required(".github/cbindgen_cpp.toml", "cbindgen C++ config"),
			}
		},
		whenOff: func(v config.Vector) []Obligation {
			return []Obligation{
				forbidden("src/"+v.ProjectName+"/src/exports.rs", "C exports file"),
				forbidden(".github/cbindgen_c.toml", "cbindgen C config"),
				forbidden(".github/cbindgen_cpp.toml", "cbindgen C++ config"),
			}
		},
	},
	{
		name:    "build_csharp_libs",
		prereq:  "build_c_libs",
		enabled: func(v config.Vector) bool { return v.BuildCSharpLibs },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("src/bindings/csharp/csharp.csproj", "C# project file"),
				required("src/bindings/csharp/NativeMethods.cs", "C# native methods"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("src/bindings/csharp", "C# bindings directory"),
			}
		},
		orphanRoot: "src/bindings/csharp",
		orphanDesc: "C# bindings directory",
	},
	{
		name:    "bench",
		enabled: func(v config.Vector) bool { return v.Bench },
		whenOn: func(v config.Vector) []Obligation {
			return []Obligation{
				required("src/"+v.ProjectName+"/benches/my_benchmark", "Benchmark directory"),
				required("src/"+v.ProjectName+"/benches/my_benchmark/main.rs", "Benchmark main file"),
			}
		},
		whenOff: func(v config.Vector) []Obligation {
			return []Obligation{
				forbidden("src/"+v.ProjectName+"/benches", "Benchmark directory"),
			}
		},
	},
	{
		// PGO only changes CI workflow content, not the tree, but it sits in
		// the graph so its bench prerequisite is auditable and shared with
		// the generator's conditional defines.
		name:    "build_c_libs_with_pgo",
		prereq:  "bench",
		enabled: func(v config.Vector) bool { return v.BuildCLibsWithPGO },
	},
	{
		name:    "wine",
		enabled: func(v config.Vector) bool { return v.Wine },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("flake.nix", "Nix flake file"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("flake.nix", "Nix flake file"),
			}
		},
	},
	{
		name:    "fuzz",
		enabled: func(v config.Vector) bool { return v.Fuzz },
		whenOn: func(config.Vector) []Obligation {
			return []Obligation{
				required("src/fuzz/Cargo.toml", "Fuzz Cargo.toml"),
				required("src/fuzz/fuzz_targets/fuzz_example.rs", "Fuzz example target"),
			}
		},
		whenOff: func(config.Vector) []Obligation {
			return []Obligation{
				forbidden("src/fuzz", "Fuzz directory"),
			}
		},
	},
	{
		// xplat and big_endian shape the CI matrix only; big_endian is in the
		// graph because its define must not be emitted without xplat.
		name:    "xplat",
		enabled: func(v config.Vector) bool { return v.XPlat },
	},
	{
		name:    "big_endian",
		prereq:  "xplat",
		enabled: func(v config.Vector) bool { return v.BigEndian },
	},
}

// FeatureEnabled resolves effective enablement for a named feature: a feature
// is effectively enabled only when its own flag and every transitive
// prerequisite are enabled. Unknown names resolve to false.
func FeatureEnabled(v config.Vector, name string) bool {
	return effectiveEnablement(v)[name]
}

func effectiveEnablement(v config.Vector) map[string]bool {
	enabled := make(map[string]bool, len(features))
	for _, f := range features {
		on := f.enabled(v)
		if f.prereq != "" {
			on = on && enabled[f.prereq]
		}
		enabled[f.name] = on
	}
	return enabled
}

// Obligations translates one feature vector into the deterministic, ordered
// list of path obligations for the generated tree. The enabled and disabled
// branches of each feature are disjoint, so no path can be simultaneously
// required and forbidden.
func Obligations(v config.Vector) []Obligation {
	enabled := effectiveEnablement(v)

	var obligations []Obligation
	for _, f := range features {
		if f.prereq != "" && !enabled[f.prereq] {
			if f.orphanRoot != "" {
				obligations = append(obligations, forbidden(f.orphanRoot, f.orphanDesc))
			}
			continue
		}
		if f.enabled(v) {
			if f.whenOn != nil {
				obligations = append(obligations, f.whenOn(v)...)
			}
		} else if f.whenOff != nil {
			obligations = append(obligations, f.whenOff(v)...)
		}
	}

	// Files every generated project must have, regardless of flags.
	obligations = append(obligations,
		required("LICENSE", "Main license file"),
		required("src/Cargo.toml", "Workspace Cargo.toml"),
		required("src/"+v.ProjectName+"/Cargo.toml", "Package Cargo.toml"),
		required("src/"+v.ProjectName+"/src/lib.rs", "Main library file"),
		required(".github/workflows/rust.yml", "Rust CI workflow"),
	)

	return obligations
}

// CheckStructure evaluates every obligation for the vector against the
// generated tree at root. All obligations are evaluated even after a failure,
// so one run reports every violation.
func CheckStructure(root string, v config.Vector) *Report {
	report := &Report{}
	for _, o := range Obligations(v) {
		switch o.Kind {
		case RequiredPath:
			if ok, diag := CheckExists(root, o.Path, o.Desc); !ok {
				report.Errorf("%s", diag)
			}
		case ForbiddenPath:
			if ok, diag := CheckNotExists(root, o.Path, o.Desc); !ok {
				report.Errorf("%s", diag)
			}
		}
	}
	return report
}
