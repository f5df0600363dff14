package config

// NamedConfig is one entry in the standard test matrix.
type NamedConfig struct {
	Name        string
	DisplayName string
	Vector      Vector
}

// Matrix returns the named configurations exercised by `templatecheck matrix`,
// in execution order. Each run is fully independent: its own temp directory,
// its own generated tree, no shared state.
func Matrix() []NamedConfig {
	return []NamedConfig{
		{
			Name:        "defaults",
			DisplayName: "Default Configuration",
			Vector: Vector{
				ProjectName:       "test_defaults",
				Mkdocs:            true,
				VSCode:            true,
				XPlat:             true,
				Wine:              true,
				Bench:             true,
				BuildCLibs:        true,
				BuildCLibsWithPGO: true,
				PublishCrateOnTag: true,
				License:           "GPL v3 (with Reloaded FAQ)",
				NoStd:             "STD",
			},
		},
		{
			Name:        "all_on",
			DisplayName: "All Features Enabled",
			Vector: Vector{
				ProjectName:       "test_all_on",
				Mkdocs:            true,
				VSCode:            true,
				XPlat:             true,
				BigEndian:         true,
				Wine:              true,
				Bench:             true,
				Miri:              true,
				BuildCLibs:        true,
				BuildCSharpLibs:   true,
				BuildCLibsWithPGO: true,
				PublishCrateOnTag: true,
				License:           "MIT",
				NoStd:             "STD",
			},
		},
		{
			Name:        "all_off",
			DisplayName: "Minimal Features (Quick Test)",
			Vector: Vector{
				ProjectName: "test_all_off",
				License:     "Apache 2.0",
				NoStd:       "STD",
			},
		},
		{
			Name:        "c_bindings",
			DisplayName: "C# Bindings with C Libraries",
			Vector: Vector{
				ProjectName:       "test_c_bindings",
				Mkdocs:            true,
				VSCode:            true,
				XPlat:             true,
				Wine:              true,
				Bench:             true,
				BuildCLibs:        true,
				BuildCSharpLibs:   true,
				BuildCLibsWithPGO: true,
				PublishCrateOnTag: true,
				License:           "GPL v3 (with Reloaded FAQ)",
				NoStd:             "STD",
			},
		},
		{
			Name:        "pgo_enabled",
			DisplayName: "Profile-Guided Optimization",
			Vector: Vector{
				ProjectName:       "test_pgo",
				Mkdocs:            true,
				VSCode:            true,
				XPlat:             true,
				Wine:              true,
				Bench:             true,
				BuildCLibs:        true,
				BuildCLibsWithPGO: true,
				PublishCrateOnTag: true,
				License:           "GPL v3 (with Reloaded FAQ)",
				NoStd:             "STD",
			},
		},
		{
			Name:        "big_endian",
			DisplayName: "Big-Endian Support",
			Vector: Vector{
				ProjectName:       "test_big_endian",
				Mkdocs:            true,
				VSCode:            true,
				XPlat:             true,
				BigEndian:         true,
				Wine:              true,
				Bench:             true,
				BuildCLibs:        true,
				BuildCLibsWithPGO: true,
				PublishCrateOnTag: true,
				License:           "GPL v3 (with Reloaded FAQ)",
				NoStd:             "STD",
			},
		},
	}
}
