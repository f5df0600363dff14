package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/moasq/templatecheck/internal/config"
)

func defineSet(defines []string) map[string]string {
	set := make(map[string]string, len(defines))
	for _, def := range defines {
		key, value, _ := strings.Cut(def, "=")
		set[key] = value
	}
	return set
}

func TestDefinesUnconditionalKeys(t *testing.T) {
	v := config.Vector{
		ProjectName: "demo",
		Mkdocs:      true,
		License:     "MIT",
		NoStd:       "STD",
	}
	set := defineSet(Defines(v))

	expect := map[string]string{
		"gh_username":          "test-user",
		"gh_reponame":          "test-repo",
		"mkdocs":               "true",
		"vscode":               "false",
		"license":              "MIT",
		"no_std_support":       "STD",
		"publish_crate_on_tag": "false",
	}
	for key, want := range expect {
		got, ok := set[key]
		if !ok {
			t.Errorf("missing define %q", key)
			continue
		}
		if got != want {
			t.Errorf("define %s = %q, want %q", key, got, want)
		}
	}
}

// Dependent defines must not be emitted when their prerequisite is off:
// the template would reject or misinterpret them.
func TestDefinesDependentGating(t *testing.T) {
	v := config.Vector{ProjectName: "demo", BigEndian: true, BuildCSharpLibs: true, BuildCLibsWithPGO: true}
	set := defineSet(Defines(v))

	for _, key := range []string{"big_endian", "build_csharp_libs", "build_c_libs-with-pgo"} {
		if _, ok := set[key]; ok {
			t.Errorf("define %q emitted without its prerequisite", key)
		}
	}

	v.XPlat = true
	v.BuildCLibs = true
	v.Bench = true
	set = defineSet(Defines(v))

	for _, key := range []string{"big_endian", "build_csharp_libs", "build_c_libs-with-pgo"} {
		if set[key] != "true" {
			t.Errorf("define %s = %q, want true", key, set[key])
		}
	}
}

// The PGO define needs both bench and the native libs.
func TestDefinesPGONeedsBenchAndCLibs(t *testing.T) {
	v := config.Vector{ProjectName: "demo", Bench: true, BuildCLibsWithPGO: true}
	if _, ok := defineSet(Defines(v))["build_c_libs-with-pgo"]; ok {
		t.Error("pgo define emitted without build_c_libs")
	}

	v = config.Vector{ProjectName: "demo", BuildCLibs: true, BuildCLibsWithPGO: true}
	if _, ok := defineSet(Defines(v))["build_c_libs-with-pgo"]; ok {
		t.Error("pgo define emitted without bench")
	}
}

func TestArgs(t *testing.T) {
	g := New("templates/library")
	v := config.Vector{ProjectName: "demo", License: "MIT"}

	args := g.args(v, "/tmp/scratch")
	joined := strings.Join(args, " ")

	if args[0] != "generate" {
		t.Errorf("args[0] = %q, want generate", args[0])
	}
	for _, fragment := range []string{
		"--path templates/library",
		"--name demo",
		"--destination /tmp/scratch",
		"--define license=MIT",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("args missing %q: %s", fragment, joined)
		}
	}
}

// A missing template path fails before cargo is ever invoked.
func TestGenerateMissingTemplate(t *testing.T) {
	g := New("/nonexistent/template/path")
	g.CargoPath = "/nonexistent/cargo-binary"

	_, err := g.Generate(context.Background(), config.Vector{ProjectName: "demo"}, t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing template path")
	}
	if !strings.Contains(err.Error(), "template path not found") {
		t.Errorf("error should name the missing template, got: %v", err)
	}
}
