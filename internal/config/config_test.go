package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
	if !cfg.Output.ShowDescriptions() {
		t.Fatal("descriptions should default to on")
	}
}

func TestResolveYAML(t *testing.T) {
	path := writeFile(t, "winerror.yaml", `
log:
  level: debug
  backend: hclog
  caller: true
output:
  color: never
  descriptions: false
  hex: true
`)

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Backend != "hclog" || cfg.Log.Format != "text" || !cfg.Log.Caller {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Output.Color != "never" || cfg.Output.ShowDescriptions() || !cfg.Output.Hex {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestResolveTOMLFromEnv(t *testing.T) {
	path := writeFile(t, "winerror.toml", `
[log]
format = "json-pretty"

[output]
color = "always"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Log.Format != "json-pretty" || cfg.Log.Caller || cfg.Output.Color != "always" || cfg.Log.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveErrors(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Resolve(writeFile(t, "bad.yaml", "log: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := Resolve(writeFile(t, "bad.yaml", "output:\n  color: purple\n")); err == nil {
		t.Error("invalid colour should fail validation")
	}
}

func TestMergeConfigsRequiresInput(t *testing.T) {
	if _, err := MergeConfigs(); err == nil {
		t.Fatal("expected error")
	}
}
