package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pithecene-io/easel/types"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easel.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
directory: figures
format: svg
toolkits:
  matplotlib:
    executable: /opt/venv/bin/python
  gnuplot:
    executable: gnuplot5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Directory != "figures" {
		t.Errorf("Directory = %q, want figures", cfg.Directory)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}

	overrides := cfg.ExecutableOverrides()
	if overrides[types.ToolkitMatplotlib] != "/opt/venv/bin/python" {
		t.Errorf("matplotlib override = %q", overrides[types.ToolkitMatplotlib])
	}
	if overrides[types.ToolkitGnuplot] != "gnuplot5" {
		t.Errorf("gnuplot override = %q", overrides[types.ToolkitGnuplot])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "toolkits: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("EASEL_TEST_PYTHON", "/custom/python")
	path := writeConfig(t, `
toolkits:
  matplotlib:
    executable: ${EASEL_TEST_PYTHON}
  octave:
    executable: ${EASEL_TEST_UNSET:-octave-cli}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	overrides := cfg.ExecutableOverrides()
	if overrides[types.ToolkitMatplotlib] != "/custom/python" {
		t.Errorf("matplotlib override = %q, want env value", overrides[types.ToolkitMatplotlib])
	}
	if overrides[types.ToolkitOctave] != "octave-cli" {
		t.Errorf("octave override = %q, want default fallback", overrides[types.ToolkitOctave])
	}
}

func TestExecutableOverrides_DropsEmptyEntries(t *testing.T) {
	cfg := &Config{Toolkits: map[string]ToolkitConfig{
		"matplotlib": {Executable: ""},
		"gnuplot":    {Executable: "gnuplot"},
	}}

	overrides := cfg.ExecutableOverrides()
	if _, ok := overrides[types.ToolkitMatplotlib]; ok {
		t.Error("empty executable should be dropped")
	}
	if len(overrides) != 1 {
		t.Errorf("len(overrides) = %d, want 1", len(overrides))
	}
}

func TestExpandEnv_Patterns(t *testing.T) {
	t.Setenv("EASEL_SET", "value")
	tests := []struct {
		in   string
		want string
	}{
		{"${EASEL_SET}", "value"},
		{"${EASEL_NOPE}", ""},
		{"${EASEL_NOPE:-fallback}", "fallback"},
		{"prefix-${EASEL_SET}-suffix", "prefix-value-suffix"},
		{"no vars here", "no vars here"},
	}
	for _, tt := range tests {
		if got := ExpandEnv(tt.in); got != tt.want {
			t.Errorf("ExpandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
