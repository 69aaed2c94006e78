package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/pipeline"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
pages = 6
min_size = 16
dpi = 600
paper = "letter"
format = "pdf"
temp_dir = "/tmp/tagtile"
clean_temp = true
`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := &Config{
		Pages:     6,
		MinSize:   16,
		DPI:       600,
		Paper:     "letter",
		Format:    "pdf",
		TempDir:   "/tmp/tagtile",
		CleanTemp: true,
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `pages = `},
		{"wrong type", `pages = "four"`},
		{"unknown key", `pagez = 4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse(%q) error = %v, want INVALID_CONFIG", tt.data, err)
			}
		})
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", "tagtile", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestDefaultPathHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", "tagtile", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tagtile.toml")
	if err := os.WriteFile(path, []byte("dpi = 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DPI != 150 || cfg.Path != path {
		t.Errorf("Load = %+v, want dpi 150 from %s", cfg, path)
	}
}

func TestLoadMissingDefaultIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if err := os.MkdirAll(filepath.Join(xdg, "tagtile"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(xdg, "tagtile", "config.toml"), []byte(`paper = "a3"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paper != "a3" {
		t.Errorf("Paper = %q, want a3", cfg.Paper)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestApply(t *testing.T) {
	cfg := &Config{Pages: 6, DPI: 600, Paper: "letter", Format: "pdf", CleanTemp: true}

	t.Run("fills unset options", func(t *testing.T) {
		opts := pipeline.Options{Pages: 4, DPI: 300}
		cfg.Apply(&opts, nil)
		want := pipeline.Options{Pages: 6, DPI: 600, Paper: "letter", Format: "pdf", CleanTemp: true}
		if diff := cmp.Diff(want, opts, cmpopts.IgnoreUnexported(pipeline.Options{})); diff != "" {
			t.Errorf("Apply mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		opts := pipeline.Options{Pages: 2, DPI: 72, MinSize: 8}
		cfg.Apply(&opts, func(flag string) bool {
			return flag == FlagPages || flag == FlagDPI || flag == FlagFormat
		})
		want := pipeline.Options{Pages: 2, DPI: 72, MinSize: 8, Paper: "letter", CleanTemp: true}
		if diff := cmp.Diff(want, opts, cmpopts.IgnoreUnexported(pipeline.Options{})); diff != "" {
			t.Errorf("Apply mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestApplyParsedZeroValues(t *testing.T) {
	cfg, err := Parse([]byte("pages = 0\nmin_size = 0\nclean_temp = false\n"))
	if err != nil {
		t.Fatal(err)
	}

	opts := pipeline.DefaultOptions()
	opts.CleanTemp = true
	cfg.Apply(&opts, nil)
	if opts.Pages != 0 || opts.MinSize != 0 || opts.CleanTemp {
		t.Errorf("pages, min size, clean = %d, %d, %v, want zero values from the file",
			opts.Pages, opts.MinSize, opts.CleanTemp)
	}
	if opts.DPI != pipeline.DefaultDPI {
		t.Errorf("DPI = %d, want %d for a key absent from the file", opts.DPI, pipeline.DefaultDPI)
	}
}
