// Package config loads tagtile defaults from a TOML file.
//
// The file is optional. Its values fill in any option the user did not give
// explicitly on the command line:
//
//	pages      = 6
//	min_size   = 16
//	dpi        = 600
//	paper      = "letter"
//	format     = "pdf"
//	temp_dir   = "/tmp/tagtile"
//	clean_temp = true
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagtile/pkg/errors"
	"github.com/matzehuels/tagtile/pkg/pipeline"
)

const (
	appName  = "tagtile"
	fileName = "config.toml"
)

// Config holds file-provided defaults. A parsed Config treats every key
// present in the file as set, zero values included. A Config built in code
// treats its non-zero fields as set.
type Config struct {
	Pages     int    `toml:"pages"`
	MinSize   int    `toml:"min_size"`
	DPI       int    `toml:"dpi"`
	Paper     string `toml:"paper"`
	Format    string `toml:"format"`
	TempDir   string `toml:"temp_dir"`
	CleanTemp bool   `toml:"clean_temp"`

	// Path is the file the values were read from, empty if none was found.
	Path string `toml:"-"`

	// defined holds the keys present in the parsed file.
	defined map[string]bool
}

// Flag names overridden by the matching config fields.
const (
	FlagPages     = "num-a4"
	FlagMinSize   = "min-size"
	FlagDPI       = "dpi"
	FlagPaper     = "paper"
	FlagFormat    = "format"
	FlagTempDir   = "temp-dir"
	FlagCleanTemp = "clean-temp"
)

// DefaultPath returns the config file location using the XDG standard
// (~/.config/tagtile/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path. An empty path selects DefaultPath, and
// a missing default file yields an empty Config. A missing explicit file is
// an INVALID_CONFIG error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML config data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.defined = make(map[string]bool)
	for _, k := range md.Keys() {
		cfg.defined[k.String()] = true
	}
	return &cfg, nil
}

// Apply copies every set config value onto opts unless explicit reports the
// corresponding flag as given on the command line. A nil explicit treats
// every flag as unset.
func (c *Config) Apply(opts *pipeline.Options, explicit func(flag string) bool) {
	given := func(flag string) bool { return explicit != nil && explicit(flag) }

	if c.isSet("pages", c.Pages != 0) && !given(FlagPages) {
		opts.Pages = c.Pages
	}
	if c.isSet("min_size", c.MinSize != 0) && !given(FlagMinSize) {
		opts.MinSize = c.MinSize
	}
	if c.isSet("dpi", c.DPI != 0) && !given(FlagDPI) {
		opts.DPI = c.DPI
	}
	if c.isSet("paper", c.Paper != "") && !given(FlagPaper) {
		opts.Paper = c.Paper
	}
	if c.isSet("format", c.Format != "") && !given(FlagFormat) {
		opts.Format = c.Format
	}
	if c.isSet("temp_dir", c.TempDir != "") && !given(FlagTempDir) {
		opts.TempDir = c.TempDir
	}
	if c.isSet("clean_temp", c.CleanTemp) && !given(FlagCleanTemp) {
		opts.CleanTemp = c.CleanTemp
	}
}

func (c *Config) isSet(key string, nonZero bool) bool {
	if c.defined != nil {
		return c.defined[key]
	}
	return nonZero
}
