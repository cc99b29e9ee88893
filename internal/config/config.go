// Package config holds the settings shared by all actions: defaults, the optional settings file, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/n2code/bookorder/internal/naming"
)

// FileName is looked up in the working directory unless a settings file is given explicitly.
const FileName = "bookorder.yaml"

const maxWidth = 9

type Config struct {
	// Prefix width used whenever entries are (re)named. Default: 2, i.e. "01_".
	Width int `yaml:"width"`

	// Outline generation.
	SourceDirs                            []string `yaml:"sources"` // Default: ["."].
	OutputDir                             string   `yaml:"output"`  // Default: ".".
	Ignore                                []string `yaml:"ignore"`
	IncludeUnnumberedDirectories          bool     `yaml:"include_unnumbered_directories"`
	IncludeDirectoryContentWithoutSection bool     `yaml:"include_directory_content_without_section"`
	RelativeLinks                         bool     `yaml:"relative_links"` // Link targets relative to the output directory instead of absolute.

	// Relocation.
	UpdateSummaryAfterMove bool `yaml:"update_summary_after_move"` // Default: true.
	AssumeYes              bool `yaml:"assume_yes"`                // Apply planned renames without asking.
}

func DefaultConfig() Config {
	return Config{
		Width:                  naming.DefaultWidth,
		SourceDirs:             []string{"."},
		OutputDir:              ".",
		UpdateSummaryAfterMove: true,
	}
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Width > maxWidth {
		return fmt.Errorf("invalid prefix width %d (use 1 to %d)", c.Width, maxWidth)
	}
	if len(c.SourceDirs) == 0 {
		return errors.New("at least one source directory is required")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}

// Load returns the defaults overlaid with the settings file at path. A missing file is only an error if required.
// Relative paths inside the file are resolved against the directory containing it.
func Load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("settings file %s: %w", path, err)
	}
	cfg.resolveRelativeTo(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) resolveRelativeTo(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range c.SourceDirs {
		c.SourceDirs[i] = resolve(c.SourceDirs[i])
	}
	for i := range c.Ignore {
		c.Ignore[i] = resolve(c.Ignore[i])
	}
	c.OutputDir = resolve(c.OutputDir)
}
