package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2dox "github.com/alnah/go-md2dox"
	"github.com/alnah/go-md2dox/internal/fileutil"
	"github.com/alnah/go-md2dox/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxExcludeLength = 200  // a navigation tree entry title
	MaxExcludeCount  = 32
)

// Config holds everything that can change between environments. The page
// manifest is compiled in and not configurable.
type Config struct {
	WorkDir   string          `yaml:"workDir"`   // Empty = current directory
	OutputDir string          `yaml:"outputDir"` // Relative to workDir
	Generator GeneratorConfig `yaml:"generator"`
	NavTree   NavTreeConfig   `yaml:"navTree"`
}

// GeneratorConfig defines the external generator invocation.
type GeneratorConfig struct {
	Binary string `yaml:"binary"` // "doxygen" or an absolute path
	Config string `yaml:"config"` // Doxyfile, relative to workDir
	Strict bool   `yaml:"strict"` // Fail the build on a generator error
}

// NavTreeConfig defines the post-generation sidebar cleanup.
type NavTreeConfig struct {
	Path    string   `yaml:"path"`    // Relative to workDir
	Exclude []string `yaml:"exclude"` // Lines containing any entry are dropped
}

// DefaultConfig matches the zero-argument build: run from docs/doxygen,
// write pages/generated, run "doxygen Doxyfile.doxy", clean ../html/navtreedata.js.
func DefaultConfig() *Config {
	return &Config{
		WorkDir:   "",
		OutputDir: md2dox.DefaultOutputDir,
		Generator: GeneratorConfig{
			Binary: md2dox.DefaultGeneratorBinary,
			Config: md2dox.DefaultGeneratorConfig,
		},
		NavTree: NavTreeConfig{
			Path:    md2dox.DefaultNavTreePath,
			Exclude: md2dox.DefaultNavTreeExclude(),
		},
	}
}

// Validate checks required fields and length limits.
func (c *Config) Validate() error {
	paths := []struct {
		name     string
		value    string
		required bool
	}{
		{"workDir", c.WorkDir, false},
		{"outputDir", c.OutputDir, true},
		{"generator.binary", c.Generator.Binary, true},
		{"generator.config", c.Generator.Config, true},
		{"navTree.path", c.NavTree.Path, true},
	}
	for _, p := range paths {
		if p.required && strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidField, p.name)
		}
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if len(c.NavTree.Exclude) > MaxExcludeCount {
		return fmt.Errorf("%w: navTree.exclude has %d entries (max %d)", ErrInvalidField, len(c.NavTree.Exclude), MaxExcludeCount)
	}
	for i, entry := range c.NavTree.Exclude {
		name := fmt.Sprintf("navTree.exclude[%d]", i)
		// An empty entry would match, and drop, every line.
		if entry == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidField, name)
		}
		if err := validateFieldLength(name, entry, MaxExcludeLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode renders the configuration as YAML, for `md2dox config`.
func (c *Config) Encode() ([]byte, error) {
	return yamlutil.Encode(c)
}

// SearchPaths lists where a config name is looked up, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2dox/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2dox", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
