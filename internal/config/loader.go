package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names used when a configuration does not come from a file.
const (
	SourceEmbedded = "embedded defaults"
	SourceBuiltin  = "built-in defaults"
)

// Loaded is the outcome of the config file search.
type Loaded struct {
	Config MinesConfig
	Source string // file path, SourceEmbedded or SourceBuiltin

	// Skipped lists discovered files that exist but could not be used.
	Skipped []SkippedFile
}

// SkippedFile is a discovered config file passed over during the search.
type SkippedFile struct {
	Path string
	Err  error
}

// Load loads the minesweeper configuration.
// Search order: customPath -> ~/.minesweeper/config.yaml -> ./configs/minesweeper.yaml -> embedded default.
// The board is not validated here; callers apply overrides first and then
// call MinesConfig.Validate.
func Load(customPath string) (Loaded, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, candidates []string) (Loaded, error) {
	// An explicit path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	// Discovered files are best-effort: missing ones are ignored, broken
	// ones are recorded and skipped.
	var skipped []SkippedFile
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			var cfg MinesConfig
			if cfg, err = Parse(data); err == nil {
				return Loaded{Config: cfg, Source: path, Skipped: skipped}, nil
			}
		}
		skipped = append(skipped, SkippedFile{Path: path, Err: err})
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return Loaded{Config: cfg, Source: SourceEmbedded, Skipped: skipped}, nil
	}
	return Loaded{Config: Default(), Source: SourceBuiltin, Skipped: skipped}, nil
}

// Parse decodes YAML on top of the built-in defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (MinesConfig, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return MinesConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg MinesConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "minesweeper.yaml"))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper", "config.yaml")
}
