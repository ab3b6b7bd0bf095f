// Package config loads settings for the mico command.
//
// Settings are layered: built-in defaults, then the user's config file
// (itself a mico document), then MICO_* environment variables. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-mico/parsers/kmico"
	"github.com/adrg/xdg"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment variables read by Load.
	EnvPrefix = "MICO_"

	dirName  = "mico"
	fileName = "config.mico"
)

// Formats lists the output formats accepted by convert.format.
var Formats = []string{"json", "yaml", "toml"}

// Config holds the settings of the mico command.
type Config struct {
	// Indent is the number of spaces before list items when emitting.
	Indent int
	// ConvertFormat is the default target format of the convert command.
	ConvertFormat string
	// Path is the config file that was read, empty if none was found.
	Path string
}

// DefaultPath returns $XDG_CONFIG_HOME/mico/config.mico.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, dirName, fileName)
}

// Load reads the configuration. When path is empty DefaultPath is used. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	k := koanf.New(".")

	defaults := map[string]interface{}{
		"indent":         "0",
		"convert.format": "json",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	var loaded string
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kmico.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		loaded = path
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	indent, err := strconv.Atoi(k.String("indent"))
	if err != nil {
		return nil, fmt.Errorf("invalid indent %q: %w", k.String("indent"), err)
	}
	if indent < 0 {
		return nil, fmt.Errorf("invalid indent %d: must not be negative", indent)
	}

	format := strings.ToLower(k.String("convert.format"))
	if !ValidFormat(format) {
		return nil, fmt.Errorf("invalid convert.format %q: want one of %s", format, strings.Join(Formats, ", "))
	}

	return &Config{Indent: indent, ConvertFormat: format, Path: loaded}, nil
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}
