// Package config loads strfmt command settings from defaults, a TOML file
// and STRFMT_ environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrUnknownTemplate is returned by [Config.Template] for names that are
// not configured.
var ErrUnknownTemplate = errors.New("unknown template")

// EnvPrefix is the prefix of environment variables read by [Load].
const EnvPrefix = "STRFMT_"

// RelPath is the config file location relative to the XDG config dirs.
const RelPath = "strfmt/config.toml"

// Config holds the command settings.
type Config struct {
	// Input is the default row format for the rows command.
	Input string `koanf:"input"`

	// Raw disables YAML decoding of command-line arguments.
	Raw bool `koanf:"raw"`

	// Verbose is added to the -v count.
	Verbose int `koanf:"verbose"`

	// Templates maps names to templates for the run command.
	Templates map[string]string `koanf:"templates"`

	// Path is the config file that was loaded, if any.
	Path string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"input":   "jsonl",
		"raw":     false,
		"verbose": 0,
	}
}

// Load builds the configuration. When path is empty the file is looked up
// under the XDG config directories; a missing file there is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	cfg := Config{Path: path}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// envKey maps STRFMT_TEMPLATES__GREETING to templates.greeting. A double
// underscore separates levels so single underscores survive in names.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfig() string {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Template returns the named template.
func (c *Config) Template(name string) (string, error) {
	tmpl, ok := c.Templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return tmpl, nil
}

// TemplateNames returns the configured template names in sorted order.
func (c *Config) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
