package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names a config file used when no --config flag is given.
const EnvConfigPath = "WINERROR_CONFIG"

// Config describes CLI behaviour.
type Config struct {
	Log    LogConfig    `yaml:"log" toml:"log"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// LogConfig selects the logger backend and verbosity.
type LogConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Format  string `yaml:"format" toml:"format"`
	Backend string `yaml:"backend" toml:"backend"`
	Caller  bool   `yaml:"caller" toml:"caller"`
}

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Color        string `yaml:"color" toml:"color"`
	Descriptions *bool  `yaml:"descriptions" toml:"descriptions"`
	Hex          bool   `yaml:"hex" toml:"hex"`
}

// ShowDescriptions reports whether listings include the message column.
func (o OutputConfig) ShowDescriptions() bool {
	return o.Descriptions == nil || *o.Descriptions
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:   "warn",
			Format:  "text",
			Backend: "colored",
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// LoadConfig reads a configuration file from disk. The decoder is chosen by
// extension: .toml uses TOML, anything else YAML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return decodeTOML(data)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if len(data) == 0 {
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}
	return &cfg, nil
}

func decodeTOML(data []byte) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse TOML configuration")
	}
	return &cfg, nil
}

// Resolve loads path, falling back to $WINERROR_CONFIG, and merges the result
// over Default. An empty path with no environment override yields defaults.
func Resolve(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return MergeConfigs(Default(), loaded)
}

// MergeConfigs merges configurations, later non-empty values overriding earlier ones.
func MergeConfigs(cfgs ...*Config) (*Config, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("no configurations provided")
	}

	result := *Default()
	for _, cfg := range cfgs {
		if cfg == nil {
			continue
		}
		if v := strings.TrimSpace(cfg.Log.Level); v != "" {
			result.Log.Level = v
		}
		if v := strings.TrimSpace(cfg.Log.Format); v != "" {
			result.Log.Format = v
		}
		if v := strings.TrimSpace(cfg.Log.Backend); v != "" {
			result.Log.Backend = v
		}
		if cfg.Log.Caller {
			result.Log.Caller = true
		}
		if v := strings.TrimSpace(cfg.Output.Color); v != "" {
			result.Output.Color = v
		}
		if cfg.Output.Descriptions != nil {
			show := *cfg.Output.Descriptions
			result.Output.Descriptions = &show
		}
		if cfg.Output.Hex {
			result.Output.Hex = true
		}
	}

	return &result, result.Validate()
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "json-pretty":
	default:
		return errors.Errorf("log.format must be text, json or json-pretty, got %q", c.Log.Format)
	}
	switch strings.ToLower(c.Output.Color) {
	case "auto", "always", "never":
	default:
		return errors.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	return nil
}
