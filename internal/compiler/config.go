package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up next to the checked file by the driver
const ConfigFileName = "toyc.yml"

// Config is the on-disk form of the driver settings. Command-line flags
// override whatever it sets.
type Config struct {
	Format     string `yaml:"format"` // "ansi" or "html"
	CollectAll bool   `yaml:"collect_all"`
	Parallel   int    `yaml:"parallel"`
	Debug      bool   `yaml:"debug"`
	DumpTokens bool   `yaml:"dump_tokens"`
	DumpAST    bool   `yaml:"dump_ast"`
	Color      bool   `yaml:"color"`
}

// ConfigError aggregates config validation failures.
type ConfigError struct {
	Path   string
	Issues []string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func DefaultConfig() *Config {
	return &Config{Format: "ansi", Parallel: 1, Color: true}
}

// LoadConfig reads a YAML config. Keys it leaves out keep their defaults and
// unknown keys are rejected. An empty file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decodeConfig(path, file)
}

func decodeConfig(path string, r io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := config.validate(path); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate(path string) error {
	errs := ConfigError{Path: path}
	if _, ok := ParseFormat(c.Format); !ok {
		errs.Issues = append(errs.Issues, fmt.Sprintf("format must be \"ansi\" or \"html\", got %q", c.Format))
	}
	if c.Parallel < 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("parallel must be at least 1, got %d", c.Parallel))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Options turns the config into compile options for the given files
func (c *Config) Options(files ...string) *Options {
	format, _ := ParseFormat(c.Format)
	return &Options{
		Files:      files,
		Debug:      c.Debug,
		DumpTokens: c.DumpTokens,
		LogFormat:  format,
		NoColor:    !c.Color,
		CollectAll: c.CollectAll,
		Parallel:   c.Parallel,
	}
}
