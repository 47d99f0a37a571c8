package ufmt

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option configures a Printer.
type Option func(*Printer)

// WithDecimalPoint sets the separator written by %f.
//
// Default: '.'
func WithDecimalPoint(c byte) Option {
	return func(p *Printer) { p.decimalPoint.Store(uint32(c)) }
}

// WithLocale takes the first byte of locale as the decimal point.
func WithLocale(locale string) Option {
	return func(p *Printer) { p.SetLocale(locale) }
}

// WithFloatSupport enables or disables %f and %F.
//
// Default: true
func WithFloatSupport(enabled bool) Option {
	return func(p *Printer) { p.floatOff.Store(!enabled) }
}

// WithMaxHandlers replaces the registry with an empty one of the given
// capacity. Zero or less means unbounded.
//
// Default: DefaultMaxHandlers
func WithMaxHandlers(n int) Option {
	return func(p *Printer) { p.registry = NewRegistry(n) }
}

// WithRegistry shares an existing registry between printers.
func WithRegistry(r *Registry) Option {
	return func(p *Printer) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithLogger sets the logger used for registry events.
//
// Default: a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithDefaultOutput sets the sink used by [Printer.Outputf].
func WithDefaultOutput(out Sink) Option {
	return func(p *Printer) { p.SetDefaultOutput(out) }
}

// Config is the file form of a printer configuration.
type Config struct {
	DecimalPoint string            `yaml:"decimal_point,omitempty" json:"decimal_point,omitempty"`
	FloatSupport *bool             `yaml:"float_support,omitempty" json:"float_support,omitempty"`
	MaxHandlers  *int              `yaml:"max_handlers,omitempty" json:"max_handlers,omitempty"`
	Templates    map[string]string `yaml:"templates,omitempty" json:"templates,omitempty"`
}

// LoadConfig reads a configuration file, choosing the decoder by extension.
// Supported extensions: .yaml, .yml, .json
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseConfig(data)
	case ".json":
		return ParseConfigJSON(data)
	default:
		return Config{}, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
}

// ParseConfig parses and validates YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parse yaml: %s", ErrInvalidConfig, err)
	}
	return c, c.Validate()
}

// ParseConfigJSON parses and validates JSON configuration.
func ParseConfigJSON(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parse json: %s", ErrInvalidConfig, err)
	}
	return c, c.Validate()
}

// Validate reports configuration values the printer cannot honour.
func (c Config) Validate() error {
	if len(c.DecimalPoint) > 1 {
		return fmt.Errorf("%w: decimal_point must be a single byte, got %q", ErrInvalidConfig, c.DecimalPoint)
	}
	if c.MaxHandlers != nil && *c.MaxHandlers < 0 {
		return fmt.Errorf("%w: max_handlers must not be negative, got %d", ErrInvalidConfig, *c.MaxHandlers)
	}
	return nil
}

// Options converts the configuration into printer options. Unset fields
// leave the defaults alone.
func (c Config) Options() []Option {
	var opts []Option
	if c.DecimalPoint != "" {
		opts = append(opts, WithDecimalPoint(c.DecimalPoint[0]))
	}
	if c.FloatSupport != nil {
		opts = append(opts, WithFloatSupport(*c.FloatSupport))
	}
	if c.MaxHandlers != nil {
		opts = append(opts, WithMaxHandlers(*c.MaxHandlers))
	}
	return opts
}

// TemplateSet returns the configured templates as a set.
func (c Config) TemplateSet() *TemplateSet {
	ts := NewTemplateSet()
	for name, tmpl := range c.Templates {
		ts.Load(name, tmpl)
	}
	return ts
}

// Encode writes the configuration as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
