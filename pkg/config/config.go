package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/facesbridge/pkg/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BRIDGE_"

// Config holds the bridge settings.
type Config struct {
	ViewIDRenderParam   string              `yaml:"view_id_render_param" env:"VIEW_ID_RENDER_PARAM"`
	ViewIDResourceParam string              `yaml:"view_id_resource_param" env:"VIEW_ID_RESOURCE_PARAM"`
	ViewStateParam      string              `yaml:"view_state_param" env:"VIEW_STATE_PARAM"`
	LogLevel            string              `yaml:"log_level" env:"LOG_LEVEL"`
	ServletMappings     []string            `yaml:"servlet_mappings" env:"SERVLET_MAPPINGS"`
	DefaultSuffixes     []string            `yaml:"default_suffixes" env:"DEFAULT_SUFFIXES"`
	Sentry              logger.SentryConfig `yaml:"sentry"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ViewIDRenderParam:   "_facesViewIdRender",
		ViewIDResourceParam: "_facesViewIdResource",
		ViewStateParam:      "javax.faces.ViewState",
		LogLevel:            "info",
		ServletMappings:     []string{"*.faces", "*.jsf", "/faces/*"},
		DefaultSuffixes:     []string{".xhtml", ".jsp"},
	}
}

// Load builds a Config from the defaults, the YAML file at path and the
// environment. An empty path skips the file. A nil environ reads the
// process environment.
func Load(path string, environ map[string]string) (Config, error) {
	var data []byte
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Config{}, errors.Join(ErrReadConfig, err)
		}
	}
	return build(data, environ)
}

// LoadFS is Load for a file inside fsys.
func LoadFS(fsys fs.FS, name string, environ map[string]string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, errors.Join(ErrReadConfig, err)
	}
	return build(data, environ)
}

func build(data []byte, environ map[string]string) (Config, error) {
	cfg := Default()
	if err := Decode(data, &cfg); err != nil {
		return Config{}, err
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Join(ErrReadConfig, err)
	}
	return nil
}

// Validate checks that every parameter name is set, that the log level is
// known and that servlet mappings are well formed.
func (c Config) Validate() error {
	var errs []error

	for _, f := range []struct{ name, value string }{
		{"view_id_render_param", c.ViewIDRenderParam},
		{"view_id_resource_param", c.ViewIDResourceParam},
		{"view_state_param", c.ViewStateParam},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", f.name))
		}
	}

	if c.ViewIDRenderParam != "" && c.ViewIDRenderParam == c.ViewIDResourceParam {
		errs = append(errs, errors.New("render and resource view-id parameters must differ"))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log level %q", c.LogLevel))
	}

	for _, m := range c.ServletMappings {
		if !validMapping(m) {
			errs = append(errs, fmt.Errorf("servlet mapping %q", m))
		}
	}

	for _, s := range c.DefaultSuffixes {
		if !strings.HasPrefix(s, ".") || len(s) < 2 {
			errs = append(errs, fmt.Errorf("default suffix %q must start with a dot", s))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

func validMapping(m string) bool {
	switch {
	case strings.HasPrefix(m, "*."):
		return len(m) > 2 && !strings.Contains(m[2:], "/")
	case strings.HasPrefix(m, "/") && strings.HasSuffix(m, "/*"):
		return true
	}
	return false
}

// ViewIDRenderParameterName returns the render view-id parameter name.
func (c Config) ViewIDRenderParameterName() string {
	return c.ViewIDRenderParam
}

// ViewIDResourceParameterName returns the resource view-id parameter name.
func (c Config) ViewIDResourceParameterName() string {
	return c.ViewIDResourceParam
}

// Level returns the configured log level, or info when it is invalid.
func (c Config) Level() slog.Level {
	return logger.ParseLevel(c.LogLevel)
}
