// Package config loads client configuration from YAML files and
// environment variables.
//
// Usage:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("openai.yaml").
//	    Load()
//
// Precedence: defaults, then the YAML file, then environment
// variables. With the default "OPENAI" prefix the recognized
// variables are OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_ORGANIZATION,
// and OPENAI_TIMEOUT.
package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jy130131/go-openai"
)

// File is the on-disk configuration shape.
type File struct {
	// APIKey authenticates every request.
	APIKey string `yaml:"api_key" env:"API_KEY"`
	// BaseURL overrides the default API endpoint.
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
	// Organization is sent as the OpenAI-Organization header.
	Organization string `yaml:"organization" env:"ORGANIZATION"`
	// Timeout bounds each request, "30s" style.
	Timeout Duration `yaml:"timeout" env:"TIMEOUT"`
	// Headers are extra headers attached to every request.
	Headers map[string]string `yaml:"headers" env:"-"`
}

// Validate reports whether the file describes a usable client.
func (f *File) Validate() error {
	var errs []string

	if f.APIKey == "" {
		errs = append(errs, "api_key is required")
	}
	if f.Timeout < 0 {
		errs = append(errs, "timeout must not be negative")
	}
	if f.BaseURL != "" {
		if _, err := url.Parse(f.BaseURL); err != nil {
			errs = append(errs, fmt.Sprintf("base_url is not a valid URL: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Duration is a time.Duration that unmarshals from YAML scalars like
// "30s" or "1m30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Loader assembles configuration with the builder pattern.
type Loader struct {
	configPath string
	envPrefix  string
	validators []func(*File) error
}

// NewLoader creates a loader with the "OPENAI" environment prefix.
func NewLoader() *Loader {
	return &Loader{
		envPrefix:  "OPENAI",
		validators: make([]func(*File) error, 0),
	}
}

// WithConfigPath sets the YAML file to read. A missing file is not an
// error; the loader falls through to defaults and environment.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix replaces the default "OPENAI" environment prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithValidator adds a validation step run after loading.
func (l *Loader) WithValidator(v func(*File) error) *Loader {
	l.validators = append(l.validators, v)
	return l
}

// Load resolves the file and returns the resulting client config.
func (l *Loader) Load() (openai.Config, error) {
	f, err := l.LoadFile()
	if err != nil {
		return openai.Config{}, err
	}

	cfg := openai.NewConfig(f.APIKey)
	if f.BaseURL != "" {
		u, err := url.Parse(f.BaseURL)
		if err != nil {
			return openai.Config{}, fmt.Errorf("parse base_url: %w", err)
		}
		cfg = cfg.WithBaseURL(u)
	}
	if f.Organization != "" {
		cfg = cfg.WithOrganization(f.Organization)
	}
	if f.Timeout > 0 {
		cfg = cfg.WithTimeout(time.Duration(f.Timeout))
	}
	for name, value := range f.Headers {
		cfg = cfg.WithHeader(name, value)
	}

	return cfg, nil
}

// LoadFile resolves the on-disk shape without building a client
// config, for callers that want the raw values.
func (l *Loader) LoadFile() (*File, error) {
	f := &File{}

	if l.configPath != "" {
		if err := l.loadFromFile(f); err != nil {
			return nil, fmt.Errorf("load config from file: %w", err)
		}
	}

	if err := l.loadFromEnv(f); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	for _, v := range l.validators {
		if err := v(f); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}

	return f, nil
}

func (l *Loader) loadFromFile(f *File) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

func (l *Loader) loadFromEnv(f *File) error {
	return l.setFieldsFromEnv(reflect.ValueOf(f).Elem(), l.envPrefix)
}

func (l *Loader) setFieldsFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		envTag := fieldType.Tag.Get("env")
		if envTag == "" || envTag == "-" {
			continue
		}

		envKey := prefix + "_" + envTag

		if field.Kind() == reflect.Struct {
			if err := l.setFieldsFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("set %s: %w", envKey, err)
		}
	}

	return nil
}

var durationKinds = map[reflect.Type]bool{
	reflect.TypeOf(time.Duration(0)): true,
	reflect.TypeOf(Duration(0)):      true,
}

func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if durationKinds[field.Type()] {
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			field.SetInt(i)
		}

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			field.Set(reflect.ValueOf(parts))
		}
	}

	return nil
}

// MustLoad loads the given file and panics on failure.
func MustLoad(path string) openai.Config {
	cfg, err := NewLoader().WithConfigPath(path).Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// LoadFromEnv builds a client config from environment variables only.
func LoadFromEnv() (openai.Config, error) {
	return NewLoader().Load()
}
