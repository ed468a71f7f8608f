package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	RouterPlain    = "plain"
	RouterBasePath = "basePath"
)

// Config holds all configuration details
type Config struct {
	Host          string    `yaml:"host" validate:"required"`
	Port          int       `yaml:"port" validate:"min=1,max=65535"`
	BasePath      string    `yaml:"basePath" validate:"omitempty,startswith=/"`
	RouterVariant string    `yaml:"routerVariant" validate:"oneof=plain basePath"`
	API           APIConfig `yaml:"api"`
}

// APIConfig defines where posts and users are fetched from
type APIConfig struct {
	BaseURL string   `yaml:"baseURL" validate:"required,url"`
	Timeout Duration `yaml:"timeout"`
}

// Duration is a time.Duration read from strings such as "5s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Host:          "0.0.0.0",
		Port:          8080,
		BasePath:      "/vue-filter-table",
		RouterVariant: RouterBasePath,
		API: APIConfig{
			BaseURL: "https://jsonplaceholder.typicode.com/",
		},
	}
}

// LoadConfig loads and parses the configuration from a given file path.
// The file is rendered as a template over the environment before parsing, so
// values such as {{ .API_BASE_URL }} are substituted. Fields missing from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is required")
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file template: %w", err)
	}

	// Execute the template with environment variables
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, loadEnvVars()); err != nil {
		return nil, fmt.Errorf("error executing config file template: %w", err)
	}

	return Parse(buf.Bytes())
}

// Parse unmarshals YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return convertValidatorErrors(validate.Struct(c))
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
