package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
)

// DefaultFileName is the config file looked up in the repository root when no
// --config flag is given.
const DefaultFileName = ".doclinkcheck.yaml"

// Environment variable overrides, applied after the config file.
const (
	EnvDocsDir     = "DOCLINKCHECK_DOCS_DIR"
	EnvFormat      = "DOCLINKCHECK_FORMAT"
	EnvMetricsFile = "DOCLINKCHECK_METRICS_FILE"
)

// Report formats understood by the check command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Defaults applied when neither file nor environment set a value.
const (
	DefaultDocsDir = "docs"
	DefaultFormat  = FormatText
)

// Config represents the link checker configuration.
type Config struct {
	// DocsDir is the documentation root. Relative values are resolved against
	// the repository root.
	DocsDir string `yaml:"docs_dir"`
	// Format selects the report renderer (text, json, html).
	Format string `yaml:"format"`
	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from configPath. An empty path skips the file and
// yields defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	if loaded, err := loadEnvFile(); err == nil {
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", loaded)
	}

	cfg := &Config{}
	if configPath != "" {
		if err := readFile(configPath, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(configPath string, cfg *Config) error {
	// #nosec G304 -- config path is supplied by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return foundationerrors.ConfigError("configuration file not found").
				WithCause(err).
				WithContext("path", configPath).
				Build()
		}
		return foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// loadEnvFile loads the first of .env/.env.local found in the working
// directory. Variables already present in the process environment win.
func loadEnvFile() (string, error) {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			return envPath, nil
		}
	}
	return "", fmt.Errorf("no .env file found")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDocsDir); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.MetricsFile = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
}

// Validate checks a loaded configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return foundationerrors.ConfigError("configuration is nil").Build()
	}
	if !slices.Contains([]string{FormatText, FormatJSON, FormatHTML}, cfg.Format) {
		return foundationerrors.ConfigError("unsupported report format").
			WithContext("format", cfg.Format).
			Build()
	}
	return nil
}
