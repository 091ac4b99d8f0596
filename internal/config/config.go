// Package config is the host configuration surface of spec §6.5, built
// on spf13/viper the way kagent's cli/internal/config package reads its
// own flat record: Get() unmarshals whatever viper currently holds, and
// Init() wires cobra persistent flags to the same keys via pflag/viper
// binding so flag, env, and config-file values all converge on one
// struct.
package config

import (
	"time"

	"dario.cat/mergo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the single flat record of spec §6.5, plus the CLI-only
// fields a host needs that the core spec leaves to the shell
// (output formatting, verbosity, and where the credential lives).
type Config struct {
	DefaultSpace    string        `mapstructure:"default_space"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	CaseInsensitive bool          `mapstructure:"case_insensitive"`
	APIEndpoint     string        `mapstructure:"api_endpoint"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`

	OutputFormat   string `mapstructure:"output_format"`
	Verbose        bool   `mapstructure:"verbose"`
	CredentialPath string `mapstructure:"credential_path"`
}

// Defaults returns the spec §6.5 default values, applied by Init before
// any flag/env/file override and by WithDefaults as a post-unmarshal
// backfill for fields left at their zero value.
func Defaults() Config {
	return Config{
		CacheTTL:        300 * time.Second,
		CaseInsensitive: true,
		APIEndpoint:     "http://localhost:31009",
		RequestTimeout:  30 * time.Second,
		OutputFormat:    "table",
	}
}

// Get unmarshals the current viper state into a Config. It does not
// apply Defaults(); a caller that wants the documented defaults merged
// in for keys nothing set should call WithDefaults.
func Get() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithDefaults merges Defaults() into cfg for every zero-valued field,
// using dario.cat/mergo the way the rest of this toolkit's host layer
// prefers a library merge over hand-written field-by-field fallbacks.
func WithDefaults(cfg *Config) (*Config, error) {
	merged := Defaults()
	if err := mergo.Merge(&merged, cfg, mergo.WithOverride); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Init registers the persistent flags backing every spec §6.5 option on
// root, binds them into viper, and sets viper's defaults so Get()
// returns a fully populated Config even with no flags, env vars, or
// config file present.
func Init(root *cobra.Command) error {
	flags := root.PersistentFlags()
	flags.String("default-space", "", "default space name used when no --space flag or pipeline context is given")
	flags.Duration("cache-ttl", 300*time.Second, "resolver cache entry TTL")
	flags.Bool("case-insensitive", true, "fold Unicode case on cached names")
	flags.String("api-endpoint", "http://localhost:31009", "base URL of the Anytype service")
	flags.Duration("request-timeout", 30*time.Second, "per-request HTTP timeout")
	flags.String("output-format", "table", "CLI record rendering format (table, json)")
	flags.BoolP("verbose", "v", false, "enable debug-level logging")
	flags.String("credential-path", "", "override the default credential store path")

	binds := map[string]string{
		"default_space":    "default-space",
		"cache_ttl":        "cache-ttl",
		"case_insensitive": "case-insensitive",
		"api_endpoint":     "api-endpoint",
		"request_timeout":  "request-timeout",
		"output_format":    "output-format",
		"verbose":          "verbose",
		"credential_path":  "credential-path",
	}
	for viperKey, flagName := range binds {
		if err := viper.BindPFlag(viperKey, flags.Lookup(flagName)); err != nil {
			return err
		}
	}

	viper.SetEnvPrefix("anytype")
	viper.AutomaticEnv()

	d := Defaults()
	viper.SetDefault("default_space", d.DefaultSpace)
	viper.SetDefault("cache_ttl", d.CacheTTL)
	viper.SetDefault("case_insensitive", d.CaseInsensitive)
	viper.SetDefault("api_endpoint", d.APIEndpoint)
	viper.SetDefault("request_timeout", d.RequestTimeout)
	viper.SetDefault("output_format", d.OutputFormat)
	viper.SetDefault("credential_path", d.CredentialPath)
	return nil
}
