// Package config loads the settings for the command-line test runner.
//
// Values come from, in increasing order of precedence: built-in defaults, an optional config file
// (any format viper understands, such as YAML), environment variables with the HTTPTEST_ prefix,
// and explicit overrides such as command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "HTTPTEST"

const (
	KeyURL            = "url"
	KeyBasePath       = "base_path"
	KeyServe          = "serve"
	KeyServePort      = "serve_port"
	KeyDummy          = "dummy"
	KeyStatusPath     = "status_path"
	KeyStartupTimeout = "startup_timeout"
	KeyRun            = "run"
	KeySkip           = "skip"
	KeyDebug          = "debug"
	KeyDebugAll       = "debug_all"
	KeyNoColor        = "no_color"
)

type Config struct {
	// URL is the base URL of a live service to test. Ignored if Serve or Dummy is set.
	URL string `mapstructure:"url"`
	// BasePath is prefixed to every request path, for an API mounted under a path such as "/api".
	BasePath string `mapstructure:"base_path"`
	// Serve runs the embedded mock API on ServePort and tests against that.
	Serve     bool `mapstructure:"serve"`
	ServePort int  `mapstructure:"serve_port"`
	// Dummy tests against the canned responses of the dummy transport.
	Dummy bool `mapstructure:"dummy"`
	// StatusPath is polled until the service responds, before any tests run. Empty disables it.
	StatusPath     string        `mapstructure:"status_path"`
	StartupTimeout time.Duration `mapstructure:"startup_timeout"`
	Run            []string      `mapstructure:"run"`
	Skip           []string      `mapstructure:"skip"`
	Debug          bool          `mapstructure:"debug"`
	DebugAll       bool          `mapstructure:"debug_all"`
	NoColor        bool          `mapstructure:"no_color"`
}

// Defaults returns the configuration used when nothing else is specified.
func Defaults() Config {
	return Config{
		ServePort:      8111,
		StartupTimeout: 10 * time.Second,
		Run:            []string{},
		Skip:           []string{},
	}
}

// Load builds the configuration. configFile may be empty. Each key in overrides, which may be
// nil, takes precedence over every other source.
func Load(configFile string, overrides map[string]interface{}) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyURL, d.URL)
	v.SetDefault(KeyBasePath, d.BasePath)
	v.SetDefault(KeyServe, d.Serve)
	v.SetDefault(KeyServePort, d.ServePort)
	v.SetDefault(KeyDummy, d.Dummy)
	v.SetDefault(KeyStatusPath, d.StatusPath)
	v.SetDefault(KeyStartupTimeout, d.StartupTimeout)
	v.SetDefault(KeyRun, d.Run)
	v.SetDefault(KeySkip, d.Skip)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyDebugAll, d.DebugAll)
	v.SetDefault(KeyNoColor, d.NoColor)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, value := range overrides {
		v.Set(k, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the settings are consistent.
func (c Config) Validate() error {
	targets := 0
	if c.URL != "" {
		targets++
	}
	if c.Serve {
		targets++
	}
	if c.Dummy {
		targets++
	}
	switch {
	case targets == 0:
		return fmt.Errorf("one of %s, %s, or %s must be set", KeyURL, KeyServe, KeyDummy)
	case targets > 1:
		return fmt.Errorf("only one of %s, %s, or %s can be set", KeyURL, KeyServe, KeyDummy)
	}
	if c.Serve && (c.ServePort < 0 || c.ServePort > 65535) {
		return fmt.Errorf("invalid %s: %d", KeyServePort, c.ServePort)
	}
	return nil
}
