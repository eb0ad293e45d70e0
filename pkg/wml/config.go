package wml

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for decoding and resolution
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
	// MaxDecodeDepth bounds the nesting depth of decoded elements
	MaxDecodeDepth int `yaml:"max_decode_depth"`
	// StrictStyles makes duplicate style ids and duplicate default markers
	// hard errors instead of warnings
	StrictStyles bool `yaml:"strict_styles"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		MaxDecodeDepth: 100,
		StrictStyles:   false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// WML_LOG_LEVEL
	if val := os.Getenv("WML_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// WML_MAX_DECODE_DEPTH
	if val := os.Getenv("WML_MAX_DECODE_DEPTH"); val != "" {
		if depth, err := strconv.Atoi(val); err == nil {
			config.MaxDecodeDepth = depth
		}
	}

	// WML_STRICT_STYLES
	if val := os.Getenv("WML_STRICT_STYLES"); val != "" {
		config.StrictStyles = parseConfigBool(val)
	}

	return config
}

// ConfigFromFile loads a configuration from a YAML file, applying defaults
// to unset fields.
func ConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultConfig().LogLevel
	}
	if config.MaxDecodeDepth == 0 {
		config.MaxDecodeDepth = DefaultConfig().MaxDecodeDepth
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxDecodeDepth <= 0 {
		return errors.New("max decode depth must be positive")
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseConfigBool parses a boolean value from a string
func parseConfigBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
