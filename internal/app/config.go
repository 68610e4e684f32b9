package app

import (
	"capsection/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath is an explicit configuration file. Empty means the
	// layered user/project lookup.
	ConfigPath string

	// ConfigMap is a "namespace/name" reference to a Kubernetes ConfigMap
	// holding the configuration. It takes precedence over ConfigPath.
	ConfigMap string

	// KubeContext selects the kubeconfig context used for ConfigMap.
	KubeContext string

	// Debug settings
	Debug bool
}

// NewConfig creates a new application configuration
func NewConfig(configPath, configMap string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		ConfigMap:  configMap,
		Debug:      debug,
	}
}

// LogLevel is the level implied by the debug flag.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
