// Package app bootstraps capsection: logging, configuration loading and the
// long-running serve mode.
package app

import (
	"context"
	"fmt"
	"os"

	"capsection/internal/config"
	"capsection/pkg/logging"

	"k8s.io/client-go/kubernetes"
)

// For mocking in tests
var newKubeClient = func(kubeContext string) (kubernetes.Interface, error) {
	return config.NewClientset(kubeContext)
}

// Application is the main application structure that bootstraps capsection.
type Application struct {
	config     *Config
	capsection config.CapsectionConfig
}

// NewApplication initialises logging and loads the configuration.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	capsectionCfg, err := loadConfiguration(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Application{
		config:     cfg,
		capsection: capsectionCfg,
	}, nil
}

func loadConfiguration(ctx context.Context, cfg *Config) (config.CapsectionConfig, error) {
	switch {
	case cfg.ConfigMap != "":
		namespace, name, err := config.ParseConfigMapRef(cfg.ConfigMap)
		if err != nil {
			return config.CapsectionConfig{}, err
		}
		client, err := newKubeClient(cfg.KubeContext)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to create Kubernetes client")
			return config.CapsectionConfig{}, fmt.Errorf("failed to create Kubernetes client: %w", err)
		}
		loaded, err := config.LoadFromConfigMap(ctx, client, namespace, name, "")
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from ConfigMap %s", cfg.ConfigMap)
			return config.CapsectionConfig{}, err
		}
		logging.Info("Bootstrap", "Loaded configuration from ConfigMap %s/%s", namespace, name)
		return loaded, nil

	case cfg.ConfigPath != "":
		loaded, err := config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return config.CapsectionConfig{}, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
		return loaded, nil

	default:
		loaded, err := config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return config.CapsectionConfig{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
		return loaded, nil
	}
}

// Config returns the loaded configuration. Application satisfies the
// server and MCP configuration sources.
func (a *Application) Config() config.CapsectionConfig {
	return a.capsection
}

// Settings returns the bootstrap settings the application was created with.
func (a *Application) Settings() *Config {
	return a.config
}
