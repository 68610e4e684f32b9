package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"capsection/internal/manufacturing"
	"capsection/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/capsection"
	projectConfigDir = ".capsection"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (CapsectionConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return CapsectionConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
			logging.Debug("Config", "Applied user config %s", userConfigPath)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return CapsectionConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
			logging.Debug("Config", "Applied project config %s", projectConfigPath)
		}
	}

	return config, validate(config)
}

// LoadConfigFromPath layers a single explicit file over the defaults,
// skipping the user and project lookups.
func LoadConfigFromPath(path string) (CapsectionConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return CapsectionConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	return config, validate(config)
}

// Parse layers raw YAML over the defaults. source names the data in errors.
func Parse(source string, data []byte) (CapsectionConfig, error) {
	overlay, err := decode(data)
	if err != nil {
		return CapsectionConfig{}, fmt.Errorf("error parsing config from %s: %w", source, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	return config, validate(config)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a CapsectionConfig from a YAML file.
func loadConfigFromFile(filePath string) (CapsectionConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CapsectionConfig{}, err
	}
	return decode(data)
}

// decode parses data and expands environment references inside scalar
// values only, so a variable's content can never change the document shape.
func decode(data []byte) (CapsectionConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return CapsectionConfig{}, err
	}
	expandNode(&root)

	var config CapsectionConfig
	if root.Kind == 0 {
		return config, nil
	}
	if err := root.Decode(&config); err != nil {
		return CapsectionConfig{}, err
	}
	return config, nil
}

func expandNode(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		v := expandEnv(n.Value)
		// A plain ${PORT} was tagged !!str; let the expanded text resolve again.
		if v != n.Value && n.Style == 0 && n.Tag == "!!str" {
			n.Tag = ""
		}
		n.Value = v
		return
	}
	for _, c := range n.Content {
		expandNode(c)
	}
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// expandEnv replaces ${VAR} and ${VAR:-default} references. A bare $ is
// left alone so prices and similar copy survive.
func expandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(ref string) string {
		m := envPattern.FindStringSubmatch(ref)
		if v, ok := os.LookupEnv(m[1]); ok && v != "" {
			return v
		}
		return m[2]
	})
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay CapsectionConfig) CapsectionConfig {
	merged := base

	s, o := &merged.Section, overlay.Section
	if !o.Title.IsZero() {
		s.Title = o.Title
	}
	mergeString(&s.Subtitle, o.Subtitle)
	mergeString(&s.Description, o.Description)
	mergeString(&s.ButtonText, o.ButtonText)
	mergeString(&s.ButtonLink, o.ButtonLink)
	mergeString(&s.CompanyName, o.CompanyName)
	mergeString(&s.ClassName, o.ClassName)
	// The capability list is replaced wholesale, never merged by id.
	if o.Capabilities != nil {
		s.Capabilities = o.Capabilities
	}

	mergeString(&merged.Server.Host, overlay.Server.Host)
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}
	if overlay.Server.Watch {
		merged.Server.Watch = true
	}
	mergeString(&merged.Server.LogFormat, overlay.Server.LogFormat)

	mergeString(&merged.Page.Title, overlay.Page.Title)
	mergeString(&merged.Page.Lang, overlay.Page.Lang)
	if overlay.Page.Scripts != nil {
		merged.Page.Scripts = overlay.Page.Scripts
	}

	mergeString(&merged.Update.Repository, overlay.Update.Repository)

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// validate rejects settings that cannot work and warns about suspicious
// content. Content problems never fail a load.
func validate(config CapsectionConfig) error {
	if p := config.Server.Port; p < 0 || p > 65535 {
		return fmt.Errorf("server.port %d is out of range", p)
	}
	switch strings.ToLower(config.Server.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("server.logFormat %q must be \"text\" or \"json\"", config.Server.LogFormat)
	}
	for _, id := range manufacturing.DuplicateIDs(config.Section.Capabilities) {
		logging.Warn("Config", "Capability id %q is used more than once", id)
	}
	return nil
}

// GetUserConfigPath returns the location of the user configuration file.
func GetUserConfigPath() (string, error) {
	return getUserConfigPath()
}
