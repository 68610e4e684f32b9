package config

import (
	"capsection/internal/manufacturing"
)

const (
	DefaultServerHost = "localhost"
	DefaultServerPort = 8080
	DefaultRepository = "cqs-web/capsection"
)

// GetDefaultConfig returns the built-in configuration. The section itself is
// filled with the renderer defaults so `config show` prints the effective
// content.
func GetDefaultConfig() CapsectionConfig {
	return CapsectionConfig{
		Section: SectionConfig{
			Title: TitleConfig{
				Text:   manufacturing.DefaultTitleText,
				Accent: manufacturing.DefaultTitleAccent,
			},
			Subtitle:     manufacturing.DefaultSubtitle,
			Description:  manufacturing.DefaultDescription,
			Capabilities: manufacturing.DefaultCapabilities(),
			ButtonText:   manufacturing.DefaultButtonText,
			ButtonLink:   manufacturing.DefaultButtonLink,
			CompanyName:  manufacturing.DefaultCompanyName,
		},
		Server: ServerConfig{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			LogFormat: "text",
		},
		Update: UpdateConfig{
			Repository: DefaultRepository,
		},
	}
}
