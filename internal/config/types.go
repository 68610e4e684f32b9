package config

import (
	"capsection/internal/manufacturing"
)

// CapsectionConfig is the top-level configuration structure for capsection.
type CapsectionConfig struct {
	Section SectionConfig `yaml:"section"`
	Server  ServerConfig  `yaml:"server"`
	Page    PageConfig    `yaml:"page"`
	Update  UpdateConfig  `yaml:"update"`
}

// SectionConfig mirrors manufacturing.Props in a file-friendly shape.
type SectionConfig struct {
	Title       TitleConfig `yaml:"title,omitempty"`
	Subtitle    string      `yaml:"subtitle,omitempty"`
	Description string      `yaml:"description,omitempty"`

	// Capabilities is nil when the key is absent. An explicit empty list
	// (capabilities: []) renders an empty grid.
	Capabilities []manufacturing.Capability `yaml:"capabilities,omitempty"`

	ButtonText  string `yaml:"buttonText,omitempty"`
	ButtonLink  string `yaml:"buttonLink,omitempty"`
	CompanyName string `yaml:"companyName,omitempty"`
	ClassName   string `yaml:"className,omitempty"`
}

// TitleConfig describes the two-tone heading: plain text followed by an
// accented word.
type TitleConfig struct {
	Text   string `yaml:"text,omitempty"`
	Accent string `yaml:"accent,omitempty"`
}

// IsZero reports whether no title was configured.
func (t TitleConfig) IsZero() bool {
	return t.Text == "" && t.Accent == ""
}

// ServerConfig configures `capsection serve`.
type ServerConfig struct {
	Host  string `yaml:"host,omitempty"`
	Port  int    `yaml:"port,omitempty"`
	Watch bool   `yaml:"watch,omitempty"`
	// LogFormat is "text" (default) or "json".
	LogFormat string `yaml:"logFormat,omitempty"`
}

// PageConfig configures the document wrapped around the section.
type PageConfig struct {
	Title   string   `yaml:"title,omitempty"`
	Lang    string   `yaml:"lang,omitempty"`
	Scripts []string `yaml:"scripts,omitempty"`
}

// UpdateConfig configures `capsection self-update`.
type UpdateConfig struct {
	// Repository is the GitHub slug releases are fetched from.
	Repository string `yaml:"repository,omitempty"`
}

// Props converts the section configuration into renderer props. Omitted
// fields stay zero so the renderer applies its own defaults.
func (s SectionConfig) Props() manufacturing.Props {
	p := manufacturing.Props{
		Subtitle:     s.Subtitle,
		Description:  s.Description,
		Capabilities: s.Capabilities,
		ButtonText:   s.ButtonText,
		ButtonLink:   s.ButtonLink,
		CompanyName:  s.CompanyName,
		ClassName:    s.ClassName,
	}
	if !s.Title.IsZero() {
		p.Title = manufacturing.TitleNode(s.Title.Text, s.Title.Accent)
	}
	return p
}

// PageOptions converts the page configuration into renderer options.
func (p PageConfig) PageOptions() manufacturing.PageOptions {
	return manufacturing.PageOptions{
		Title:   p.Title,
		Lang:    p.Lang,
		Scripts: p.Scripts,
	}
}
