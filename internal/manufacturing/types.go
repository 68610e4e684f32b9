package manufacturing

import (
	g "maragu.dev/gomponents"
)

// Capability is one manufacturing process offering, rendered as a card.
type Capability struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Image    string   `yaml:"image" json:"image"`
	Features []string `yaml:"features" json:"features"`

	// Optional technical specifications. Empty values omit their badge.
	Precision string `yaml:"precision,omitempty" json:"precision,omitempty"`
	Capacity  string `yaml:"capacity,omitempty" json:"capacity,omitempty"`
}

// Props configures the section. Every field is optional; zero values are
// replaced by the defaults in DefaultProps.
//
// Capabilities distinguishes nil (omitted, defaults apply) from a non-nil
// empty slice (an explicitly empty grid).
type Props struct {
	// Title allows rich content, not just plain text.
	Title        g.Node
	Subtitle     string
	Description  string
	Capabilities []Capability
	ButtonText   string
	ButtonLink   string
	CompanyName  string

	// ClassName is appended to the section's class list.
	ClassName string
}
