package manufacturing

import (
	"bytes"
	"fmt"
)

// Document is the machine-readable form of a View, served by the JSON API
// and the MCP tools.
type Document struct {
	TitleHTML   string `json:"titleHtml"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	CompanyName string `json:"companyName"`
	Year        int    `json:"year"`

	HeaderRef string `json:"headerRef"`
	Version   string `json:"version"`
	DocRef    string `json:"docRef"`

	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`

	Markers []Marker       `json:"markers"`
	Cards   []DocumentCard `json:"capabilities"`
}

// DocumentCard is one capability with its derived display values.
type DocumentCard struct {
	Capability

	Position     int      `json:"position"`
	Icon         string   `json:"icon,omitempty"`
	FeatureIcons []string `json:"featureIcons"`
	Version      string   `json:"version"`
	Footer       string   `json:"footer"`
}

// Document converts v. The title is rendered to its HTML string.
func (v View) Document() (Document, error) {
	d := Document{
		Subtitle:    v.Props.Subtitle,
		Description: v.Props.Description,
		CompanyName: v.Props.CompanyName,
		Year:        v.Year,
		HeaderRef:   v.HeaderRef,
		Version:     DocumentVersion,
		DocRef:      v.DocRef,
		ButtonText:  v.Props.ButtonText,
		ButtonLink:  v.Props.ButtonLink,
		Markers:     v.Markers,
		Cards:       make([]DocumentCard, 0, len(v.Cards)),
	}

	if v.Props.Title != nil {
		var buf bytes.Buffer
		if err := v.Props.Title.Render(&buf); err != nil {
			return Document{}, fmt.Errorf("failed to render title: %w", err)
		}
		d.TitleHTML = buf.String()
	}

	for _, c := range v.Cards {
		dc := DocumentCard{
			Capability:   c.Capability,
			Position:     c.Position,
			FeatureIcons: make([]string, 0, len(c.Items)),
			Version:      c.Version,
			Footer:       c.Footer(),
		}
		if c.HasIcon {
			dc.Icon = c.Icon.Name
		}
		for _, f := range c.Items {
			dc.FeatureIcons = append(dc.FeatureIcons, f.Icon.Name)
		}
		d.Cards = append(d.Cards, dc)
	}
	return d, nil
}
