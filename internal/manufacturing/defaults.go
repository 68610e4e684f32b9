package manufacturing

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	DefaultSubtitle    = "Technical Expertise"
	DefaultDescription = "Our vertically integrated manufacturing facility combines advanced technologies and processes to deliver complete solutions from concept to finished component."
	DefaultButtonText  = "View All Capabilities"
	DefaultButtonLink  = "#"
	DefaultCompanyName = "CQS"

	DefaultTitleText   = "Manufacturing"
	DefaultTitleAccent = "Capabilities"
)

// TitleNode builds the two-tone heading used by the default title: plain text
// followed by an accented span.
func TitleNode(text, accent string) g.Node {
	switch {
	case accent == "":
		return g.Text(text)
	case text == "":
		return h.Span(h.Class("text-primary-600"), g.Text(accent))
	}
	return g.Group{
		g.Text(text + " "),
		h.Span(h.Class("text-primary-600"), g.Text(accent)),
	}
}

// DefaultCapabilities returns a fresh copy of the built-in sample records.
func DefaultCapabilities() []Capability {
	return []Capability{
		{
			ID:    "CAP-01",
			Title: "Aluminum Die Casting",
			Image: "https://images.unsplash.com/photo-1612690021485-a4b7f3c8bf9e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Features: []string{
				"High-pressure die casting up to 1,600 tons",
				"Multi-cavity tooling for efficient production",
				"Aluminum alloys: ADC12, A380, A356, A413",
				"Component weight range: 50g to 10kg",
			},
			Precision: "±0.1mm",
			Capacity:  "500,000 units/year",
		},
		{
			ID:    "CAP-02",
			Title: "CNC Precision Machining",
			Image: "https://images.unsplash.com/photo-1592204153678-5be290cf857e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Features: []string{
				"25 CNC machining centers including 5-axis",
				"High-precision machining to ±0.01mm tolerance",
				"Advanced CAM programming capabilities",
				"Complex geometry and thin-wall machining",
			},
			Precision: "±0.01mm",
			Capacity:  "750,000 units/year",
		},
		{
			ID:    "CAP-03",
			Title: "Surface Treatment",
			Image: "https://images.unsplash.com/photo-1497366754035-f200968a6e72?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
			Features: []string{
				"Anodizing line (Type II and Type III)",
				"Powder coating with automated application",
				"E-coating for corrosion protection",
				"Mechanical finishing: polishing, bead blasting",
			},
			Precision: "Class A surface",
			Capacity:  "900,000 units/year",
		},
	}
}

// DefaultProps returns the fully populated default configuration.
func DefaultProps() Props {
	return Props{
		Title:        TitleNode(DefaultTitleText, DefaultTitleAccent),
		Subtitle:     DefaultSubtitle,
		Description:  DefaultDescription,
		Capabilities: DefaultCapabilities(),
		ButtonText:   DefaultButtonText,
		ButtonLink:   DefaultButtonLink,
		CompanyName:  DefaultCompanyName,
	}
}

// WithDefaults returns a copy of p with every omitted field filled in.
func (p Props) WithDefaults() Props {
	d := DefaultProps()
	if p.Title == nil {
		p.Title = d.Title
	}
	if p.Subtitle == "" {
		p.Subtitle = d.Subtitle
	}
	if p.Description == "" {
		p.Description = d.Description
	}
	if p.Capabilities == nil {
		p.Capabilities = d.Capabilities
	}
	if p.ButtonText == "" {
		p.ButtonText = d.ButtonText
	}
	if p.ButtonLink == "" {
		p.ButtonLink = d.ButtonLink
	}
	if p.CompanyName == "" {
		p.CompanyName = d.CompanyName
	}
	return p
}
