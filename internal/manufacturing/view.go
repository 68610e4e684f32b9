package manufacturing

import (
	"fmt"
	"time"

	"capsection/internal/icons"
)

// DocumentVersion is the fixed version tag printed next to the header
// reference.
const DocumentVersion = "VERSION 1.2"

// capabilityIcons maps the known capability ids to their overlay icon.
var capabilityIcons = map[string]icons.Icon{
	"CAP-01": icons.Zap,
	"CAP-02": icons.Wrench,
	"CAP-03": icons.Shield,
}

// featureIcons is cycled through by feature position.
var featureIcons = [...]icons.Icon{
	icons.Target,
	icons.Cog,
	icons.Cpu,
	icons.AlertCircle,
}

// CapabilityIcon returns the overlay icon for a capability id. Unknown ids
// report false and render no icon.
func CapabilityIcon(id string) (icons.Icon, bool) {
	i, ok := capabilityIcons[id]
	return i, ok
}

// FeatureIcon returns the icon decorating the feature at position i.
func FeatureIcon(i int) icons.Icon {
	n := len(featureIcons)
	return featureIcons[((i%n)+n)%n]
}

// MarkerOffset is the index-strip offset, in percent, of the marker for the
// capability at position index. The formula does not adapt to the list
// length; markers collide past four entries.
func MarkerOffset(index int) int {
	return (index+1)*25 - index*5
}

// HeaderReference is the reference line under the description.
func HeaderReference(company string, year int) string {
	return fmt.Sprintf("REF: %s-CAP-%d", company, year)
}

// DocumentReference is the reference line under the call to action.
func DocumentReference(company string, year int) string {
	return fmt.Sprintf("DOC.%s.CAP.%d", company, year)
}

// VersionString is the card footer version for the card at 1-based position.
func VersionString(year, position int) string {
	return fmt.Sprintf("SYS.VER.%d.%d", year, position)
}

// View is the derived display model for one render. Nothing in it is
// stored; it is recomputed from Props and the clock every time.
type View struct {
	Props Props
	Year  int

	HeaderRef string
	DocRef    string

	Markers []Marker
	Cards   []Card
}

// Marker is one positional marker on the index strip.
type Marker struct {
	ID     string `json:"id"`
	Offset int    `json:"offsetPercent"`
}

// Card is the derived view of one capability.
type Card struct {
	Capability

	// Position is 1-based.
	Position int
	Icon     icons.Icon
	HasIcon  bool
	Items    []FeatureItem

	Version string
	Company string
}

// Footer is the card's footer reference, "{id}/{company}".
func (c Card) Footer() string {
	return c.ID + "/" + c.Company
}

// FeatureItem pairs a feature with its cyclic icon.
type FeatureItem struct {
	Text string
	Icon icons.Icon
}

// BuildView applies defaults to p and derives every display value for the
// given instant.
func BuildView(p Props, now time.Time) View {
	p = p.WithDefaults()
	year := now.Year()

	v := View{
		Props:     p,
		Year:      year,
		HeaderRef: HeaderReference(p.CompanyName, year),
		DocRef:    DocumentReference(p.CompanyName, year),
		Markers:   make([]Marker, 0, len(p.Capabilities)),
		Cards:     make([]Card, 0, len(p.Capabilities)),
	}

	for index, c := range p.Capabilities {
		v.Markers = append(v.Markers, Marker{ID: c.ID, Offset: MarkerOffset(index)})

		icon, ok := CapabilityIcon(c.ID)
		card := Card{
			Capability: c,
			Position:   index + 1,
			Icon:       icon,
			HasIcon:    ok,
			Items:      make([]FeatureItem, 0, len(c.Features)),
			Version:    VersionString(year, index+1),
			Company:    p.CompanyName,
		}
		for fi, f := range c.Features {
			card.Items = append(card.Items, FeatureItem{Text: f, Icon: FeatureIcon(fi)})
		}
		v.Cards = append(v.Cards, card)
	}

	return v
}

// DuplicateIDs returns capability ids that appear more than once, in order
// of their second appearance.
func DuplicateIDs(caps []Capability) []string {
	seen := make(map[string]int, len(caps))
	var dups []string
	for _, c := range caps {
		seen[c.ID]++
		if seen[c.ID] == 2 {
			dups = append(dups, c.ID)
		}
	}
	return dups
}
