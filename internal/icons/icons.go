// Package icons holds the fixed icon catalogue used by the capabilities
// section. Every icon renders two ways: as inline SVG for HTML output and as
// a glyph for terminal previews.
package icons

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon is a single entry in the catalogue. The zero value renders nothing.
type Icon struct {
	Name  string
	Glyph string
	body  string
}

// IsZero reports whether the icon is the empty icon.
func (i Icon) IsZero() bool {
	return i.Name == ""
}

// SVG renders the icon as an inline lucide-style SVG element.
func (i Icon) SVG(size int, class string) g.Node {
	if i.IsZero() {
		return nil
	}
	s := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", s),
		g.Attr("height", s),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.If(class != "", h.Class(class)),
		h.Data("icon", i.Name),
		g.Attr("aria-hidden", "true"),
		g.Raw(i.body),
	)
}

var (
	Ruler = Icon{
		Name:  "ruler",
		Glyph: "📏",
		body:  `<path d="M21.3 15.3a2.4 2.4 0 0 1 0 3.4l-2.6 2.6a2.4 2.4 0 0 1-3.4 0L2.7 8.7a2.41 2.41 0 0 1 0-3.4l2.6-2.6a2.41 2.41 0 0 1 3.4 0Z"/><path d="m14.5 12.5 2-2"/><path d="m11.5 9.5 2-2"/><path d="m8.5 6.5 2-2"/><path d="m17.5 15.5 2-2"/>`,
	}
	ArrowRight = Icon{
		Name:  "arrow-right",
		Glyph: "→",
		body:  `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	}
	Zap = Icon{
		Name:  "zap",
		Glyph: "⚡",
		body:  `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
	}
	Wrench = Icon{
		Name:  "wrench",
		Glyph: "🔧",
		body:  `<path d="M14.7 6.3a1 1 0 0 0 0 1.4l1.6 1.6a1 1 0 0 0 1.4 0l3.77-3.77a6 6 0 0 1-7.94 7.94l-6.91 6.91a2.12 2.12 0 0 1-3-3l6.91-6.91a6 6 0 0 1 7.94-7.94l-3.76 3.76z"/>`,
	}
	Shield = Icon{
		Name:  "shield",
		Glyph: "🛡",
		body:  `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/>`,
	}
	Target = Icon{
		Name:  "target",
		Glyph: "◎",
		body:  `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	}
	Cog = Icon{
		Name:  "cog",
		Glyph: "⚙",
		body:  `<path d="M12 20a8 8 0 1 0 0-16 8 8 0 0 0 0 16Z"/><path d="M12 14a2 2 0 1 0 0-4 2 2 0 0 0 0 4Z"/><path d="M12 2v2"/><path d="M12 22v-2"/><path d="m17 20.66-1-1.73"/><path d="M11 10.27 7 3.34"/><path d="m20.66 17-1.73-1"/><path d="m3.34 7 1.73 1"/><path d="M14 12h8"/><path d="M2 12h2"/><path d="m20.66 7-1.73 1"/><path d="m3.34 17 1.73-1"/><path d="m17 3.34-1 1.73"/><path d="m11 13.73-4 6.93"/>`,
	}
	Cpu = Icon{
		Name:  "cpu",
		Glyph: "▣",
		body:  `<rect x="4" y="4" width="16" height="16" rx="2"/><rect x="9" y="9" width="6" height="6"/><path d="M15 2v2"/><path d="M15 20v2"/><path d="M2 15h2"/><path d="M2 9h2"/><path d="M20 15h2"/><path d="M20 9h2"/><path d="M9 2v2"/><path d="M9 20v2"/>`,
	}
	AlertCircle = Icon{
		Name:  "alert-circle",
		Glyph: "⚠",
		body:  `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`,
	}
)

var catalogue = []Icon{Ruler, ArrowRight, Zap, Wrench, Shield, Target, Cog, Cpu, AlertCircle}

// ByName looks an icon up by its catalogue name.
func ByName(name string) (Icon, bool) {
	for _, i := range catalogue {
		if i.Name == name {
			return i, true
		}
	}
	return Icon{}, false
}

// SafeGlyph returns the icon glyph followed by enough spaces that the next
// character is not swallowed: one space for single-cell glyphs, two for
// double-width ones.
func SafeGlyph(i Icon) string {
	if i.IsZero() {
		return ""
	}
	spaces := 1
	if runewidth.StringWidth(i.Glyph) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", i.Glyph, strings.Repeat(" ", spaces))
}

// GlyphText formats an icon glyph in front of text.
func GlyphText(i Icon, text string) string {
	return SafeGlyph(i) + text
}
