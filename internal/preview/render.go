// Package preview renders the capabilities section for a terminal, using the
// same derived view as the HTML renderer.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"capsection/internal/icons"
	"capsection/internal/manufacturing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// Options controls terminal layout.
type Options struct {
	// Width is the available width in cells. Zero means DefaultWidth.
	Width int
	// Focus highlights the card at this zero-based index; -1 for none.
	Focus int
}

// Render lays the whole section out as a string.
func Render(v manufacturing.View, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < MinWidth {
		width = MinWidth
	}

	blocks := []string{
		renderHeader(v, width),
		"",
		renderIndexStrip(v, width),
		"",
	}
	if grid := renderGrid(v, width, opts.Focus); grid != "" {
		blocks = append(blocks, grid, "")
	}
	blocks = append(blocks, renderCallToAction(v, width))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func renderHeader(v manufacturing.View, width int) string {
	p := v.Props
	subtitle := subtitleStyle.Render(icons.GlyphText(icons.Ruler, strings.ToUpper(p.Subtitle)))
	title := titleStyle.Render(PlainText(p.Title))
	divider := monoMutedStyle.Render("──────── ◇ ────────")
	desc := descriptionStyle.Width(min(width, 72)).Align(lipgloss.Center).Render(p.Description)
	ref := monoMutedStyle.Render(v.HeaderRef + "  ────  " + manufacturing.DocumentVersion)

	return lipgloss.JoinVertical(lipgloss.Left,
		center(width, subtitle),
		"",
		center(width, title),
		center(width, divider),
		center(width, desc),
		center(width, ref),
	)
}

// renderIndexStrip draws the marker ruler. Markers past the right edge are
// clamped to the last cell, mirroring the overflow of the web layout.
func renderIndexStrip(v manufacturing.View, width int) string {
	left, right := "CAPABILITIES.INDEX", "PRECISION.SPECS"
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	labels := monoMutedStyle.Render(left + strings.Repeat(" ", gap) + right)

	rule := []rune(strings.Repeat("─", width))
	ids := []rune(strings.Repeat(" ", width))
	for _, m := range v.Markers {
		pos := markerColumn(m.Offset, width)
		rule[pos] = '┼'
		start := pos - runewidth.StringWidth(m.ID)/2
		for i, r := range []rune(m.ID) {
			if c := start + i; c >= 0 && c < width {
				ids[c] = r
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labels,
		monoPrimaryStyle.Render(strings.TrimRight(string(ids), " ")),
		monoMutedStyle.Render(string(rule)),
	)
}

// markerColumn converts a percentage offset to a column on a strip of the
// given width.
func markerColumn(offset, width int) int {
	col := offset * width / 100
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	return col
}

func renderGrid(v manufacturing.View, width, focus int) string {
	if len(v.Cards) == 0 {
		return ""
	}
	perRow := (width + CardGap) / (CardWidth + CardGap)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(v.Cards); start += perRow {
		end := min(start+perRow, len(v.Cards))
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", CardGap))
			}
			cells = append(cells, renderCard(v.Cards[i], i == focus))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c manufacturing.Card, focused bool) string {
	lines := []string{
		monoMutedStyle.Render("ID: " + c.ID),
	}

	title := c.Title
	if c.HasIcon {
		title = icons.GlyphText(c.Icon, title)
	}
	lines = append(lines, cardTitleStyle.Render(title))

	if c.Precision != "" {
		lines = append(lines, specLabelStyle.Render("PRE: ")+c.Precision)
	}
	if c.Capacity != "" {
		lines = append(lines, specLabelStyle.Render("CAP: ")+c.Capacity)
	}

	lines = append(lines,
		"",
		sectionLabelStyle.Render("PROCESS SPECIFICATIONS"),
		monoMutedStyle.Render(c.ID+".SPECS"),
	)
	for _, f := range c.Items {
		lines = append(lines, icons.GlyphText(f.Icon, f.Text))
	}
	lines = append(lines,
		monoMutedStyle.Render("┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄"),
		monoMutedStyle.Render(c.Version),
		monoPrimaryStyle.Render(c.Footer()),
	)

	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderCallToAction(v manufacturing.View, width int) string {
	p := v.Props
	button := buttonStyle.Render(icons.GlyphText(icons.ArrowRight, p.ButtonText))
	return lipgloss.JoinVertical(lipgloss.Left,
		center(width, monoMutedStyle.Render("──── ACTION.REFERENCE ────")),
		center(width, button),
		center(width, monoMutedStyle.Render(p.ButtonLink)),
		center(width, monoMutedStyle.Render(v.DocRef)),
	)
}

// PlainText flattens a rendered node to its text content, for places that
// cannot show markup.
func PlainText(n g.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(&buf)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Summary is a one-line description of the view, used in log messages.
func Summary(v manufacturing.View) string {
	return fmt.Sprintf("%d capabilities for %s (%d)", len(v.Cards), v.Props.CompanyName, v.Year)
}
