package manufacturing

import (
	"fmt"
	"io"
	"strings"
	"time"

	"capsection/internal/icons"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	gridPatternClass     = "bg-[radial-gradient(#000_1px,transparent_1px)] [background-size:20px_20px]"
	diagonalPatternClass = "bg-[linear-gradient(45deg,#000_25%,transparent_25%,transparent_50%,#000_50%,#000_75%,transparent_75%,transparent)] bg-[length:8px_8px]"
	lineGridClass        = "absolute inset-0 bg-[linear-gradient(to_right,transparent_49px,#eee_50px,#eee_51px,transparent_51px),linear-gradient(to_bottom,transparent_49px,#eee_50px,#eee_51px,transparent_51px)] [background-size:50px_50px] opacity-[0.4]"

	topMeasurementMarks  = 20
	cardMeasurementMarks = 5
)

// Renderer turns Props into markup. The zero value is not usable; create
// one with NewRenderer.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock replaces the wall clock used to derive the current year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRenderer creates a renderer reading the wall clock unless overridden.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// View derives the display model for p at the renderer's current time.
func (r *Renderer) View(p Props) View {
	return BuildView(p, r.now())
}

// Section returns the section node for p.
func (r *Renderer) Section(p Props) g.Node {
	return SectionFromView(r.View(p))
}

// Render writes the section markup for p to w.
func (r *Renderer) Render(w io.Writer, p Props) error {
	return r.Section(p).Render(w)
}

// SectionFromView renders an already derived view.
func SectionFromView(v View) g.Node {
	p := v.Props
	return h.Section(
		h.Class(strings.TrimSpace("py-16 md:py-24 bg-white relative overflow-hidden "+p.ClassName)),
		h.Data("component", "manufacturing"),

		h.Div(h.Class("absolute inset-0 opacity-5 pointer-events-none "+gridPatternClass)),
		h.Div(h.Class(lineGridClass)),

		h.Div(h.Class("absolute top-8 right-8 w-32 h-32 border-t border-r border-neutral-300 hidden lg:block")),
		h.Div(h.Class("absolute bottom-8 left-8 w-32 h-32 border-b border-l border-neutral-300 hidden lg:block")),

		topMarks(),

		h.Div(
			h.Class("container mx-auto px-4 relative z-10"),
			header(v),
			indexStrip(v),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				h.Data("role", "capability-grid"),
				g.Group(g.Map(v.Cards, card)),
			),
			callToAction(v),
		),
	)
}

func topMarks() g.Node {
	marks := make([]g.Node, 0, topMeasurementMarks)
	for i := 0; i < topMeasurementMarks; i++ {
		marks = append(marks, h.Div(
			h.Class("flex-1 border-r border-neutral-400/20 relative"),
			g.If(i%5 == 0, h.Div(h.Class("absolute top-0 right-0 w-0.5 h-2 bg-neutral-400/50"))),
		))
	}
	return h.Div(h.Class("absolute top-0 left-0 right-0 h-2 flex opacity-30 hidden md:flex"), g.Group(marks))
}

func header(v View) g.Node {
	p := v.Props
	return h.Div(
		h.Class("flex flex-col items-center mb-16"),
		h.Div(
			h.Class("inline-flex items-center bg-neutral-800/90 text-white px-4 py-2 mb-6 border-l-2 border-primary-600 relative"),
			h.Div(h.Class("absolute -top-1 -left-1 w-2 h-2 border-t border-l border-primary-500")),
			h.Div(h.Class("absolute -bottom-1 -right-1 w-2 h-2 border-b border-r border-primary-500")),
			icons.Ruler.SVG(14, "mr-2"),
			h.Span(h.Class("text-sm font-medium tracking-wider uppercase"), h.Data("role", "subtitle"), g.Text(p.Subtitle)),
		),
		h.H2(h.Class("text-3xl font-bold text-neutral-900 mb-4 tracking-tight text-center"), p.Title),
		h.Div(
			h.Class("w-20 h-0.5 bg-neutral-300 mb-8 relative"),
			h.Div(h.Class("absolute -top-1.5 left-1/2 w-3 h-3 border border-neutral-300 transform -translate-x-1/2 rotate-45")),
		),
		h.P(
			h.Class("text-center text-neutral-600 max-w-2xl mb-12 relative"),
			g.Text(p.Description),
			h.Span(
				h.Class("absolute -bottom-6 left-1/2 transform -translate-x-1/2 text-xs font-mono text-neutral-400 whitespace-nowrap"),
				h.Span(h.Class("mr-2"), h.Data("role", "header-ref"), g.Text(v.HeaderRef)),
				h.Span(h.Class("inline-block w-16 h-px bg-neutral-300 align-middle mx-2")),
				h.Span(g.Text(DocumentVersion)),
			),
		),
	)
}

func indexStrip(v View) g.Node {
	return h.Div(
		h.Class("w-full h-px bg-neutral-200 mb-10 relative"),
		h.Data("role", "index-strip"),
		h.Div(h.Class("absolute -top-3 left-0 text-xs font-mono text-neutral-500"), g.Text("CAPABILITIES.INDEX")),
		h.Div(h.Class("absolute -top-3 right-0 text-xs font-mono text-neutral-500"), g.Text("PRECISION.SPECS")),
		g.Group(g.Map(v.Markers, func(m Marker) g.Node {
			return h.Div(
				h.Class("absolute -top-1 w-0.5 h-2 bg-primary-600"),
				h.Style(fmt.Sprintf("left: %d%%", m.Offset)),
				h.Data("role", "marker"),
				h.Div(
					h.Class("absolute -top-5 left-1/2 transform -translate-x-1/2 text-xs font-mono text-primary-600"),
					g.Text(m.ID),
				),
			)
		})),
	)
}

func card(c Card) g.Node {
	return h.Div(
		h.Class("bg-white border border-neutral-200 shadow-sm relative overflow-hidden group hover:shadow-md transition-all duration-300"),
		h.Data("role", "card"),
		h.Data("position", fmt.Sprint(c.Position)),

		h.Div(
			h.Class("absolute top-3 right-3 bg-white/90 backdrop-blur-sm shadow-sm px-2 py-1 text-xs font-mono text-neutral-600 border border-neutral-200 z-10 flex items-center group-hover:border-primary-400 transition-colors"),
			h.Data("role", "badge"),
			h.Span(h.Class("text-primary-600 mr-1"), g.Text("ID:")),
			g.Text(c.ID),
		),

		h.Div(h.Class("absolute top-0 left-0 w-8 h-8 border-t-2 border-l-2 border-transparent group-hover:border-primary-600/30 transition-colors duration-300 z-10")),
		h.Div(h.Class("absolute bottom-0 right-0 w-8 h-8 border-b-2 border-r-2 border-transparent group-hover:border-primary-600/30 transition-colors duration-300 z-10")),

		h.Div(
			h.Class("h-48 overflow-hidden relative"),
			cardMarks(),
			h.Img(
				h.Src(c.Image),
				h.Alt(c.Title),
				h.Class("w-full h-full object-cover transition-transform duration-700 group-hover:scale-105"),
			),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-neutral-900/80 to-transparent")),
			h.Div(h.Class("absolute inset-0 "+diagonalPatternClass+" opacity-10")),
			h.Div(
				h.Class("absolute bottom-0 left-0 right-0 p-4"),
				h.Div(
					h.Class("flex items-center"),
					h.Div(
						h.Class("w-6 h-6 bg-primary-800/80 backdrop-blur-sm flex items-center justify-center rounded-sm border border-primary-600/50 mr-3"),
						g.If(c.HasIcon, c.Icon.SVG(16, "text-primary-600")),
					),
					h.H3(h.Class("text-white font-bold text-xl"), g.Text(c.Title)),
				),
				h.Div(
					h.Class("mt-2 flex items-center space-x-4 text-xs"),
					specBadge("PRE:", "precision", c.Precision),
					specBadge("CAP:", "capacity", c.Capacity),
				),
			),
		),

		h.Div(
			h.Class("p-6 border-t border-neutral-200"),
			h.Div(
				h.Class("flex items-center justify-between mb-3"),
				h.Div(h.Class("text-xs font-medium text-neutral-500 uppercase tracking-wider"), g.Text("Process Specifications")),
				h.Div(h.Class("text-xs font-mono text-neutral-400"), g.Text(c.ID+".SPECS")),
			),
			h.Ul(
				h.Class("space-y-3"),
				g.Group(g.Map(c.Items, func(f FeatureItem) g.Node {
					return h.Li(
						h.Class("flex items-start text-sm text-neutral-600 group/item"),
						h.Data("role", "feature"),
						h.Div(
							h.Class("w-5 h-5 bg-neutral-50 border border-neutral-200 flex items-center justify-center rounded-sm mr-2 flex-shrink-0 mt-0.5 group-hover/item:bg-primary-50 group-hover/item:border-primary-200 transition-colors"),
							f.Icon.SVG(12, "text-primary-500"),
						),
						h.Span(h.Class("group-hover/item:text-neutral-900 transition-colors"), g.Text(f.Text)),
					)
				})),
			),
			h.Div(
				h.Class("mt-4 pt-3 border-t border-dashed border-neutral-200 flex justify-between items-center"),
				h.Div(h.Class("text-[10px] font-mono text-neutral-400"), h.Data("role", "version"), g.Text(c.Version)),
				h.Div(
					h.Class("text-[10px] font-mono text-neutral-400"),
					h.Data("role", "footer-ref"),
					h.Span(h.Class("text-primary-500"), g.Text(c.ID)),
					g.Text("/"+c.Company),
				),
			),
		),
	)
}

func cardMarks() g.Node {
	marks := make([]g.Node, 0, cardMeasurementMarks)
	for i := 0; i < cardMeasurementMarks; i++ {
		marks = append(marks, h.Div(
			h.Class("flex-1 border-b border-white/30 relative"),
			g.If(i%2 == 0, h.Div(h.Class("absolute bottom-0 left-0 w-2 h-0.5 bg-white/50"))),
		))
	}
	return h.Div(h.Class("absolute left-0 top-0 bottom-0 w-1 flex flex-col z-20 opacity-0 group-hover:opacity-100 transition-opacity"), g.Group(marks))
}

func specBadge(label, role, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Div(
		h.Class("bg-black/30 backdrop-blur-sm text-white px-2 py-1 rounded-sm border-l border-primary-600/50"),
		h.Data("role", role),
		h.Span(h.Class("text-primary-400 mr-1 font-mono"), g.Text(label)),
		g.Text(value),
	)
}

func callToAction(v View) g.Node {
	p := v.Props
	return h.Div(
		h.Class("mt-12 text-center relative"),
		h.Div(
			h.Class("absolute -top-6 left-1/2 transform -translate-x-1/2 text-xs font-mono text-neutral-500 flex items-center"),
			h.Div(h.Class("w-12 h-px bg-neutral-300 mr-2")),
			h.Span(g.Text("ACTION.REFERENCE")),
			h.Div(h.Class("w-12 h-px bg-neutral-300 ml-2")),
		),
		h.A(
			h.Href(p.ButtonLink),
			h.Class("inline-flex items-center px-6 py-3 bg-neutral-800 hover:bg-primary-600 text-white font-medium transition-colors border border-neutral-700 hover:border-primary-700 relative group"),
			h.Data("role", "cta"),
			h.Span(h.Class("absolute top-0 left-0 w-2 h-2 border-t border-l border-white/30 opacity-0 group-hover:opacity-100 transition-opacity")),
			h.Span(h.Class("absolute bottom-0 right-0 w-2 h-2 border-b border-r border-white/30 opacity-0 group-hover:opacity-100 transition-opacity")),
			g.Text(p.ButtonText),
			icons.ArrowRight.SVG(20, "ml-2 transition-transform group-hover:translate-x-1"),
		),
		h.Div(
			h.Class("absolute -bottom-6 left-1/2 transform -translate-x-1/2 text-xs font-mono text-neutral-500"),
			h.Data("role", "doc-ref"),
			g.Text(v.DocRef),
		),
	)
}
