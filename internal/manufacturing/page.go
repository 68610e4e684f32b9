package manufacturing

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultStylesheetScript is the Tailwind play CDN used when a page is
// rendered standalone.
const DefaultStylesheetScript = "https://cdn.tailwindcss.com"

// PageOptions controls the minimal document wrapped around the section when
// it is rendered as a standalone page.
type PageOptions struct {
	Title   string
	Lang    string
	Scripts []string
}

func (o PageOptions) withDefaults(company string) PageOptions {
	if o.Title == "" {
		o.Title = company + " | Manufacturing Capabilities"
	}
	if o.Lang == "" {
		o.Lang = "en"
	}
	if o.Scripts == nil {
		o.Scripts = []string{DefaultStylesheetScript}
	}
	return o
}

// Page returns a complete HTML document containing only the section.
func (r *Renderer) Page(p Props, opts PageOptions) g.Node {
	return PageFromView(r.View(p), opts)
}

// RenderPage writes a complete HTML document for p to w.
func (r *Renderer) RenderPage(w io.Writer, p Props, opts PageOptions) error {
	return r.Page(p, opts).Render(w)
}

// PageFromView wraps an already derived view in a document.
func PageFromView(v View, opts PageOptions) g.Node {
	opts = opts.withDefaults(v.Props.CompanyName)
	return h.Doctype(
		h.HTML(
			h.Lang(opts.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(opts.Title)),
				g.Group(g.Map(opts.Scripts, func(src string) g.Node {
					return h.Script(h.Src(src))
				})),
			),
			h.Body(SectionFromView(v)),
		),
	)
}
