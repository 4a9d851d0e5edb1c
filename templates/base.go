// Package templates renders the site's HTML.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/macedodesign/site/i18n"
)

// Base wraps body in the HTML document shell.
func Base(title string, lang i18n.Lang, path string, body g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title, lang, path, body).Render(w)
	})
}

func document(title string, lang i18n.Lang, path string, body g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(string(lang)),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/highlight.css")),
				g.Map(i18n.SupportedLanguages(), func(l i18n.Lang) g.Node {
					return h.Link(h.Rel("alternate"), g.Attr("hreflang", string(l)), h.Href(LocalizedPath(path, l)))
				}),
			),
			h.Body(
				body,
				h.Script(h.Src("/static/reveal.js"), g.Attr("defer")),
			),
		),
	)
}

// LocalizedPath returns path with its language prefix replaced by lang.
// Paths without a prefix map to the language root.
func LocalizedPath(path string, lang i18n.Lang) string {
	rest := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(rest, '/'); i != -1 && i18n.IsSupported(rest[:i]) {
		return "/" + string(lang) + rest[i:]
	}
	return "/" + string(lang) + "/"
}

func languageSwitch(lang i18n.Lang, path string) g.Node {
	other := i18n.OtherLang(lang)
	return h.A(
		h.Class("lang-switch"),
		h.Href(LocalizedPath(path, other)),
		g.Attr("hreflang", string(other)),
		g.Text(i18n.LangName(other)),
	)
}
