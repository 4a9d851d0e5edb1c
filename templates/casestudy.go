package templates

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/macedodesign/site/i18n"
	"github.com/macedodesign/site/models"
)

// CaseStudy renders a project write-up.
func CaseStudy(s models.CaseStudy, lang i18n.Lang, path string) g.Node {
	c := i18n.Get(lang)
	return h.Div(
		h.Class("page case-study"),
		h.Header(
			h.Class("hero"),
			g.Attr("role", "banner"),
			h.A(h.Href("/"+string(lang)+"/"), brand()),
			languageSwitch(lang, path),
		),
		h.Article(
			h.Class("case-study-body"),
			h.H1(h.Class("section-title"), g.Text(s.Title)),
			g.If(s.Summary != "", h.P(h.Class("summary"), g.Text(s.Summary))),
			h.P(
				h.Class("meta"),
				g.If(s.Role != "", h.Span(h.Class("role"), g.Text(s.Role))),
				g.If(s.Year > 0, h.Span(h.Class("year"), g.Text(strconv.Itoa(s.Year)))),
				h.Span(h.Class("reading-time"), g.Textf("%d %s", s.ReadingTime, c.CaseStudyReading)),
			),
			g.If(len(s.Tags) > 0, h.Ul(
				h.Class("tags"),
				g.Map(s.Tags, func(t string) g.Node { return h.Li(g.Text(t)) }),
			)),
			h.Div(h.Class("content"), g.Raw(string(s.Content))),
			h.A(h.Class("back"), h.Href("/"+string(lang)+"/"+i18n.AnchorProjects), g.Text(c.CaseStudyBack)),
		),
	)
}
