package templates

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/macedodesign/site/i18n"
	"github.com/macedodesign/site/page"
)

// Contact channels, identical in every language.
const (
	WhatsAppNumber = "+55 11 91313-5165"
	WhatsAppLink   = "https://wa.me/5511913135165"
	EmailAddress   = "letschat@macedo.design"
)

// Portfolio renders the single page for v. path is the request path, used
// for the language switch.
func Portfolio(v page.View, path string) g.Node {
	c := v.Copy
	return h.Div(
		h.Class("page"),
		hero(c, v.Lang, path),
		about(c, v.AboutVisible),
		projects(c, v.Lang),
		contact(c),
		sideNav(c),
	)
}

func brand() g.Node {
	return h.Div(
		h.Class("brand"),
		g.Attr("role", "heading"),
		g.Attr("aria-level", "1"),
		g.Text("MACEDO"),
		h.Span(h.Class("dot"), g.Text(".")),
		g.Text("DESIGN"),
	)
}

func hero(c i18n.Copy, lang i18n.Lang, path string) g.Node {
	return h.Header(
		h.Class("hero"),
		g.Attr("role", "banner"),
		h.ID(page.HomeID),
		brand(),
		languageSwitch(lang, path),
		h.Div(
			h.Class("hero-content"),
			g.Attr("aria-live", "polite"),
			h.H1(h.Class("section-title"), g.Text(c.HeroTitle)),
		),
	)
}

func about(c i18n.Copy, visible bool) g.Node {
	state, hidden := "is-hidden", "true"
	if visible {
		state, hidden = "is-visible", "false"
	}
	return h.Section(
		h.Class("about-body "+state),
		h.ID(page.AboutID),
		g.Attr("aria-labelledby", "about-heading"),
		g.Attr("aria-hidden", hidden),
		g.Attr("data-reveal-threshold", "0.3"),
		h.H2(h.ID("about-heading"), h.Class("section-heading"), g.Text(c.AboutHeading)),
		g.Map(c.AboutParagraphs, func(p string) g.Node {
			return h.P(g.Text(p))
		}),
	)
}

func projects(c i18n.Copy, lang i18n.Lang) g.Node {
	return h.Section(
		h.Class("projects-body"),
		h.ID(page.ProjectsID),
		g.Attr("aria-labelledby", "projects-heading"),
		h.H2(h.ID("projects-heading"), h.Class("section-heading"), g.Text(c.ProjectsHeading)),
		h.P(g.Text(c.ProjectsIntro)),
		h.Ul(
			h.Class("project-list"),
			g.Map(c.Projects, func(p i18n.Project) g.Node {
				return h.Li(
					h.A(
						h.Href(CaseStudyPath(lang, p.Slug)),
						h.Strong(g.Text(p.Title)),
					),
					g.Text(" — "+p.Description),
				)
			}),
		),
	)
}

func contact(c i18n.Copy) g.Node {
	return h.Section(
		h.Class("contact-body"),
		h.ID(page.ContactID),
		g.Attr("aria-labelledby", "contact-heading"),
		h.H2(h.ID("contact-heading"), h.Class("section-heading"), g.Text(c.ContactHeading)),
		h.P(g.Text(c.ContactIntro)),
		h.P(
			g.Text(c.ContactLabels.WhatsApp+": "),
			h.A(h.Class("contact-whatsapp"), h.Href(WhatsAppLink), h.Target("_blank"), h.Rel("noreferrer"), g.Text(WhatsAppNumber)),
		),
		h.P(
			g.Text(c.ContactLabels.Email+": "),
			h.A(h.Class("contact-email"), h.Href("mailto:"+EmailAddress), h.Target("_blank"), h.Rel("noreferrer"), g.Text(EmailAddress)),
		),
	)
}

func sideNav(c i18n.Copy) g.Node {
	return h.Div(
		h.Class("side-nav-rail"),
		h.Nav(
			h.Class("side-nav"),
			g.Attr("aria-label", "Primary"),
			h.Ul(
				g.Map(c.Nav, func(n i18n.NavEntry) g.Node {
					return h.Li(
						h.A(
							h.Href(n.Href),
							g.If(n.Href == i18n.AnchorAbout, g.Attr("data-reveal", page.AboutID)),
							g.Text(n.Label),
						),
					)
				}),
			),
		),
	)
}

// CaseStudyPath is the URL of a project's case study.
func CaseStudyPath(lang i18n.Lang, slug string) string {
	return "/" + string(lang) + "/projects/" + slug
}
