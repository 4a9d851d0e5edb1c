package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/macedodesign/site/i18n"
	"github.com/macedodesign/site/models"
	"github.com/macedodesign/site/page"
)

func render(t *testing.T, lang i18n.Lang, path string, v page.View) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	err := Base("Macedo.Design", lang, path, Portfolio(v, path)).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func view(lang i18n.Lang, visible bool) page.View {
	return page.View{Lang: lang, Copy: i18n.Get(lang), AboutVisible: visible}
}

func TestPortfolioRendersSectionsInOrder(t *testing.T) {
	t.Parallel()

	doc := render(t, i18n.EN, "/en/", view(i18n.EN, false))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	var ids []string
	doc.Find(".page > header, .page > section").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	require.Equal(t, []string{"home", "about", "projects", "contact"}, ids)
	require.Equal(t, "MACEDO.DESIGN", doc.Find(".brand").Text())
	require.Equal(t, i18n.Get(i18n.EN).HeroTitle, doc.Find("h1.section-title").Text())
}

func TestAboutRevealState(t *testing.T) {
	t.Parallel()

	hidden := render(t, i18n.EN, "/", view(i18n.EN, false)).Find("#about")
	require.True(t, hidden.HasClass("is-hidden"))
	require.Equal(t, "true", hidden.AttrOr("aria-hidden", ""))
	require.Equal(t, 4, hidden.Find("p").Length())

	shown := render(t, i18n.EN, "/", view(i18n.EN, true)).Find("#about")
	require.True(t, shown.HasClass("is-visible"))
	require.Equal(t, "false", shown.AttrOr("aria-hidden", ""))
}

func TestContactLinksIndependentOfLocale(t *testing.T) {
	t.Parallel()

	for _, lang := range i18n.SupportedLanguages() {
		doc := render(t, lang, "/", view(lang, false))
		wa := doc.Find("#contact a.contact-whatsapp")
		require.Equal(t, "https://wa.me/5511913135165", wa.AttrOr("href", ""))
		require.Equal(t, "+55 11 91313-5165", wa.Text())
		mail := doc.Find("#contact a.contact-email")
		require.Equal(t, "mailto:letschat@macedo.design", mail.AttrOr("href", ""))
		require.Equal(t, "letschat@macedo.design", mail.Text())
	}
}

func TestSideNavMarksAboutLink(t *testing.T) {
	t.Parallel()

	doc := render(t, i18n.PT, "/pt/", view(i18n.PT, false))
	links := doc.Find("nav.side-nav a")
	require.Equal(t, 4, links.Length())
	require.Equal(t, "Sobre", links.Eq(1).Text())
	require.Equal(t, "#about", links.Eq(1).AttrOr("href", ""))
	require.Equal(t, "about", links.Eq(1).AttrOr("data-reveal", ""))

	_, marked := links.Eq(0).Attr("data-reveal")
	require.False(t, marked)
}

func TestProjectsListedWithCaseStudyLinks(t *testing.T) {
	t.Parallel()

	doc := render(t, i18n.PT, "/pt/", view(i18n.PT, false))
	items := doc.Find("#projects li")
	require.Equal(t, 3, items.Length())
	require.Equal(t, "/pt/projects/encibra", items.Eq(0).Find("a").AttrOr("href", ""))
	require.Equal(t, "Encibra", items.Eq(0).Find("strong").Text())
	require.True(t, strings.Contains(items.Eq(2).Text(), "mobile-first"))
}

func TestLanguageSwitchAndAlternates(t *testing.T) {
	t.Parallel()

	doc := render(t, i18n.EN, "/en/projects/encibra", view(i18n.EN, false))
	sw := doc.Find("a.lang-switch")
	require.Equal(t, "/pt/projects/encibra", sw.AttrOr("href", ""))
	require.Equal(t, "Português", sw.Text())
	require.Equal(t, 2, doc.Find(`link[rel="alternate"]`).Length())
}

func TestLocalizedPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/pt/", LocalizedPath("/", i18n.PT))
	require.Equal(t, "/pt/", LocalizedPath("/en/", i18n.PT))
	require.Equal(t, "/en/", LocalizedPath("/pt", i18n.EN))
	require.Equal(t, "/en/projects/x", LocalizedPath("/pt/projects/x", i18n.EN))
	require.Equal(t, "/pt/", LocalizedPath("/healthz", i18n.PT))
}

func TestCaseStudyPage(t *testing.T) {
	t.Parallel()

	s := models.CaseStudy{
		Title:       "Encibra",
		Slug:        "encibra",
		Summary:     "Resumo",
		Role:        "Designer",
		Year:        2023,
		Tags:        []string{"branding"},
		Content:     "<h2>Contexto</h2>",
		ReadingTime: 2,
	}
	var buf bytes.Buffer
	err := Base(s.Title, i18n.PT, "/pt/projects/encibra", CaseStudy(s, i18n.PT, "/pt/projects/encibra")).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, "Encibra", doc.Find("article h1").Text())
	require.Equal(t, "Contexto", doc.Find(".content h2").Text())
	require.Equal(t, "2 min de leitura", doc.Find(".reading-time").Text())
	require.Equal(t, "2023", doc.Find(".year").Text())
	require.Equal(t, "/pt/#projects", doc.Find("a.back").AttrOr("href", ""))
}
