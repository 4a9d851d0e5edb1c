package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/macedodesign/site/i18n"
	"github.com/macedodesign/site/page"
)

// document captures the lang attribute the page writes while mounting.
type document struct {
	lang string
}

func (d *document) SetLang(lang string) { d.lang = lang }

func (d *document) Lang() i18n.Lang { return i18n.GetLang(d.lang) }

// requestEnvironment exposes the request's language preferences to a page.
// A language prefix in the path wins over Accept-Language. Intersection and
// language-change notifications happen in the browser, not here.
func requestEnvironment(r *http.Request) (page.Environment, *document) {
	doc := &document{}
	nav := page.StaticNavigator(i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language")))
	if lang := chi.URLParam(r, "lang"); lang != "" {
		nav = page.StaticNavigator{lang}
	}
	return page.Environment{Navigator: nav, Document: doc}, doc
}

// pathLang returns the {lang} route parameter if it names a supported
// language.
func pathLang(r *http.Request) (i18n.Lang, bool) {
	lang := chi.URLParam(r, "lang")
	if !i18n.IsSupported(lang) {
		return "", false
	}
	return i18n.Lang(lang), true
}
