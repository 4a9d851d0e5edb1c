package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/macedodesign/site/models"
	"github.com/macedodesign/site/templates"
)

// CaseStudyHandler renders /{lang}/projects/{slug}.
type CaseStudyHandler struct {
	Library *models.Library
	Logger  *zap.Logger
}

func (h *CaseStudyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lang, ok := pathLang(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	study, ok := h.Library.Find(string(lang), chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Language", string(lang))
	component := templates.Base(study.Title+" - "+siteTitle, lang, r.URL.Path, templates.CaseStudy(study, lang, r.URL.Path))
	if err := component.Render(r.Context(), w); err != nil {
		h.Logger.Error("render case study", zap.String("slug", study.Slug), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
