package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/macedodesign/site/middleware"
	"github.com/macedodesign/site/models"
	"github.com/macedodesign/site/static"
)

// Routes wires every page and asset of the site.
func Routes(lib *models.Library, highlightCSS []byte, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.Recoverer)
	r.Use(middleware.Logger(logger))

	portfolio := &PortfolioHandler{Logger: logger}
	caseStudy := &CaseStudyHandler{Library: lib, Logger: logger}

	r.Group(func(r chi.Router) {
		r.Use(middleware.VaryLocale)
		r.Method(http.MethodGet, "/", portfolio)
		r.Method(http.MethodGet, "/{lang}/", portfolio)
		r.Method(http.MethodGet, "/{lang}/projects/{slug}", caseStudy)
	})
	r.Get("/{lang}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := pathLang(r); !ok {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
	})

	r.Method(http.MethodGet, "/static/highlight.css", middleware.Bytes("text/css; charset=utf-8", highlightCSS))
	r.Method(http.MethodGet, "/static/*", middleware.Assets(static.Files, "/static"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
