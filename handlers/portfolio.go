package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/macedodesign/site/page"
	"github.com/macedodesign/site/templates"
)

const siteTitle = "Macedo.Design"

// PortfolioHandler renders the single portfolio page.
type PortfolioHandler struct {
	Logger *zap.Logger
}

func (h *PortfolioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		if _, ok := pathLang(r); !ok {
			http.NotFound(w, r)
			return
		}
	}

	env, doc := requestEnvironment(r)
	p := page.New(env)
	p.Mount()
	defer p.Teardown()

	w.Header().Set("Content-Language", string(doc.Lang()))
	component := templates.Base(siteTitle, doc.Lang(), r.URL.Path, templates.Portfolio(p.View(), r.URL.Path))
	if err := component.Render(r.Context(), w); err != nil {
		h.Logger.Error("render portfolio", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
