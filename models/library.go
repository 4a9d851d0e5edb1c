package models

import (
	"fmt"
	"io/fs"
)

// Library holds the case studies of every language. It is read-only after
// LoadLibrary returns.
type Library struct {
	byLang map[string][]CaseStudy
}

// LoadLibrary loads the case studies of each language under dir.
func LoadLibrary(fsys fs.FS, dir string, langs []string) (*Library, error) {
	lib := &Library{byLang: make(map[string][]CaseStudy, len(langs))}
	for _, lang := range langs {
		studies, err := LoadCaseStudies(fsys, dir, lang)
		if err != nil {
			return nil, fmt.Errorf("load case studies for %s: %w", lang, err)
		}
		lib.byLang[lang] = studies
	}
	return lib, nil
}

// List returns the case studies of lang.
func (l *Library) List(lang string) []CaseStudy {
	if l == nil {
		return nil
	}
	return l.byLang[lang]
}

// Find looks up a case study by language and slug.
func (l *Library) Find(lang, slug string) (CaseStudy, bool) {
	for _, s := range l.List(lang) {
		if s.Slug == slug {
			return s, true
		}
	}
	return CaseStudy{}, false
}

// Missing returns the slugs of lang that have no case study.
func (l *Library) Missing(lang string, slugs []string) []string {
	var out []string
	for _, slug := range slugs {
		if _, ok := l.Find(lang, slug); !ok {
			out = append(out, slug)
		}
	}
	return out
}
