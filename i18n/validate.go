package i18n

import (
	"errors"
	"fmt"
)

// Validate checks that every supported language has a fully populated Copy.
// All problems are reported together.
func Validate() error {
	var errs []error
	for _, lang := range SupportedLanguages() {
		c, ok := translations[lang]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no copy", lang))
			continue
		}
		for _, field := range c.missing() {
			errs = append(errs, fmt.Errorf("%s: missing %s", lang, field))
		}
	}
	return errors.Join(errs...)
}

func (c Copy) missing() []string {
	var out []string
	check := func(name, v string) {
		if v == "" {
			out = append(out, name)
		}
	}

	if len(c.Nav) == 0 {
		out = append(out, "Nav")
	}
	for i, n := range c.Nav {
		check(fmt.Sprintf("Nav[%d].Label", i), n.Label)
		check(fmt.Sprintf("Nav[%d].Href", i), n.Href)
	}
	check("HeroTitle", c.HeroTitle)
	check("AboutHeading", c.AboutHeading)
	if len(c.AboutParagraphs) == 0 {
		out = append(out, "AboutParagraphs")
	}
	for i, p := range c.AboutParagraphs {
		check(fmt.Sprintf("AboutParagraphs[%d]", i), p)
	}
	check("ProjectsHeading", c.ProjectsHeading)
	check("ProjectsIntro", c.ProjectsIntro)
	if len(c.Projects) == 0 {
		out = append(out, "Projects")
	}
	for i, p := range c.Projects {
		check(fmt.Sprintf("Projects[%d].Slug", i), p.Slug)
		check(fmt.Sprintf("Projects[%d].Title", i), p.Title)
		check(fmt.Sprintf("Projects[%d].Description", i), p.Description)
	}
	check("ContactHeading", c.ContactHeading)
	check("ContactIntro", c.ContactIntro)
	check("ContactLabels.WhatsApp", c.ContactLabels.WhatsApp)
	check("ContactLabels.Email", c.ContactLabels.Email)
	check("CaseStudyBack", c.CaseStudyBack)
	check("CaseStudyReading", c.CaseStudyReading)
	return out
}
