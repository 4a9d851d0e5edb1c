package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const portuguesePrefix = "pt"

// Resolve picks PT when any preferred tag starts with "pt", ignoring case.
// Everything else, including an empty list, resolves to EN.
func Resolve(languages []string) Lang {
	for _, tag := range languages {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(tag)), portuguesePrefix) {
			return PT
		}
	}
	return EN
}

// Detect resolves the language from an ordered preference list, falling back
// to the single reported language when the list is empty.
func Detect(languages []string, reported string) Lang {
	if len(languages) == 0 {
		if reported == "" {
			return EN
		}
		languages = []string{reported}
	}
	return Resolve(languages)
}

// ParseAcceptLanguage returns the tags of an Accept-Language header ordered
// by q-value. Tags with q=0 are dropped; malformed headers yield no tags.
func ParseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	tags, q, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for i, t := range tags {
		if q[i] <= 0 {
			continue
		}
		out = append(out, t.String())
	}
	return out
}
