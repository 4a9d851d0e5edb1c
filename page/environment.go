// Package page holds the portfolio page state and the environment
// capabilities it reacts to.
package page

// Navigator exposes the user's language preferences.
type Navigator interface {
	// Languages returns the ordered preference list, possibly empty.
	Languages() []string
	// Language returns the single reported language, possibly empty.
	Language() string
}

// LanguageChangeNotifier delivers language preference changes.
type LanguageChangeNotifier interface {
	OnLanguageChange(fn func()) (unsubscribe func())
}

// IntersectionEntry describes how much of an observed region is in view.
type IntersectionEntry struct {
	Ratio float64
}

// IntersectionObserver is a registered viewport observation.
type IntersectionObserver interface {
	Disconnect()
}

// IntersectionObserverFactory registers viewport observations on a region
// identified by its element id.
type IntersectionObserverFactory interface {
	Observe(target string, threshold float64, fn func(IntersectionEntry)) IntersectionObserver
}

// Document receives the resolved language attribute.
type Document interface {
	SetLang(lang string)
}

// Environment groups the optional capabilities of the host. A nil field means
// the capability is absent and the page degrades silently.
type Environment struct {
	Navigator      Navigator
	LanguageChange LanguageChangeNotifier
	Intersection   IntersectionObserverFactory
	Document       Document
}

// StaticNavigator reports a fixed preference list.
type StaticNavigator []string

func (n StaticNavigator) Languages() []string { return n }

func (n StaticNavigator) Language() string {
	if len(n) == 0 {
		return ""
	}
	return n[0]
}
