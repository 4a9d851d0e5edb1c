package page

import "github.com/macedodesign/site/i18n"

// Element ids of the page regions.
const (
	HomeID     = "home"
	AboutID    = "about"
	ProjectsID = "projects"
	ContactID  = "contact"
)

// Page is the state of one portfolio page view. It is not safe for
// concurrent use.
type Page struct {
	env         Environment
	locale      i18n.Lang
	about       *VisibilityTracker
	unsubscribe func()
	mounted     bool
}

// View is the snapshot a renderer needs.
type View struct {
	Lang         i18n.Lang
	Copy         i18n.Copy
	AboutVisible bool
}

// New returns an unmounted page. The locale is resolved immediately so the
// page can be rendered before Mount.
func New(env Environment) *Page {
	p := &Page{
		env:   env,
		about: NewVisibilityTracker(RevealThreshold),
	}
	p.locale = p.detect()
	return p
}

// Mount writes the locale to the document and subscribes to language changes
// and to the about region's visibility.
func (p *Page) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.setDocumentLang()
	if p.env.LanguageChange != nil {
		p.unsubscribe = p.env.LanguageChange.OnLanguageChange(p.languageChanged)
	}
	p.about.Start(p.env.Intersection, AboutID)
}

// Teardown releases every subscription. The page keeps its state.
func (p *Page) Teardown() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.about.Stop()
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Locale returns the current language.
func (p *Page) Locale() i18n.Lang { return p.locale }

// Copy returns the copy for the current language.
func (p *Page) Copy() i18n.Copy { return i18n.Get(p.locale) }

// AboutVisible reports whether the about region has been revealed.
func (p *Page) AboutVisible() bool { return p.about.Visible() }

// Activate handles a navigation link activation. Only the about anchor has
// an effect: it reveals the about region.
func (p *Page) Activate(href string) {
	if href == i18n.AnchorAbout {
		p.about.Reveal()
	}
}

// View returns the current render snapshot.
func (p *Page) View() View {
	return View{
		Lang:         p.locale,
		Copy:         p.Copy(),
		AboutVisible: p.AboutVisible(),
	}
}

func (p *Page) languageChanged() {
	next := p.detect()
	if next == p.locale {
		return
	}
	p.locale = next
	p.setDocumentLang()
}

func (p *Page) detect() i18n.Lang {
	if p.env.Navigator == nil {
		return i18n.EN
	}
	return i18n.Detect(p.env.Navigator.Languages(), p.env.Navigator.Language())
}

func (p *Page) setDocumentLang() {
	if p.env.Document != nil {
		p.env.Document.SetLang(string(p.locale))
	}
}
