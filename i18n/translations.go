package i18n

// Lang represents a supported language
type Lang string

const (
	EN Lang = "en"
	PT Lang = "pt"
)

// NavEntry is a side navigation link pointing at a page anchor.
type NavEntry struct {
	Label string
	Href  string
}

// Project is a featured project entry. Slug names the case study page.
type Project struct {
	Slug        string
	Title       string
	Description string
}

// ContactLabels holds the labels shown before each contact channel.
type ContactLabels struct {
	WhatsApp string
	Email    string
}

// Copy holds every localized string rendered by the portfolio page
type Copy struct {
	// Navigation
	Nav []NavEntry

	// Hero
	HeroTitle string

	// About
	AboutHeading    string
	AboutParagraphs []string

	// Projects
	ProjectsHeading string
	ProjectsIntro   string
	Projects        []Project

	// Contact
	ContactHeading string
	ContactIntro   string
	ContactLabels  ContactLabels

	// Case study pages
	CaseStudyBack    string
	CaseStudyReading string
}

// Anchors shared by both languages.
const (
	AnchorHome     = "#home"
	AnchorAbout    = "#about"
	AnchorProjects = "#projects"
	AnchorContact  = "#contact"
)

var translations = map[Lang]Copy{
	EN: {
		Nav: []NavEntry{
			{Label: "Home", Href: AnchorHome},
			{Label: "About", Href: AnchorAbout},
			{Label: "Projects", Href: AnchorProjects},
			{Label: "Contact", Href: AnchorContact},
		},

		HeroTitle: "Interfaces that welcome, guide, and create value for businesses and people.",

		AboutHeading: "About me",
		AboutParagraphs: []string{
			"I work as a product and interface designer, creating functional and accessible digital products that respond to real human needs. My front-end experience helps me propose feasible solutions from day one, reducing rework and aligning design with implementation.",
			"My background bridges technology and communication. I first studied Information Systems at UFPA, then shifted to Advertising where I deepened art direction and visual creation.",
			"Long before that, as a kid, I was already experimenting with design without realising it—tweaking layouts and colours on my Pokémon blog and discovering how enjoyable crafting visual experiences could be.",
			"I have also led infrastructure and IT teams, which shaped how I work today: combining visual clarity, technical understanding, and a strong product mindset.",
		},

		ProjectsHeading: "Featured projects",
		ProjectsIntro:   "Every project balances strategic clarity with a precise visual approach. These case studies show how I turn insights into complete digital experiences that connect brand, product, and people.",
		Projects: []Project{
			{
				Slug:        "encibra",
				Title:       "Encibra",
				Description: "Full digital repositioning for an engineering company, strengthening credibility and scalability across multiple touchpoints.",
			},
			{
				Slug:        "vision360",
				Title:       "Vision360",
				Description: "Data-visualisation platform focused on usability, advanced prototyping, and a clear narrative for decision makers.",
			},
			{
				Slug:        "receita-facil",
				Title:       "Receita Fácil",
				Description: "Mobile-first experience that helps busy people adopt healthier eating habits through an intuitive journey.",
			},
		},

		ContactHeading: "Get in touch",
		ContactIntro:   "You can reach me through the channels below. I will get back to you as soon as possible.",
		ContactLabels: ContactLabels{
			WhatsApp: "WhatsApp",
			Email:    "Email",
		},

		CaseStudyBack:    "Back to projects",
		CaseStudyReading: "min read",
	},
	PT: {
		Nav: []NavEntry{
			{Label: "Início", Href: AnchorHome},
			{Label: "Sobre", Href: AnchorAbout},
			{Label: "Projetos", Href: AnchorProjects},
			{Label: "Contato", Href: AnchorContact},
		},

		HeroTitle: "Interfaces que acolhem, orientam e criam valor para negócios e pessoas.",

		AboutHeading: "Sobre mim",
		AboutParagraphs: []string{
			"Atuo como designer de produto e interface, criando produtos digitais funcionais, acessíveis e orientados às necessidades das pessoas. Minha experiência com desenvolvimento front-end me ajuda a propor soluções viáveis desde o início, reduzindo retrabalhos e aproximando design e implementação.",
			"Minha formação combina tecnologia e comunicação. Iniciei Sistemas de Informação na UFPA, mas encontrei meu foco em Comunicação Social – Publicidade e Propaganda, onde aprofundei direção de arte e criação visual.",
			"Antes disso, ainda criança, eu já explorava design sem perceber, ajustando layouts e testando cores no meu blog de Pokémon. Foi ali que descobri o prazer de criar experiências visuais.",
			"Também passei pela área de tecnologia como gerente de infraestrutura de redes e gestor de TI, liderando equipes e projetos técnicos. Essa vivência define muito de como trabalho hoje: unir clareza visual, compreensão técnica e experiência de produto.",
		},

		ProjectsHeading: "Projetos em destaque",
		ProjectsIntro:   "Cada projeto que desenvolvo equilibra clareza estratégica e uma abordagem visual precisa. Aqui reúno estudos de caso que mostram como transformo insights em experiências digitais completas, conectando marca, produto e pessoas.",
		Projects: []Project{
			{
				Slug:        "encibra",
				Title:       "Encibra",
				Description: "Reposicionamento digital completo para uma empresa de engenharia, reforçando credibilidade e escalabilidade em múltiplos pontos de contato.",
			},
			{
				Slug:        "vision360",
				Title:       "Vision360",
				Description: "Plataforma de visualização de dados com foco em usabilidade, prototipação avançada e narrativa clara para quem decide.",
			},
			{
				Slug:        "receita-facil",
				Title:       "Receita Fácil",
				Description: "Experiência mobile-first que conecta alimentação saudável a uma jornada intuitiva para pessoas ocupadas.",
			},
		},

		ContactHeading: "Fale comigo",
		ContactIntro:   "Você pode falar comigo pelos canais abaixo. Responderei assim que possível.",
		ContactLabels: ContactLabels{
			WhatsApp: "Whatsapp",
			Email:    "E-mail",
		},

		CaseStudyBack:    "Voltar aos projetos",
		CaseStudyReading: "min de leitura",
	},
}

// Get returns the copy for the given language
func Get(lang Lang) Copy {
	if c, ok := translations[lang]; ok {
		return c
	}
	return translations[EN] // Default to English
}

// GetLang parses a language string and returns the corresponding Lang
func GetLang(s string) Lang {
	switch s {
	case "pt":
		return PT
	default:
		return EN
	}
}

// IsSupported reports whether s names a language with its own copy.
func IsSupported(s string) bool {
	_, ok := translations[Lang(s)]
	return ok
}

// SupportedLanguages returns all supported languages
func SupportedLanguages() []Lang {
	return []Lang{EN, PT}
}

// OtherLang returns the other language (for language switcher)
func OtherLang(lang Lang) Lang {
	if lang == EN {
		return PT
	}
	return EN
}

// LangName returns the display name for a language
func LangName(lang Lang) string {
	switch lang {
	case PT:
		return "Português"
	default:
		return "English"
	}
}
