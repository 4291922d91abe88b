package settings

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Presentation is what a rendering layer applies: the theme, the root font
// size, the document language and the labels of the settings screen.
type Presentation struct {
	Theme    string            `json:"theme"`
	FontSize string            `json:"fontSize"`
	Lang     string            `json:"lang"`
	Labels   map[string]string `json:"labels"`
}

// LabelKeys lists the settings screen labels.
var LabelKeys = []string{
	"title", "darkMode", "fontSize", "language",
	"small", "medium", "large", "english", "greek",
}

var labels = map[string]map[string]string{
	LangEnglish: {
		"title":    "Settings",
		"darkMode": "Dark Mode",
		"fontSize": "Font Size",
		"language": "Language",
		"small":    "Small",
		"medium":   "Medium",
		"large":    "Large",
		"english":  "English",
		"greek":    "Greek",
	},
	LangGreek: {
		"title":    "Ρυθμίσεις",
		"darkMode": "Σκοτεινή Λειτουργία",
		"fontSize": "Μέγεθος Γραμματοσειράς",
		"language": "Γλώσσα",
		"small":    "Μικρό",
		"medium":   "Μεσαίο",
		"large":    "Μεγάλο",
		"english":  "Αγγλικά",
		"greek":    "Ελληνικά",
	},
}

// Translate returns the label for key in lang. Unknown languages use
// English and unknown keys return the key itself.
func Translate(lang, key string) string {
	table, ok := labels[lang]
	if !ok {
		table = labels[LangEnglish]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Apply derives the presentation for these settings.
func (s Settings) Apply() Presentation {
	s = s.normalize()

	p := Presentation{
		Theme:    ThemeLight,
		FontSize: s.FontSize,
		Lang:     s.Language,
		Labels:   make(map[string]string, len(LabelKeys)),
	}
	if s.DarkMode {
		p.Theme = ThemeDark
	}
	for _, k := range LabelKeys {
		p.Labels[k] = Translate(s.Language, k)
	}
	return p
}
