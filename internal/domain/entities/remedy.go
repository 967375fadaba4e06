package entities

// Remedy is a named home or traditional treatment suggestion for a symptom.
// Values are treated as immutable once produced.
type Remedy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Symptom     string `json:"symptom"`
	ImageURL    string `json:"imageUrl"`
	IsGenerated bool   `json:"isGenerated"`
}

// CloneRemedies returns a copy of the slice so callers cannot mutate shared
// cache entries. A nil input yields an empty, non-nil slice.
func CloneRemedies(in []Remedy) []Remedy {
	out := make([]Remedy, len(in))
	copy(out, in)
	return out
}

// RemedyOrigin tells the client where a remedy list came from
type RemedyOrigin string

const (
	RemedyOriginCatalog   RemedyOrigin = "catalog"
	RemedyOriginGenerated RemedyOrigin = "generated"
	RemedyOriginNone      RemedyOrigin = "none"
)

// CatalogRemedy is a catalog record with multilingual text, as stored by the
// remedy sources.
type CatalogRemedy struct {
	Name         string
	Symptoms     []string
	Descriptions map[string]string
	ImageURL     string
	Popular      bool
}

// Catalog description languages
const (
	LangFrench  = "fr"
	LangEnglish = "en"
	LangWolof   = "wo"
)

// DescriptionLanguage maps a locale tag onto a catalog description language.
// French is the default; Franco-Wolof content is written on a French base.
func DescriptionLanguage(tag string) string {
	switch tag {
	case "en", "en-us", "en-gb", "english":
		return LangEnglish
	case "wo", "wo-sn", "wolof":
		return LangWolof
	default:
		return LangFrench
	}
}

// Localize projects a catalog record onto a Remedy for the given language
// and matched symptom.
func (c CatalogRemedy) Localize(language, symptom string) Remedy {
	desc := c.Descriptions[DescriptionLanguage(language)]
	if desc == "" {
		desc = c.Descriptions[LangFrench]
	}
	if symptom == "" && len(c.Symptoms) > 0 {
		symptom = c.Symptoms[0]
	}
	return Remedy{
		Name:        c.Name,
		Description: desc,
		Symptom:     symptom,
		ImageURL:    c.ImageURL,
	}
}
