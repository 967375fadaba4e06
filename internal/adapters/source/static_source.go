package source

import (
	"context"
	"strings"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
)

// StaticSource serves remedies from an in-memory catalog
type StaticSource struct {
	catalog []entities.CatalogRemedy
}

// NewStaticSource creates a source over the built-in catalog
func NewStaticSource() providers.RemedySource {
	return NewStaticSourceWithCatalog(seedCatalog)
}

// NewStaticSourceWithCatalog creates a source over the given records
func NewStaticSourceWithCatalog(catalog []entities.CatalogRemedy) *StaticSource {
	return &StaticSource{catalog: catalog}
}

// FetchRemedies returns popular remedies for an empty symptom, otherwise the
// remedies tagged with a matching symptom.
func (s *StaticSource) FetchRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(symptom))
	lang := strings.ToLower(strings.TrimSpace(language))

	remedies := []entities.Remedy{}
	for _, record := range s.catalog {
		if query == "" {
			if record.Popular {
				remedies = append(remedies, record.Localize(lang, ""))
			}
			continue
		}
		if tag, ok := matchSymptom(record.Symptoms, query); ok {
			remedies = append(remedies, record.Localize(lang, tag))
		}
	}
	return remedies, nil
}

// matchSymptom matches when a tag contains the query or the query mentions the tag.
func matchSymptom(tags []string, query string) (string, bool) {
	for _, tag := range tags {
		if strings.Contains(tag, query) || containsWord(query, tag) {
			return tag, true
		}
	}
	return "", false
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		end := idx + len(word)
		if (idx == 0 || !isLetter(text[idx-1])) && (end == len(text) || !isLetter(text[end])) {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += next + 1
	}
	return false
}

// isLetter treats every non-ASCII byte as part of a word so accented
// letters never act as boundaries.
func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80
}
