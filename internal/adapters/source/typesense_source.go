package source

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
	tsclient "github.com/samasante/backend/internal/infrastructure/clients/typesense"
	apperrors "github.com/samasante/backend/pkg/errors"
)

// RemediesCollection is the Typesense collection holding the catalog
const RemediesCollection = "remedies"

const typesenseMaxHits = 50

// TypesenseSource serves the remedy catalog from Typesense. Typo tolerance
// and accent folding let "fievre" or "fiévre" find remedies tagged "fièvre".
type TypesenseSource struct {
	client *tsclient.Client
}

var _ providers.RemedySource = (*TypesenseSource)(nil)

// NewTypesenseSource creates a new Typesense remedy source
func NewTypesenseSource(client *tsclient.Client) *TypesenseSource {
	return &TypesenseSource{client: client}
}

// EnsureCollection creates the remedies collection when it is missing
func (s *TypesenseSource) EnsureCollection(ctx context.Context) error {
	if _, err := s.client.Client().Collection(RemediesCollection).Retrieve(ctx); err == nil {
		return nil
	}

	// Descriptions and image URLs are stored on the documents but not indexed.
	schema := &api.CollectionSchema{
		Name: RemediesCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "symptoms", Type: "string[]"},
			{Name: "popular", Type: "bool", Facet: pointer.True()},
		},
	}

	if _, err := s.client.Client().Collections().Create(ctx, schema); err != nil {
		return apperrors.NewInternalError("failed to create typesense remedies collection", err)
	}
	return nil
}

// Index upserts catalog records, keyed by a slug of their name
func (s *TypesenseSource) Index(ctx context.Context, records []entities.CatalogRemedy) error {
	for _, record := range records {
		if _, err := s.client.Client().Collection(RemediesCollection).Documents().Upsert(ctx, remedyDocument(record)); err != nil {
			return apperrors.NewInternalError("failed to index remedy "+record.Name, err)
		}
	}
	return nil
}

// FetchRemedies returns popular remedies for an empty symptom, otherwise a
// typo-tolerant match on symptom tags and names.
func (s *TypesenseSource) FetchRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	query := strings.ToLower(strings.TrimSpace(symptom))
	lang := strings.ToLower(strings.TrimSpace(language))

	params := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("symptoms,name"),
		Page:    pointer.Int(1),
		PerPage: pointer.Int(typesenseMaxHits),
	}
	if query == "" {
		params.Q = pointer.String("*")
		params.FilterBy = pointer.String("popular:=true")
	}

	result, err := s.client.Client().Collection(RemediesCollection).Documents().Search(ctx, params)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to search remedies", err)
	}

	records := []entities.CatalogRemedy{}
	if result.Hits != nil {
		for _, hit := range *result.Hits {
			if hit.Document == nil {
				continue
			}
			records = append(records, recordFromDocument(*hit.Document))
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Popular != records[j].Popular {
			return records[i].Popular
		}
		return records[i].Name < records[j].Name
	})

	remedies := make([]entities.Remedy, 0, len(records))
	for _, record := range records {
		tag := ""
		if query != "" {
			tag = closestSymptom(record.Symptoms, query)
		}
		remedies = append(remedies, record.Localize(lang, tag))
	}
	return remedies, nil
}

func remedyDocument(record entities.CatalogRemedy) map[string]interface{} {
	document := map[string]interface{}{
		"id":             documentID(record.Name),
		"name":           record.Name,
		"symptoms":       lowerAll(record.Symptoms),
		"description_fr": record.Descriptions[entities.LangFrench],
		"popular":        record.Popular,
	}
	if desc := record.Descriptions[entities.LangEnglish]; desc != "" {
		document["description_en"] = desc
	}
	if desc := record.Descriptions[entities.LangWolof]; desc != "" {
		document["description_wo"] = desc
	}
	if record.ImageURL != "" {
		document["image_url"] = record.ImageURL
	}
	return document
}

// recordFromDocument reads a search hit back into a catalog record.
// Typesense returns untyped JSON so every field is read defensively.
func recordFromDocument(doc map[string]interface{}) entities.CatalogRemedy {
	record := entities.CatalogRemedy{
		Descriptions: map[string]string{},
	}
	record.Name, _ = doc["name"].(string)
	record.ImageURL, _ = doc["image_url"].(string)
	record.Popular, _ = doc["popular"].(bool)

	if tags, ok := doc["symptoms"].([]interface{}); ok {
		for _, tag := range tags {
			if value, ok := tag.(string); ok {
				record.Symptoms = append(record.Symptoms, value)
			}
		}
	}

	for field, lang := range map[string]string{
		"description_fr": entities.LangFrench,
		"description_en": entities.LangEnglish,
		"description_wo": entities.LangWolof,
	} {
		if desc, ok := doc[field].(string); ok && desc != "" {
			record.Descriptions[lang] = desc
		}
	}
	return record
}

// closestSymptom picks the tag a hit was found by. Exact rules first, then
// the same rules with accents folded. Typo-only hits return "" and fall back
// to the record's first tag.
func closestSymptom(tags []string, query string) string {
	if tag, ok := matchSymptom(tags, query); ok {
		return tag
	}

	folded := make([]string, len(tags))
	for i, tag := range tags {
		folded[i] = foldAccents(tag)
	}
	if match, ok := matchSymptom(folded, foldAccents(query)); ok {
		for i, f := range folded {
			if f == match {
				return tags[i]
			}
		}
	}
	return ""
}

func foldAccents(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return folded
}

func documentID(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(foldAccents(name)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
