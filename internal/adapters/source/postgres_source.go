package source

import (
	"context"
	"database/sql"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/samasante/backend/pkg/errors"
)

const remediesTable = "remedies"

// Schema creates the remedies table. Safe to run on every start.
const Schema = `
CREATE TABLE IF NOT EXISTS remedies (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL UNIQUE,
	symptoms       TEXT[] NOT NULL DEFAULT '{}',
	description_fr TEXT NOT NULL,
	description_en TEXT,
	description_wo TEXT,
	image_url      TEXT,
	popular        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_remedies_symptoms ON remedies USING GIN (symptoms);
CREATE INDEX IF NOT EXISTS idx_remedies_popular ON remedies (popular) WHERE popular;
`

// PostgresSource reads the remedy catalog from PostgreSQL
type PostgresSource struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresSource creates a new PostgreSQL remedy source
func NewPostgresSource(client *postgres.Client) *PostgresSource {
	return &PostgresSource{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Migrate applies the remedies schema
func (s *PostgresSource) Migrate(ctx context.Context) error {
	if _, err := s.client.DB().ExecContext(ctx, Schema); err != nil {
		return apperrors.NewInternalError("failed to migrate remedies table", err)
	}
	return nil
}

// FetchRemedies implements RemedySource with the same matching rules as StaticSource
func (s *PostgresSource) FetchRemedies(ctx context.Context, symptom, language string) ([]entities.Remedy, error) {
	query := strings.ToLower(strings.TrimSpace(symptom))
	lang := strings.ToLower(strings.TrimSpace(language))

	ds := s.db.From(remediesTable).Prepared(true).Select(
		"name", "symptoms", "description_fr", "description_en", "description_wo", "image_url", "popular",
	)
	if query == "" {
		ds = ds.Where(goqu.C("popular").IsTrue())
	} else {
		// Candidates only; word boundaries are enforced by matchSymptom below.
		ds = ds.Where(goqu.L(
			`EXISTS (SELECT 1 FROM unnest(symptoms) AS tag WHERE tag LIKE ? ESCAPE '\' OR position(tag in ?) > 0)`,
			"%"+escapeLike(query)+"%", query,
		))
	}
	ds = ds.Order(goqu.C("popular").Desc(), goqu.C("name").Asc())

	sqlQuery, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build remedies query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to query remedies", err)
	}
	defer rows.Close()

	remedies := []entities.Remedy{}
	for rows.Next() {
		record, err := scanCatalogRemedy(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan remedy", err)
		}

		tag := ""
		if query != "" {
			matched, ok := matchSymptom(record.Symptoms, query)
			if !ok {
				continue
			}
			tag = matched
		}
		remedies = append(remedies, record.Localize(lang, tag))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewUpstreamError("failed to read remedies", err)
	}

	return remedies, nil
}

// Upsert inserts or refreshes catalog records by name
func (s *PostgresSource) Upsert(ctx context.Context, records []entities.CatalogRemedy) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, goqu.Record{
			"name":           r.Name,
			"symptoms":       pq.Array(lowerAll(r.Symptoms)),
			"description_fr": r.Descriptions[entities.LangFrench],
			"description_en": nullString(r.Descriptions[entities.LangEnglish]),
			"description_wo": nullString(r.Descriptions[entities.LangWolof]),
			"image_url":      nullString(r.ImageURL),
			"popular":        r.Popular,
		})
	}

	query, args, err := s.db.Insert(remediesTable).Prepared(true).Rows(rows...).
		OnConflict(goqu.DoUpdate("name", goqu.Record{
			"symptoms":       goqu.L("EXCLUDED.symptoms"),
			"description_fr": goqu.L("EXCLUDED.description_fr"),
			"description_en": goqu.L("EXCLUDED.description_en"),
			"description_wo": goqu.L("EXCLUDED.description_wo"),
			"image_url":      goqu.L("EXCLUDED.image_url"),
			"popular":        goqu.L("EXCLUDED.popular"),
			"updated_at":     goqu.L("NOW()"),
		})).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert remedies", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCatalogRemedy(row rowScanner) (entities.CatalogRemedy, error) {
	var (
		record   entities.CatalogRemedy
		symptoms pq.StringArray
		descFR   string
		descEN   sql.NullString
		descWO   sql.NullString
		imageURL sql.NullString
	)
	if err := row.Scan(&record.Name, &symptoms, &descFR, &descEN, &descWO, &imageURL, &record.Popular); err != nil {
		return record, err
	}

	record.Symptoms = []string(symptoms)
	record.Descriptions = map[string]string{entities.LangFrench: descFR}
	if descEN.Valid {
		record.Descriptions[entities.LangEnglish] = descEN.String
	}
	if descWO.Valid {
		record.Descriptions[entities.LangWolof] = descWO.String
	}
	record.ImageURL = imageURL.String
	return record, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
