package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/samasante/backend/internal/adapters/source"
	"github.com/samasante/backend/internal/infrastructure/clients/postgres"
	"github.com/samasante/backend/internal/infrastructure/clients/typesense"
	"github.com/samasante/backend/internal/infrastructure/observability"
	"github.com/samasante/backend/pkg/config"
)

// seed loads the built-in remedy catalog into PostgreSQL, or into Typesense
// when REMEDY_SOURCE=typesense
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger("samasante-seed", cfg.Server.Env)

	ctx := context.Background()
	catalog := source.SeedCatalog()

	if cfg.Database.RemedySource == "typesense" {
		seedTypesense(ctx, cfg)
	} else {
		seedPostgres(ctx, cfg)
	}

	log.Info().Int("remedies", len(catalog)).Str("target", cfg.Database.RemedySource).Msg("Remedy catalog seeded")
}

func seedPostgres(ctx context.Context, cfg *config.Config) {
	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	pgSource := source.NewPostgresSource(pgClient)
	if err := pgSource.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate remedies table")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating remedies before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE remedies RESTART IDENTITY`); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset remedies table")
		}
	}

	if err := pgSource.Upsert(ctx, source.SeedCatalog()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed remedies")
	}
}

func seedTypesense(ctx context.Context, cfg *config.Config) {
	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Typesense")
	}

	tsSource := source.NewTypesenseSource(tsClient)
	if err := tsSource.EnsureCollection(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure Typesense remedies collection")
	}
	if err := tsSource.Index(ctx, source.SeedCatalog()); err != nil {
		log.Fatal().Err(err).Msg("Failed to index remedies")
	}
}
