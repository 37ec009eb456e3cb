package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Lookup indexes; the dedup uniqueness constraints are declared on
		// the models themselves and created with the tables.
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_translations_sentence ON translations (sentence_id)",
			"CREATE INDEX IF NOT EXISTS idx_translations_created ON translations (created_at)",
			"CREATE INDEX IF NOT EXISTS idx_confirmed_translations_sentence ON confirmed_translations (sentence_id)",
			"CREATE INDEX IF NOT EXISTS idx_suggested_sentences_status ON suggested_sentences (status)",
			"CREATE INDEX IF NOT EXISTS idx_suggested_words_status ON suggested_words (status)",
			"CREATE INDEX IF NOT EXISTS idx_contributions_contributor ON contributions (contributor_id)",
			"CREATE INDEX IF NOT EXISTS idx_contributors_rating ON contributors (rating DESC)",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_contributors_rating",
			"DROP INDEX IF EXISTS idx_contributions_contributor",
			"DROP INDEX IF EXISTS idx_suggested_words_status",
			"DROP INDEX IF EXISTS idx_suggested_sentences_status",
			"DROP INDEX IF EXISTS idx_confirmed_translations_sentence",
			"DROP INDEX IF EXISTS idx_translations_created",
			"DROP INDEX IF EXISTS idx_translations_sentence",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
