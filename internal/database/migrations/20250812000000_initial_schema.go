package migrations

import (
	"context"
	"fmt"

	"github.com/burlang/burlang/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Contributor)(nil),
			(*types.Contribution)(nil),
			(*types.SuggestedSentence)(nil),
			(*types.AcceptedSentence)(nil),
			(*types.SentenceContributor)(nil),
			(*types.Translation)(nil),
			(*types.ConfirmedTranslation)(nil),
			(*types.Vote)(nil),
			(*types.SuggestedWord)(nil),
			(*types.Word)(nil),
			(*types.DeclinedWord)(nil),
			(*types.WordContributor)(nil),
			(*types.WordTranslationLink)(nil),
			(*types.HourlyStats)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.HourlyStats)(nil),
			(*types.WordTranslationLink)(nil),
			(*types.WordContributor)(nil),
			(*types.DeclinedWord)(nil),
			(*types.Word)(nil),
			(*types.SuggestedWord)(nil),
			(*types.Vote)(nil),
			(*types.ConfirmedTranslation)(nil),
			(*types.Translation)(nil),
			(*types.SentenceContributor)(nil),
			(*types.AcceptedSentence)(nil),
			(*types.SuggestedSentence)(nil),
			(*types.Contribution)(nil),
			(*types.Contributor)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %T: %w", model, err)
			}
		}

		return nil
	})
}
