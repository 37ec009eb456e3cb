package database

import (
	"github.com/burlang/burlang/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	contributor *models.ContributorModel
	sentence    *models.SentenceModel
	translation *models.TranslationModel
	vote        *models.VoteModel
	word        *models.WordModel
	stats       *models.StatsModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		contributor: models.NewContributor(db, logger),
		sentence:    models.NewSentence(db, logger),
		translation: models.NewTranslation(db, logger),
		vote:        models.NewVote(db, logger),
		word:        models.NewWord(db, logger),
		stats:       models.NewStats(db, logger),
	}
}

// Contributor returns the contributor model repository.
func (r *Repository) Contributor() *models.ContributorModel {
	return r.contributor
}

// Sentence returns the sentence model repository.
func (r *Repository) Sentence() *models.SentenceModel {
	return r.sentence
}

// Translation returns the translation model repository.
func (r *Repository) Translation() *models.TranslationModel {
	return r.translation
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Word returns the word model repository.
func (r *Repository) Word() *models.WordModel {
	return r.word
}

// Stats returns the stats model repository.
func (r *Repository) Stats() *models.StatsModel {
	return r.stats
}
