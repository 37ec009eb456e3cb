package database

import (
	"github.com/burlang/burlang/internal/database/service"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	sentence    *service.SentenceService
	translation *service.TranslationService
	vote        *service.VoteService
	vocabulary  *service.VocabularyService
	stats       *service.StatsService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, cfg *config.APIConfig, logger *zap.Logger) *Service {
	contributorModel := repository.Contributor()
	sentenceModel := repository.Sentence()
	translationModel := repository.Translation()
	voteModel := repository.Vote()
	wordModel := repository.Word()
	statsModel := repository.Stats()

	return &Service{
		sentence:    service.NewSentence(db, sentenceModel, contributorModel, &cfg.Rewards, logger),
		translation: service.NewTranslation(translationModel, sentenceModel, contributorModel, &cfg.Rewards, logger),
		vote:        service.NewVote(db, voteModel, contributorModel, &cfg.Consensus, &cfg.Rewards, logger),
		vocabulary:  service.NewVocabulary(db, wordModel, contributorModel, &cfg.Rewards, logger),
		stats:       service.NewStats(statsModel, logger),
	}
}

// Sentence returns the sentence service.
func (s *Service) Sentence() *service.SentenceService {
	return s.sentence
}

// Translation returns the translation service.
func (s *Service) Translation() *service.TranslationService {
	return s.translation
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Vocabulary returns the vocabulary service.
func (s *Service) Vocabulary() *service.VocabularyService {
	return s.vocabulary
}

// Stats returns the stats service.
func (s *Service) Stats() *service.StatsService {
	return s.stats
}
