// Package rest assembles the REST API server.
package rest

import (
	"net/http"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/rest/handler"
	"github.com/burlang/burlang/internal/rest/middleware/auth"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/burlang/burlang/internal/watcher"
	"github.com/klauspost/compress/gzhttp"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	sentenceHandler    *handler.SentenceHandler
	translationHandler *handler.TranslationHandler
	vocabularyHandler  *handler.VocabularyHandler
	moderationHandler  *handler.ModerationHandler
	statsHandler       *handler.StatsHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db database.Client, watcherManager *watcher.Manager, config *config.APIConfig, logger *zap.Logger,
) http.Handler {
	server := &Server{
		sentenceHandler:    handler.NewSentenceHandler(db, logger),
		translationHandler: handler.NewTranslationHandler(db, logger),
		vocabularyHandler:  handler.NewVocabularyHandler(db, logger),
		moderationHandler: handler.NewModerationHandler(
			db, watcherManager, config.Consensus.WatcherTTLSeconds, logger),
		statsHandler: handler.NewStatsHandler(db, logger),
	}

	authMiddleware := auth.New(&config.Auth, logger)

	router := bunrouter.New()

	// Stats are public; everything else requires a verified contributor
	router.GET("/v1/stats", server.statsHandler.GetStats)

	router.Use(authMiddleware.AsRESTMiddleware).WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/sentences", server.sentenceHandler.CreateSentence)
		g.POST("/sentences/create-sentences-multiple", server.sentenceHandler.CreateSentences)
		g.GET("/sentences/:id", server.sentenceHandler.GetSentence)
		g.PUT("/sentences/:id/accept", server.sentenceHandler.AcceptSentence)
		g.PUT("/sentences/:id/reject", server.sentenceHandler.RejectSentence)

		g.POST("/translations", server.translationHandler.CreateTranslation)
		g.POST("/translations/:id/vote", server.translationHandler.Vote)

		g.POST("/vocabulary/suggest-word", server.vocabularyHandler.SuggestWord)
		g.POST("/vocabulary/suggest-translate", server.vocabularyHandler.SuggestTranslate)
		g.POST("/vocabulary/accept-suggested-word", server.vocabularyHandler.AcceptSuggestedWord)
		g.POST("/vocabulary/decline-suggested-word", server.vocabularyHandler.DeclineSuggestedWord)
		g.GET("/words/:id", server.vocabularyHandler.GetWord)

		g.GET("/moderation/next-translation", server.moderationHandler.NextTranslation)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
