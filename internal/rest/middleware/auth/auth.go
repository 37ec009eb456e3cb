// Package auth verifies bearer tokens issued by the external auth service.
// Identity is established elsewhere; this middleware only checks the HMAC
// signature and extracts the contributor ID for handlers.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/burlang/burlang/internal/setup/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type contextKey int

const contributorKey contextKey = iota

// Claims are the claims carried by auth service tokens.
type Claims struct {
	ContributorID uint64 `json:"contributor_id"`
	jwt.RegisteredClaims
}

// Middleware validates Authorization headers on REST requests.
type Middleware struct {
	secret []byte
	logger *zap.Logger
}

// New creates a new auth middleware.
func New(config *config.AuthConfig, logger *zap.Logger) *Middleware {
	return &Middleware{
		secret: []byte(config.JWTSecret),
		logger: logger.Named("auth"),
	}
}

// AsRESTMiddleware rejects requests without a valid bearer token and stores
// the contributor ID on the request context for handlers.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return nil
		}

		claims := &Claims{}

		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !parsed.Valid || claims.ContributorID == 0 {
			m.logger.Debug("Rejected token", zap.Error(err))
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return nil
		}

		ctx := context.WithValue(req.Context(), contributorKey, claims.ContributorID)

		return next(w, req.WithContext(ctx))
	}
}

// ContributorID returns the authenticated contributor ID from the context.
func ContributorID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(contributorKey).(uint64)
	return id, ok
}
