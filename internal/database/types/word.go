package types

import (
	"time"

	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/google/uuid"
)

// SuggestedWord is a community-submitted vocabulary entry awaiting
// moderation. Unlike sentences, words dedup on the normalized form so
// casing and stray whitespace collapse into one record.
type SuggestedWord struct {
	ID             uuid.UUID             `bun:",pk,type:uuid"   json:"id"`
	Text           string                `bun:",notnull"        json:"text"`
	NormalizedText string                `bun:",notnull,unique" json:"normalizedText"`
	Language       string                `bun:",notnull"        json:"language"`
	Dialect        string                `bun:",nullzero"       json:"dialect,omitempty"`
	AuthorID       uint64                `bun:",notnull"        json:"authorId"`
	Status         enum.SuggestionStatus `bun:",notnull"        json:"status"`
	CreatedAt      time.Time             `bun:",notnull"        json:"createdAt"`
	UpdatedAt      time.Time             `bun:",notnull"        json:"updatedAt"`
}

// Word is an accepted vocabulary entry. The suggested word's ID is carried
// over on acceptance so external references stay valid.
type Word struct {
	ID             uuid.UUID `bun:",pk,type:uuid"   json:"id"`
	Text           string    `bun:",notnull"        json:"text"`
	NormalizedText string    `bun:",notnull,unique" json:"normalizedText"`
	Language       string    `bun:",notnull"        json:"language"`
	Dialect        string    `bun:",nullzero"       json:"dialect,omitempty"`
	AuthorID       uint64    `bun:",notnull"        json:"authorId"`
	AcceptedBy     uint64    `bun:",notnull"        json:"acceptedBy"`
	AcceptedAt     time.Time `bun:",notnull"        json:"acceptedAt"`
}

// DeclinedWord is an append-only archive entry for a declined suggestion.
// Archived rows are never re-surfaced.
type DeclinedWord struct {
	ID             uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Text           string    `bun:",notnull"      json:"text"`
	NormalizedText string    `bun:",notnull"      json:"normalizedText"`
	Language       string    `bun:",notnull"      json:"language"`
	Dialect        string    `bun:",nullzero"     json:"dialect,omitempty"`
	AuthorID       uint64    `bun:",notnull"      json:"authorId"`
	DeclinedBy     uint64    `bun:",notnull"      json:"declinedBy"`
	DeclinedAt     time.Time `bun:",notnull"      json:"declinedAt"`
}

// WordContributor links a contributor to a word they co-suggested.
type WordContributor struct {
	WordID        uuid.UUID `bun:",pk,type:uuid" json:"wordId"`
	ContributorID uint64    `bun:",pk"           json:"contributorId"`
	CreatedAt     time.Time `bun:",notnull"      json:"createdAt"`
}

// WordTranslationLink is one edge between a word and a candidate
// translation word. A single row per edge replaces the paired list appends,
// so a half-written edge cannot exist. Confirmed flips when the linked word
// is accepted.
type WordTranslationLink struct {
	WordID            uuid.UUID `bun:",pk,type:uuid"        json:"wordId"`
	TranslationWordID uuid.UUID `bun:",pk,type:uuid"        json:"translationWordId"`
	Confirmed         bool      `bun:",notnull,default:false" json:"confirmed"`
	CreatedAt         time.Time `bun:",notnull"             json:"createdAt"`
}
