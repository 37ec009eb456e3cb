package types

import (
	"time"

	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/google/uuid"
)

// SuggestedSentence is a community-submitted sentence awaiting translation
// and moderation. The raw text is the dedup key and carries a unique
// constraint; a concurrent duplicate submission loses with a duplicate-key
// error and is re-routed to the add-contributor path.
type SuggestedSentence struct {
	ID        uuid.UUID             `bun:",pk,type:uuid"   json:"id"`
	Text      string                `bun:",notnull,unique" json:"text"`
	Language  string                `bun:",notnull"        json:"language"`
	Context   string                `bun:",nullzero"       json:"context,omitempty"`
	AuthorID  uint64                `bun:",notnull"        json:"authorId"`
	Status    enum.SuggestionStatus `bun:",notnull"        json:"status"`
	CreatedAt time.Time             `bun:",notnull"        json:"createdAt"`
	UpdatedAt time.Time             `bun:",notnull"        json:"updatedAt"`
}

// AcceptedSentence is a promoted sentence. Core fields are immutable once
// created; contributor links may still grow.
type AcceptedSentence struct {
	ID         uuid.UUID `bun:",pk,type:uuid"   json:"id"`
	Text       string    `bun:",notnull,unique" json:"text"`
	Language   string    `bun:",notnull"        json:"language"`
	Context    string    `bun:",nullzero"       json:"context,omitempty"`
	AuthorID   uint64    `bun:",notnull"        json:"authorId"`
	AcceptedBy uint64    `bun:",notnull"        json:"acceptedBy"`
	AcceptedAt time.Time `bun:",notnull"        json:"acceptedAt"`
}

// SentenceContributor links a contributor to a sentence they co-authored.
// One row per pair gives the contributor set its set semantics.
type SentenceContributor struct {
	SentenceID    uuid.UUID `bun:",pk,type:uuid" json:"sentenceId"`
	ContributorID uint64    `bun:",pk"           json:"contributorId"`
	CreatedAt     time.Time `bun:",notnull"      json:"createdAt"`
}
