package types

import (
	"time"

	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/google/uuid"
)

// Translation is a candidate translation competing for community votes.
// Upvotes and downvotes are maintained incrementally as votes land, so the
// net score never requires a rescan of the votes table.
// The (sentence_id, text) pair carries a unique constraint.
type Translation struct {
	ID        uuid.UUID              `bun:",pk,type:uuid"      json:"id"`
	SentenceID uuid.UUID             `bun:"sentence_id,type:uuid,notnull,unique:translations_sentence_text_key" json:"sentenceId"`
	Text      string                 `bun:",notnull,unique:translations_sentence_text_key" json:"text"`
	Language  string                 `bun:",notnull"           json:"language"`
	Dialect   string                 `bun:",nullzero"          json:"dialect,omitempty"`
	AuthorID  uint64                 `bun:",notnull"           json:"authorId"`
	Upvotes   int32                  `bun:",notnull,default:0" json:"upvotes"`
	Downvotes int32                  `bun:",notnull,default:0" json:"downvotes"`
	Status    enum.TranslationStatus `bun:",notnull"           json:"status"`
	CreatedAt time.Time              `bun:",notnull"           json:"createdAt"`
	UpdatedAt time.Time              `bun:",notnull"           json:"updatedAt"`
}

// NetScore returns upvotes minus downvotes.
func (t *Translation) NetScore() int32 {
	return t.Upvotes - t.Downvotes
}

// ConfirmedTranslation is a translation promoted by the vote threshold.
// Promotion is irreversible; the working-store row is deleted in the same
// transaction that creates this one.
type ConfirmedTranslation struct {
	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	SentenceID  uuid.UUID `bun:"sentence_id,type:uuid,notnull" json:"sentenceId"`
	Text        string    `bun:",notnull"      json:"text"`
	Language    string    `bun:",notnull"      json:"language"`
	Dialect     string    `bun:",nullzero"     json:"dialect,omitempty"`
	AuthorID    uint64    `bun:",notnull"      json:"authorId"`
	Upvotes     int32     `bun:",notnull"      json:"upvotes"`
	Downvotes   int32     `bun:",notnull"      json:"downvotes"`
	ConfirmedAt time.Time `bun:",notnull"      json:"confirmedAt"`
}
