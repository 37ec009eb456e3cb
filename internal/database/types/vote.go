package types

import (
	"time"

	"github.com/google/uuid"
)

// Vote records one contributor's verdict on a translation. The composite
// primary key enforces one vote per (translation, voter); a repeat vote
// changes the stored verdict instead of stacking.
type Vote struct {
	TranslationID uuid.UUID `bun:",pk,type:uuid" json:"translationId"`
	VoterID       uint64    `bun:",pk"           json:"voterId"`
	IsUpvote      bool      `bun:",notnull"      json:"isUpvote"`
	CreatedAt     time.Time `bun:",notnull"      json:"createdAt"`
	UpdatedAt     time.Time `bun:",notnull"      json:"updatedAt"`
}
