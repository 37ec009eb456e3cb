package types

import (
	"time"

	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/google/uuid"
)

// Contributor is a platform user tracked by the consensus workflow.
// The ID is issued by the external auth service; the rating counter only
// ever grows through workflow events.
type Contributor struct {
	ID          uint64    `bun:",pk"               json:"id"`
	DisplayName string    `bun:",notnull"          json:"displayName"`
	Rating      int64     `bun:",notnull,default:0" json:"rating"`
	CreatedAt   time.Time `bun:",notnull"          json:"createdAt"`
	UpdatedAt   time.Time `bun:",notnull"          json:"updatedAt"`
}

// Contribution credits a contributor for one authored item. One row per
// (contributor, kind, item) so repeated crediting is naturally idempotent.
type Contribution struct {
	ContributorID uint64                `bun:",pk"      json:"contributorId"`
	Kind          enum.ContributionKind `bun:",pk"      json:"kind"`
	ItemID        uuid.UUID             `bun:",pk,type:uuid" json:"itemId"`
	CreatedAt     time.Time             `bun:",notnull" json:"createdAt"`
}
