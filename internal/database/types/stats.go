package types

import "time"

// HourlyStats is a snapshot of platform counters taken by the stats worker.
type HourlyStats struct {
	Timestamp             time.Time `bun:",pk"      json:"timestamp"`
	Contributors          int64     `bun:",notnull" json:"contributors"`
	SuggestedSentences    int64     `bun:",notnull" json:"suggestedSentences"`
	AcceptedSentences     int64     `bun:",notnull" json:"acceptedSentences"`
	Translations          int64     `bun:",notnull" json:"translations"`
	ConfirmedTranslations int64     `bun:",notnull" json:"confirmedTranslations"`
	SuggestedWords        int64     `bun:",notnull" json:"suggestedWords"`
	AcceptedWords         int64     `bun:",notnull" json:"acceptedWords"`
	Votes                 int64     `bun:",notnull" json:"votes"`
}
