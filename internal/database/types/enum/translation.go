package enum

// TranslationStatus represents the lifecycle state of a submitted translation.
//
//go:generate go tool enumer -type=TranslationStatus -trimprefix=TranslationStatus
type TranslationStatus int

const (
	// TranslationStatusProcessing marks a translation still collecting votes.
	TranslationStatusProcessing TranslationStatus = iota
	// TranslationStatusAccepted marks a translation promoted by the community.
	TranslationStatusAccepted
	// TranslationStatusRejected marks a translation declined by a moderator.
	TranslationStatusRejected
)
