package enum

// ContributionKind represents the type of item a contributor is credited for.
//
//go:generate go tool enumer -type=ContributionKind -trimprefix=ContributionKind
type ContributionKind int

const (
	ContributionKindSentence ContributionKind = iota
	ContributionKindTranslation
	ContributionKindWord
	ContributionKindVote
)
