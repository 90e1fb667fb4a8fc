package constants

// ReviewStatus tells the check-in UI whether a result can be accepted as-is.
type ReviewStatus string

// Stable values (shown in exports and CLI output).
const (
	ReviewOK          ReviewStatus = "OK"           // all checks passed
	ReviewNeedsReview ReviewStatus = "NEEDS_REVIEW" // a human should confirm the fields
)
