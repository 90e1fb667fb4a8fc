package extract

import "github.com/joseph-ayodele/label-intake/constants"

// DefaultMinConfidence is the review threshold used when none is configured.
const DefaultMinConfidence = 0.6

// Review decides whether a result can be checked in without a human looking
// at it first.
func Review(r ExtractionResult, minConfidence float64) constants.ReviewStatus {
	if r.Confidence < minConfidence || !r.TrackingNumberValid || r.RecipientName == "" {
		return constants.ReviewNeedsReview
	}
	return constants.ReviewOK
}
