// internal/listing/reviews.go
package listing

import (
	"sort"
	"strings"

	"listing-summary/internal/marketplace"
)

const (
	// maxCandidates caps how many usable reviews are collected before
	// sorting; collection stops early once reached.
	maxCandidates = 20

	// maxReviews caps the final list after the newest-first sort.
	maxReviews = 10
)

// FilterReviews selects the reviews worth showing: it drops reviews with
// no usable text, collects at most 20 candidates, orders them newest
// first, and keeps the first 10.
//
// The sort key is the raw date_created string; lexicographic order on an
// ISO-8601 timestamp is chronological order. A review with a null rating
// is kept as long as it has text.
func FilterReviews(raws []marketplace.Review) []Review {
	candidates := make([]Review, 0, maxCandidates)
	for _, r := range raws {
		pub := strings.TrimSpace(r.PublicReview)
		note := strings.TrimSpace(r.PrivateNote)
		if pub == "" && note == "" {
			continue
		}

		candidates = append(candidates, Review{
			Rating:                 r.Rating,
			DateCreated:            r.DateCreated,
			ListingAccuracy:        r.ListingAccuracy,
			DepartureAndReturn:     r.DepartureAndReturn,
			VesselAndEquipment:     r.VesselAndEquipment,
			Communication:          r.Communication,
			Value:                  r.Value,
			ItineraryAndExperience: r.ItineraryAndExperience,
			PublicReview:           pub,
			PrivateNote:            note,
		})
		if len(candidates) >= maxCandidates {
			break
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DateCreated > candidates[j].DateCreated
	})

	if len(candidates) > maxReviews {
		candidates = candidates[:maxReviews]
	}
	return candidates
}
