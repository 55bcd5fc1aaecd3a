// internal/summarize/models.go
package summarize

import "listing-summary/internal/listing"

// SummaryVersion is the paragraph+tags generation variant.
type SummaryVersion struct {
	Summary string           `json:"summary"`
	Tags    []string         `json:"tags"`
	Reviews []listing.Review `json:"reviews"`
}

// BulletsVersion is the three-bullets+tags generation variant.
type BulletsVersion struct {
	Bullets []string         `json:"bullets"`
	Tags    []string         `json:"tags"`
	Reviews []listing.Review `json:"reviews"`
}
