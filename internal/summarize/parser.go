// internal/summarize/parser.go
package summarize

import (
	"strings"

	"listing-summary/internal/common/errors"
)

// Section markers the prompts instruct the model to emit. The parser
// slices the completion text around these literals.
const (
	markerSummary = "Summary:"
	markerBullets = "Bullets:"
	markerTags    = "Tags:"
)

// ResponseParser extracts typed output from raw completion text. The
// marker-based implementation matches the current prompt contract; a
// structured-output mode can replace it without touching callers.
type ResponseParser interface {
	ParseSummary(content string) (summary string, tags []string, err error)
	ParseBullets(content string) (bullets []string, tags []string, err error)
}

// MarkerParser splits completion text on the fixed section markers.
type MarkerParser struct{}

func NewMarkerParser() *MarkerParser {
	return &MarkerParser{}
}

// ParseSummary expects "Summary: <text> Tags: <a>, <b>, ...". A missing
// marker is an error for the request boundary to handle.
func (p *MarkerParser) ParseSummary(content string) (string, []string, error) {
	afterSummary, err := after(content, markerSummary, "summary")
	if err != nil {
		return "", nil, err
	}

	tagsIdx := strings.Index(afterSummary, markerTags)
	if tagsIdx < 0 {
		return "", nil, errors.NewMarkerNotFoundError(markerTags, "summary")
	}

	summary := strings.TrimSpace(afterSummary[:tagsIdx])
	tags := splitTags(afterSummary[tagsIdx+len(markerTags):])
	return summary, tags, nil
}

// ParseBullets expects "Bullets:" followed by "- " lines, then "Tags:".
func (p *MarkerParser) ParseBullets(content string) ([]string, []string, error) {
	afterBullets, err := after(content, markerBullets, "bullets")
	if err != nil {
		return nil, nil, err
	}

	tagsIdx := strings.Index(afterBullets, markerTags)
	if tagsIdx < 0 {
		return nil, nil, errors.NewMarkerNotFoundError(markerTags, "bullets")
	}

	bullets := splitBullets(afterBullets[:tagsIdx])
	tags := splitTags(afterBullets[tagsIdx+len(markerTags):])
	return bullets, tags, nil
}

// after returns the text following the first occurrence of marker.
func after(content, marker, variant string) (string, error) {
	idx := strings.Index(content, marker)
	if idx < 0 {
		return "", errors.NewMarkerNotFoundError(marker, variant)
	}
	return content[idx+len(marker):], nil
}

// splitTags splits the raw tag segment on commas, trimming each piece.
// The count is not enforced; the model may return more or fewer than 4.
func splitTags(raw string) []string {
	pieces := strings.Split(strings.TrimSpace(raw), ",")
	tags := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		tags = append(tags, strings.TrimSpace(piece))
	}
	return tags
}

// splitBullets turns the bullets segment into one entry per non-empty
// line, stripping the leading "- " and surrounding whitespace.
func splitBullets(raw string) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		bullet := strings.TrimSpace(strings.Trim(line, "- "))
		if bullet == "" {
			continue
		}
		bullets = append(bullets, bullet)
	}
	return bullets
}
