// internal/summarize/prompt.go
package summarize

import (
	"fmt"
	"strconv"
	"strings"

	"listing-summary/internal/listing"
)

// NoReviewsText is interpolated into the prompt when no usable reviews
// exist.
const NoReviewsText = "No reviews found."

// BuildSummaryPrompt renders the single-paragraph variant: one 300–600
// character summary plus 4 tags, with the exact response format the
// marker parser depends on.
func BuildSummaryPrompt(n listing.Normalized, reviews []listing.Review) string {
	var b strings.Builder

	b.WriteString("Create a renter-facing summary and 4 experience-focused tags for the following boat rental listing.\n\n")

	b.WriteString("Listing Details:\n")
	b.WriteString(detailsBlock(n))
	b.WriteString("\n\nRecent Reviews:\n")
	b.WriteString(reviewExcerpt(reviews))
	b.WriteString("\n\n")

	b.WriteString("Tone of voice: Write in a tone that is confident, authentic, and optimistic. ")
	b.WriteString("Focus on helping people plan unforgettable celebrations. ")
	b.WriteString("Be straightforward, friendly, and human — not robotic or overly clever.\n\n")

	b.WriteString("Summary: Write a 300–600 character paragraph that highlights what makes this listing easy, fun, and special. ")
	b.WriteString("Mention any great amenities or unique features. ")
	b.WriteString("Use warm, renter-first language that emphasizes experience, affordability, and flexibility.\n\n")

	b.WriteString("Tags: Provide 4 tags renters would associate with this experience. ")
	b.WriteString("Focus on things like occasions, vibe, group size, or boat style.\n\n")

	b.WriteString("Respond with:\n")
	b.WriteString("Summary: <summary>\n")
	b.WriteString("Tags: <tag1>, <tag2>, <tag3>, <tag4>\n")

	return b.String()
}

// BuildBulletsPrompt renders the three-bullet variant: labeled bullets of
// 120–240 characters each plus 4 tags.
func BuildBulletsPrompt(n listing.Normalized, reviews []listing.Review) string {
	var b strings.Builder

	b.WriteString("Turn the following boat rental listing into 3 renter-friendly highlights and 4 tags.\n")
	b.WriteString("The information must not be too generic, we need make sure that the actual data that is available is what is used for creating the bullets and tags.\n")
	b.WriteString("Use Getmyboat's tone of voice: confident, friendly, authentic, and helpful. ")
	b.WriteString("Focus on ease, celebration, and making the renter's job easier.\n\n")

	b.WriteString("Listing Details:\n")
	b.WriteString(detailsBlock(n))
	b.WriteString("\n\nRecent Reviews:\n")
	b.WriteString(reviewExcerpt(reviews))
	b.WriteString("\n\n")

	b.WriteString("- Bullet 1 (Trip Experience): Write a 120–240 character summary of what renters can expect — the vibe, destination, group energy, and how this listing helps make an occasion special.\n")
	b.WriteString("- Bullet 2 (Boat Specific): Write a 120–240 character summary of what the boat offers — amenities, comfort, flexibility, and standout features.\n")
	b.WriteString("- Bullet 3 (Captain/Owner): Write a 120–240 character summary of the captain or owner — their vibe, support, communication, or reviews. ")
	b.WriteString("If the captain's name is not available, do not invent one — simply refer to \"the captain\" or \"the owner\".\n\n")

	b.WriteString("Tags \"Renters say this listing is great for\": 4 simple occasion- or vibe-focused tags that show why the listing is a great experience.\n\n")

	b.WriteString("Respond with:\n")
	b.WriteString("Bullets:\n")
	b.WriteString("- <bullet1>\n")
	b.WriteString("- <bullet2>\n")
	b.WriteString("- <bullet3>\n\n")
	b.WriteString("Tags: <tag1>, <tag2>, <tag3>, <tag4>\n")

	return b.String()
}

// detailsBlock renders the details the prompts share: rate, duration,
// departure flexibility, and the estimated price for the default trip.
func detailsBlock(n listing.Normalized) string {
	anytime := "No"
	if n.DepartureAnytime {
		anytime = "Yes"
	}
	return fmt.Sprintf("Rate: %s\nDuration: %s hours\nAnytime Departure: %s\nEstimated Price (4h/2 guests): %s",
		n.RateDisplay, n.Duration, anytime, n.CalculatedPrice)
}

// reviewExcerpt renders the bulleted review lines, or NoReviewsText when
// the list is empty.
func reviewExcerpt(reviews []listing.Review) string {
	if len(reviews) == 0 {
		return NoReviewsText
	}

	lines := make([]string, 0, len(reviews))
	for _, r := range reviews {
		lines = append(lines, fmt.Sprintf("- %s (⭐️ %s, %s)", r.Text(), formatRating(r.Rating), shortDate(r.DateCreated)))
	}
	return strings.Join(lines, "\n")
}

func formatRating(rating *float64) string {
	if rating == nil {
		return listing.DefaultValue
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

// shortDate keeps the date part of an ISO-8601 timestamp.
func shortDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
