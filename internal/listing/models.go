// internal/listing/models.go
package listing

// Display defaults substituted for missing (or falsy) upstream fields.
const (
	DefaultValue    = "N/A"
	DefaultLocation = "Unknown Location"
	DefaultTitle    = "Boat Rental"
)

// Normalized is the display-ready projection of a raw listing. Every
// field carries a non-empty default; none is ever absent, even when the
// upstream document omitted it.
type Normalized struct {
	Title            string
	Location         string
	Capacity         string
	Price            string
	CalculatedPrice  string
	RateDisplay      string
	Duration         string
	DepartureAnytime bool
	Amenities        []string
	CharterType      string
	TripTypes        []string
	Languages        []string
	Cancellation     string
	Highlights       []string
	Captain          string
}

// Review is a curated review included in downstream processing. At least
// one of PublicReview/PrivateNote is non-empty, both already trimmed.
type Review struct {
	Rating                 *float64
	DateCreated            string
	ListingAccuracy        *float64
	DepartureAndReturn     *float64
	VesselAndEquipment     *float64
	Communication          *float64
	Value                  *float64
	ItineraryAndExperience *float64
	PublicReview           string
	PrivateNote            string
}

// Text returns the review's usable text: the public review when present,
// otherwise the private note.
func (r Review) Text() string {
	if r.PublicReview != "" {
		return r.PublicReview
	}
	return r.PrivateNote
}
