// internal/marketplace/models.go
package marketplace

import (
	"encoding/json"
	"strconv"
)

// FlexString accepts a JSON string, number, or null and stores it as a
// string. Upstream identifier and duration fields switch types between
// listings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		*f = FlexString(val)
	case float64:
		*f = FlexString(strconv.FormatFloat(val, 'f', -1, 64))
	case nil:
		*f = ""
	default:
		*f = ""
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

// NamedObject is the upstream {"name": ...} sub-object shape shared by
// location, amenities, trip types, languages, cancellation policy, and
// captain.
type NamedObject struct {
	Name string `json:"name"`
}

// Rate carries the upstream rate details.
type Rate struct {
	DisplayPrice string `json:"display_price"`
}

// Listing is the raw upstream listing-detail document. Every field is
// optional upstream; absent fields decode to zero values, which the
// normalizer treats as missing.
type Listing struct {
	ID                 FlexString    `json:"id"`
	BoatID             FlexString    `json:"boat_id"`
	Title              string        `json:"title"`
	Headline           string        `json:"headline"`
	Description        string        `json:"description"`
	Location           NamedObject   `json:"location"`
	Capacity           int           `json:"capacity"`
	PriceDisplay       string        `json:"price_display"`
	Rate               Rate          `json:"rate"`
	Duration           FlexString    `json:"duration"`
	DepartureAnytime   bool          `json:"departure_anytime"`
	CharterType        string        `json:"charter_type"`
	Amenities          []NamedObject `json:"amenities"`
	TripTypes          []NamedObject `json:"trip_types"`
	LanguagesSpoken    []NamedObject `json:"languages_spoken"`
	CancellationPolicy NamedObject   `json:"cancellation_policy"`
	Highlights         []string      `json:"highlights"`
	Captain            NamedObject   `json:"captain"`
}

// Review is the raw upstream review shape.
type Review struct {
	Rating                 *float64 `json:"rating"`
	DateCreated            string   `json:"date_created"`
	ListingAccuracy        *float64 `json:"listing_accuracy"`
	DepartureAndReturn     *float64 `json:"departure_and_return"`
	VesselAndEquipment     *float64 `json:"vessel_and_equipment"`
	Communication          *float64 `json:"communication"`
	Value                  *float64 `json:"value"`
	ItineraryAndExperience *float64 `json:"itinerary_and_experience"`
	PublicReview           string   `json:"public_review"`
	PrivateNote            string   `json:"private_note"`
}

// reviewsResponse covers both response shapes the reviews endpoint has
// been seen to return.
type reviewsResponse struct {
	BoatReviews []Review `json:"boat_reviews"`
	Results     []Review `json:"results"`
}

// AvailabilityRange is one entry from the availability-dates endpoint.
type AvailabilityRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// priceResponse is the calculate_price endpoint shape.
type priceResponse struct {
	DisplayPrice string `json:"display_price"`
}
