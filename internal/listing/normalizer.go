// internal/listing/normalizer.go
package listing

import (
	"strconv"

	"listing-summary/internal/marketplace"
)

// Normalize projects a raw listing document onto the display fields,
// substituting the documented default whenever the upstream value is
// missing or falsy: an empty string, zero, or empty list upstream is
// indistinguishable from absent and becomes the default. The one
// exception is DepartureAnytime, whose default is false, so an upstream
// false is preserved as-is.
//
// calculatedPrice is the display price fetched separately for the
// default trip parameters (PriceSentinel when that fetch degraded).
func Normalize(raw *marketplace.Listing, calculatedPrice string) Normalized {
	if raw == nil {
		raw = &marketplace.Listing{}
	}

	return Normalized{
		Title:            coalesce(raw.Title, DefaultTitle),
		Location:         coalesce(raw.Location.Name, DefaultLocation),
		Capacity:         coalesceInt(raw.Capacity),
		Price:            coalesce(raw.PriceDisplay, DefaultValue),
		CalculatedPrice:  coalesce(calculatedPrice, DefaultValue),
		RateDisplay:      coalesce(raw.Rate.DisplayPrice, DefaultValue),
		Duration:         coalesce(raw.Duration.String(), DefaultValue),
		DepartureAnytime: raw.DepartureAnytime,
		Amenities:        names(raw.Amenities),
		CharterType:      coalesce(raw.CharterType, DefaultValue),
		TripTypes:        names(raw.TripTypes),
		Languages:        names(raw.LanguagesSpoken),
		Cancellation:     coalesce(raw.CancellationPolicy.Name, DefaultValue),
		Highlights:       nonEmpty(raw.Highlights),
		Captain:          coalesce(raw.Captain.Name, DefaultValue),
	}
}

// coalesce replaces an empty string with the default.
func coalesce(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// coalesceInt renders a positive count, treating zero as missing.
func coalesceInt(value int) string {
	if value == 0 {
		return DefaultValue
	}
	return strconv.Itoa(value)
}

// names pulls the name subfield from each entry, dropping empties.
func names(objects []marketplace.NamedObject) []string {
	out := []string{}
	for _, o := range objects {
		if o.Name != "" {
			out = append(out, o.Name)
		}
	}
	return out
}

func nonEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
