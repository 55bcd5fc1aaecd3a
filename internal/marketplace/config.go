// internal/marketplace/config.go
package marketplace

import "time"

type Config struct {
	BaseURL string
	Timeout time.Duration

	AvailabilityStart string
	AvailabilityEnd   string

	PriceCurrency      string
	PriceDuration      string
	PriceGuests        int
	PriceCaptainOption int
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:            "https://www.getmyboat.com",
		Timeout:            15 * time.Second,
		AvailabilityStart:  "2025-09-24",
		AvailabilityEnd:    "2025-12-31",
		PriceCurrency:      "USD",
		PriceDuration:      "PT4H",
		PriceGuests:        2,
		PriceCaptainOption: 1,
	}
}
