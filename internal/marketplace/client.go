// internal/marketplace/client.go
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"listing-summary/internal/common/errors"
	"listing-summary/internal/common/httpclient"
	"listing-summary/internal/common/logger"
	"listing-summary/internal/common/metrics"
)

// PriceSentinel is returned when the calculated price is unavailable.
const PriceSentinel = "N/A"

// Client issues read-only requests against the marketplace API. Every
// fetch degrades to an empty/default value on failure so a broken
// upstream never fails the whole request.
type Client struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log.With(map[string]interface{}{
			"component": "marketplace",
		}),
	}
}

// FetchListing returns the raw listing-detail document, or nil when the
// upstream is unreachable, returns non-200, or sends malformed JSON.
func (c *Client) FetchListing(ctx context.Context, listingID string) *Listing {
	endpoint := fmt.Sprintf("%s/api/v4/search/v1/boats/%s/", c.config.BaseURL, url.PathEscape(listingID))
	params := url.Values{}
	params.Add("strip_tags", "true")

	body, err := c.getJSON(ctx, "listing", endpoint+"?"+params.Encode())
	if err != nil {
		c.logger.Warn("listing fetch degraded to empty", map[string]interface{}{
			"listingId": listingID,
			"error":     errors.NewListingFetchFailedError(listingID, err).Error(),
		})
		return nil
	}

	var listing Listing
	if err := json.Unmarshal(body, &listing); err != nil {
		c.logger.Warn("listing payload malformed, degraded to empty", map[string]interface{}{
			"listingId": listingID,
			"error":     err.Error(),
		})
		return nil
	}

	// Shape mismatches are logged only; defaults mask them downstream.
	c.warnOnSchemaMismatch(listingID, body)

	return &listing
}

// FetchReviews returns the raw review list for a boat, or an empty slice
// on any failure. Filtering and ranking live in the listing package.
func (c *Client) FetchReviews(ctx context.Context, boatID string) []Review {
	endpoint := fmt.Sprintf("%s/api/v4/boats/%s/reviews/", c.config.BaseURL, url.PathEscape(boatID))

	body, err := c.getJSON(ctx, "reviews", endpoint)
	if err != nil {
		c.logger.Warn("reviews fetch degraded to empty", map[string]interface{}{
			"boatId": boatID,
			"error":  errors.NewReviewsFetchFailedError(boatID, err).Error(),
		})
		return []Review{}
	}

	var resp reviewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("reviews payload malformed, degraded to empty", map[string]interface{}{
			"boatId": boatID,
			"error":  err.Error(),
		})
		return []Review{}
	}

	if len(resp.BoatReviews) > 0 {
		return resp.BoatReviews
	}
	return resp.Results
}

// FetchAvailability returns availability date ranges for the configured
// default window, or an empty slice on failure.
func (c *Client) FetchAvailability(ctx context.Context, boatID string) []AvailabilityRange {
	params := url.Values{}
	params.Add("boat_id", boatID)
	params.Add("start_date", c.config.AvailabilityStart)
	params.Add("end_date", c.config.AvailabilityEnd)
	endpoint := fmt.Sprintf("%s/api/v4/instabook/availability_dates_only/?%s", c.config.BaseURL, params.Encode())

	body, err := c.getJSON(ctx, "availability", endpoint)
	if err != nil {
		c.logger.Warn("availability fetch degraded to empty", map[string]interface{}{
			"boatId": boatID,
			"error":  errors.NewAvailabilityFetchFailedError(boatID, err).Error(),
		})
		return []AvailabilityRange{}
	}

	var ranges []AvailabilityRange
	if err := json.Unmarshal(body, &ranges); err != nil {
		c.logger.Warn("availability payload malformed, degraded to empty", map[string]interface{}{
			"boatId": boatID,
			"error":  err.Error(),
		})
		return []AvailabilityRange{}
	}
	return ranges
}

// FetchPrice returns the display price calculated for the configured
// default trip parameters, or PriceSentinel when unavailable.
func (c *Client) FetchPrice(ctx context.Context, boatID string) string {
	params := url.Values{}
	params.Add("currency", c.config.PriceCurrency)
	params.Add("duration", c.config.PriceDuration)
	params.Add("guests", strconv.Itoa(c.config.PriceGuests))
	params.Add("captain_option", strconv.Itoa(c.config.PriceCaptainOption))
	endpoint := fmt.Sprintf("%s/api/v4/boats/%s/calculate_price/?%s", c.config.BaseURL, url.PathEscape(boatID), params.Encode())

	body, err := c.getJSON(ctx, "price", endpoint)
	if err != nil {
		c.logger.Warn("price fetch degraded to sentinel", map[string]interface{}{
			"boatId": boatID,
			"error":  errors.NewPriceFetchFailedError(boatID, err).Error(),
		})
		return PriceSentinel
	}

	var resp priceResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.DisplayPrice == "" {
		return PriceSentinel
	}
	return resp.DisplayPrice
}

// ResolveBoatID picks the identifier used by the sibling endpoints: the
// listing's own id, else its boat_id, else the original input.
func ResolveBoatID(listing *Listing, listingID string) string {
	if listing != nil {
		if listing.ID != "" {
			return listing.ID.String()
		}
		if listing.BoatID != "" {
			return listing.BoatID.String()
		}
	}
	return listingID
}

// getJSON performs one GET with no retries and returns the body on 200.
func (c *Client) getJSON(ctx context.Context, endpointLabel, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpointLabel, "error").Inc()
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpointLabel, "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(endpointLabel, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
