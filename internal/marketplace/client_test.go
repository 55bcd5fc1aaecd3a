// internal/marketplace/client_test.go
package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-summary/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestClient(t *testing.T, baseURL string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg, logger.NewTestLogger(t))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ==========================
// Listing Fetch Tests
// ==========================

func TestFetchListing_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/search/v1/boats/12345/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("strip_tags"))
		writeJSON(t, w, map[string]interface{}{
			"id":       12345,
			"title":    "Sunset Cruiser",
			"capacity": 8,
			"location": map[string]interface{}{"name": "Miami, FL"},
			"rate":     map[string]interface{}{"display_price": "$150/hr"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got := client.FetchListing(context.Background(), "12345")

	require.NotNil(t, got)
	assert.Equal(t, "Sunset Cruiser", got.Title)
	assert.Equal(t, 8, got.Capacity)
	assert.Equal(t, "Miami, FL", got.Location.Name)
	assert.Equal(t, "$150/hr", got.Rate.DisplayPrice)
	assert.Equal(t, "12345", got.ID.String())
}

func TestFetchListing_Non200_ReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Nil(t, client.FetchListing(context.Background(), "absent"))
}

func TestFetchListing_MalformedJSON_ReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Nil(t, client.FetchListing(context.Background(), "12345"))
}

func TestFetchListing_Unreachable_ReturnsNil(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")
	assert.Nil(t, client.FetchListing(context.Background(), "12345"))
}

func TestFetchListing_StringID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{"id": "abc-123"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got := client.FetchListing(context.Background(), "abc-123")

	require.NotNil(t, got)
	assert.Equal(t, "abc-123", got.ID.String())
}

// ==========================
// Boat ID Resolution Tests
// ==========================

func TestResolveBoatID(t *testing.T) {
	assert.Equal(t, "77", ResolveBoatID(&Listing{ID: "77", BoatID: "88"}, "99"))
	assert.Equal(t, "88", ResolveBoatID(&Listing{BoatID: "88"}, "99"))
	assert.Equal(t, "99", ResolveBoatID(&Listing{}, "99"))
	assert.Equal(t, "99", ResolveBoatID(nil, "99"))
}

// ==========================
// Reviews Fetch Tests
// ==========================

func TestFetchReviews_BoatReviewsShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/boats/77/reviews/", r.URL.Path)
		writeJSON(t, w, map[string]interface{}{
			"boat_reviews": []map[string]interface{}{
				{"public_review": "Great trip!", "rating": 5, "date_created": "2024-06-01T12:00:00Z"},
				{"private_note": "Owner was kind", "rating": nil, "date_created": "2024-05-01T12:00:00Z"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got := client.FetchReviews(context.Background(), "77")

	require.Len(t, got, 2)
	assert.Equal(t, "Great trip!", got[0].PublicReview)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 5.0, *got[0].Rating)
	assert.Nil(t, got[1].Rating)
}

func TestFetchReviews_ResultsShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"results": []map[string]interface{}{
				{"public_review": "Nice boat"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got := client.FetchReviews(context.Background(), "77")

	require.Len(t, got, 1)
	assert.Equal(t, "Nice boat", got[0].PublicReview)
}

func TestFetchReviews_Non200_ReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Empty(t, client.FetchReviews(context.Background(), "77"))
}

// ==========================
// Availability Fetch Tests
// ==========================

func TestFetchAvailability_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/instabook/availability_dates_only/", r.URL.Path)
		assert.Equal(t, "77", r.URL.Query().Get("boat_id"))
		assert.Equal(t, "2025-09-24", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-12-31", r.URL.Query().Get("end_date"))
		writeJSON(t, w, []map[string]string{
			{"start_date": "2025-10-01", "end_date": "2025-10-05"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got := client.FetchAvailability(context.Background(), "77")

	require.Len(t, got, 1)
	assert.Equal(t, "2025-10-01", got[0].StartDate)
}

func TestFetchAvailability_Failure_ReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Empty(t, client.FetchAvailability(context.Background(), "77"))
}

// ==========================
// Price Fetch Tests
// ==========================

func TestFetchPrice_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/boats/77/calculate_price/", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("currency"))
		assert.Equal(t, "PT4H", r.URL.Query().Get("duration"))
		assert.Equal(t, "2", r.URL.Query().Get("guests"))
		assert.Equal(t, "1", r.URL.Query().Get("captain_option"))
		writeJSON(t, w, map[string]string{"display_price": "$620"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Equal(t, "$620", client.FetchPrice(context.Background(), "77"))
}

func TestFetchPrice_MissingField_ReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]string{})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Equal(t, PriceSentinel, client.FetchPrice(context.Background(), "77"))
}

func TestFetchPrice_Non200_ReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.Equal(t, PriceSentinel, client.FetchPrice(context.Background(), "77"))
}
