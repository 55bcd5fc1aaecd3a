// internal/web/server_test.go
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-summary/internal/common/logger"
	"listing-summary/internal/common/observability"
	"listing-summary/internal/marketplace"
	"listing-summary/internal/summarize"
)

// ==========================
// Test Fixtures
// ==========================

type fakeCompleter struct {
	response func(prompt string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response(prompt)
}

func wellFormedCompletion(prompt string) (string, error) {
	if strings.Contains(prompt, "Bullet 1 (Trip Experience)") {
		return "Bullets:\n- Perfect for celebrations\n- Spacious and comfortable\n- Attentive captain\nTags: party, chill, family, sunset", nil
	}
	return "Summary: A memorable day on the water.\nTags: party, chill, family, sunset", nil
}

// newMarketplaceStub serves all four upstream endpoints and counts the
// requests it receives. Reviews and price are registered under the
// listing's own id (555), which the resolver prefers over boat_id.
func newMarketplaceStub(t *testing.T, hits *int64) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/search/v1/boats/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          555,
			"boat_id":     777,
			"title":       "Harbor Hopper",
			"headline":    "Cruise the Harbor in Style",
			"description": "A classic runabout for small groups.",
			"location":    map[string]string{"name": "San Diego, CA"},
			"capacity":    6,
			"rate":        map[string]string{"display_price": "$120 per hour"},
		})
	})
	mux.HandleFunc("/api/v4/boats/555/reviews/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"boat_reviews": []map[string]interface{}{
				{"public_review": "Fantastic afternoon", "rating": 5, "date_created": "2024-06-10T09:00:00Z"},
			},
		})
	})
	mux.HandleFunc("/api/v4/instabook/availability_dates_only/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		json.NewEncoder(w).Encode([]map[string]string{
			{"start_date": "2025-10-01", "end_date": "2025-10-05"},
		})
	})
	mux.HandleFunc("/api/v4/boats/555/calculate_price/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		json.NewEncoder(w).Encode(map[string]string{"display_price": "$480"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestServer(t *testing.T, upstreamURL string, complete func(string) (string, error)) *Server {
	log := logger.NewTestLogger(t)

	cfg := marketplace.DefaultConfig()
	cfg.BaseURL = upstreamURL
	cfg.Timeout = 2 * time.Second
	market := marketplace.NewClient(cfg, log)

	generator := summarize.NewGenerator(
		&fakeCompleter{response: complete},
		summarize.NewMarkerParser(),
		log,
	)

	return NewServer(market, generator, &observability.Observability{}, log)
}

func postForm(t *testing.T, handler http.Handler, listingID string) *httptest.ResponseRecorder {
	form := url.Values{"listing_id": {listingID}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// ==========================
// Route Tests
// ==========================

func TestGetIndex_RendersEmptyForm(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="listing_id"`)
	assert.Zero(t, atomic.LoadInt64(&hits))
}

func TestHealthEndpoint(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPostIndex_BlankListingID(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	rec := postForm(t, server.Routes(), "   ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid Listing ID.")
	assert.Zero(t, atomic.LoadInt64(&hits), "blank input must not reach the upstream API")
}

func TestPostIndex_HappyPath(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	rec := postForm(t, server.Routes(), "555")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cruise the Harbor in Style")
	assert.Contains(t, body, "A classic runabout for small groups.")
	assert.Contains(t, body, "San Diego, CA")
	assert.Contains(t, body, "Estimated Price (4h/2 guests): $480")
	assert.Contains(t, body, "A memorable day on the water.")
	assert.Contains(t, body, "Perfect for celebrations")
	assert.Contains(t, body, "Fantastic afternoon")
	assert.Equal(t, int64(4), atomic.LoadInt64(&hits), "one call per upstream endpoint")
}

func TestPostIndex_GenerationParseFailure_RendersEmptyFallback(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, func(string) (string, error) {
		return "no markers in this reply", nil
	})

	rec := postForm(t, server.Routes(), "555")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "Cruise the Harbor in Style")
	assert.NotContains(t, body, "Fantastic afternoon")
	assert.NotContains(t, body, "A memorable day on the water.")
	// Fetched detail fields still render around the empty generation.
	assert.Contains(t, body, "San Diego, CA")
}

func TestPostIndex_ListingMissing_RendersEmptyPage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(upstream.Close)

	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	rec := postForm(t, server.Routes(), "does-not-exist")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="listing_id"`)
	assert.NotContains(t, rec.Body.String(), "San Diego, CA")
}

func TestIndex_MethodNotAllowed(t *testing.T) {
	var hits int64
	upstream := newMarketplaceStub(t, &hits)
	server := newTestServer(t, upstream.URL, wellFormedCompletion)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
