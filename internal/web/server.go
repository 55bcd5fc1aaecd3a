// internal/web/server.go
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"listing-summary/internal/common/errors"
	"listing-summary/internal/common/logger"
	"listing-summary/internal/common/metrics"
	"listing-summary/internal/common/observability"
	"listing-summary/internal/listing"
	"listing-summary/internal/marketplace"
	"listing-summary/internal/summarize"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// View is everything the page template needs. On a pipeline failure the
// generated values are emptied but the page still renders with HTTP 200.
type View struct {
	ListingID    string
	Error        string
	HasListing   bool
	Title        string
	Description  string
	Listing      listing.Normalized
	Reviews      []listing.Review
	Availability []marketplace.AvailabilityRange
	Summary      *summarize.SummaryVersion
	Bullets      *summarize.BulletsVersion
}

// Server exposes the single summary-form route and is the top-level
// error boundary: any failure escaping the pipeline is logged and
// rendered as an empty-but-valid page, never a 5xx.
type Server struct {
	market    *marketplace.Client
	generator *summarize.Generator
	obs       *observability.Observability
	logger    logger.Logger
}

func NewServer(market *marketplace.Client, generator *summarize.Generator, obs *observability.Observability, log logger.Logger) *Server {
	return &Server{
		market:    market,
		generator: generator,
		obs:       obs,
		logger: log.With(map[string]interface{}{
			"component": "web",
		}),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, View{})

	case http.MethodPost:
		listingID := strings.TrimSpace(r.FormValue("listing_id"))
		if listingID == "" {
			metrics.RequestsTotal.WithLabelValues("validation_error").Inc()
			s.render(w, View{
				Error: errors.NewListingIDRequiredError().Message,
			})
			return
		}

		start := time.Now()
		view, outcome := s.runPipeline(r.Context(), listingID)
		metrics.RequestsTotal.WithLabelValues(outcome).Inc()
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
		s.obs.RecordPipelineRun(r.Context(), outcome)
		s.obs.RecordPipelineDuration(r.Context(), time.Since(start), outcome)

		s.render(w, view)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// runPipeline executes fetch → normalize → generate → parse for one
// listing ID. Upstream fetch failures have already degraded to defaults
// inside the marketplace client; generation/parse failures are caught
// here and replaced by the documented all-empty fallback.
func (s *Server) runPipeline(ctx context.Context, listingID string) (View, string) {
	log := s.logger.With(map[string]interface{}{
		"requestId": uuid.NewString(),
		"listingId": listingID,
	})
	log.Info("processing listing summary request", nil)

	view := View{ListingID: listingID}

	raw := s.market.FetchListing(ctx, listingID)
	if raw == nil {
		log.Warn("listing unavailable, rendering empty page", nil)
		return view, "listing_missing"
	}

	boatID := marketplace.ResolveBoatID(raw, listingID)
	view.Availability = s.market.FetchAvailability(ctx, boatID)
	price := s.market.FetchPrice(ctx, boatID)
	reviews := listing.FilterReviews(s.market.FetchReviews(ctx, boatID))

	normalized := listing.Normalize(raw, price)

	view.HasListing = true
	view.Listing = normalized
	view.Reviews = reviews

	summary, bullets, err := s.generator.GenerateBoth(ctx, normalized, reviews)
	if err != nil {
		stdErr := errors.Normalize(err)
		log.Error("generation failed, substituting empty output", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"error":     stdErr.Error(),
		})
		// All five generated values render empty; the page itself still
		// returns 200 with the fetched listing data.
		view.Title = ""
		view.Description = ""
		view.Summary = nil
		view.Bullets = nil
		view.Reviews = nil
		return view, "generation_failed"
	}

	view.Title = raw.Headline
	view.Description = raw.Description
	view.Summary = summary
	view.Bullets = bullets

	log.Info("listing summary request completed", map[string]interface{}{
		"boatId":      boatID,
		"reviewCount": len(reviews),
	})
	return view, "success"
}

func (s *Server) render(w http.ResponseWriter, view View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, view); err != nil {
		s.logger.Error("template render failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
