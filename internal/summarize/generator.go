// internal/summarize/generator.go
package summarize

import (
	"context"
	"time"

	"listing-summary/internal/common/logger"
	"listing-summary/internal/common/metrics"
	"listing-summary/internal/listing"
)

// Completer sends a prompt to the text-generation provider and returns
// the raw completion text. Satisfied by genai.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces both generation variants from the same normalized
// listing. Generation and parse failures propagate to the caller; the
// request boundary owns the fallback.
type Generator struct {
	completer Completer
	parser    ResponseParser
	logger    logger.Logger
}

func NewGenerator(completer Completer, parser ResponseParser, log logger.Logger) *Generator {
	return &Generator{
		completer: completer,
		parser:    parser,
		logger: log.With(map[string]interface{}{
			"component": "summarize",
		}),
	}
}

// GenerateSummary produces the paragraph+tags variant.
func (g *Generator) GenerateSummary(ctx context.Context, n listing.Normalized, reviews []listing.Review) (*SummaryVersion, error) {
	prompt := BuildSummaryPrompt(n, reviews)

	content, err := g.complete(ctx, "summary", prompt)
	if err != nil {
		return nil, err
	}

	summary, tags, err := g.parser.ParseSummary(content)
	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues("summary", "parse_error").Inc()
		return nil, err
	}

	g.logger.Info("summary variant generated", map[string]interface{}{
		"summaryLength": len(summary),
		"tagCount":      len(tags),
	})

	return &SummaryVersion{
		Summary: summary,
		Tags:    tags,
		Reviews: reviews,
	}, nil
}

// GenerateBullets produces the three-bullets+tags variant.
func (g *Generator) GenerateBullets(ctx context.Context, n listing.Normalized, reviews []listing.Review) (*BulletsVersion, error) {
	prompt := BuildBulletsPrompt(n, reviews)

	content, err := g.complete(ctx, "bullets", prompt)
	if err != nil {
		return nil, err
	}

	bullets, tags, err := g.parser.ParseBullets(content)
	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues("bullets", "parse_error").Inc()
		return nil, err
	}

	g.logger.Info("bullets variant generated", map[string]interface{}{
		"bulletCount": len(bullets),
		"tagCount":    len(tags),
	})

	return &BulletsVersion{
		Bullets: bullets,
		Tags:    tags,
		Reviews: reviews,
	}, nil
}

// GenerateBoth runs the two variants sequentially against the same
// input. The first failure aborts; partial output is never returned.
func (g *Generator) GenerateBoth(ctx context.Context, n listing.Normalized, reviews []listing.Review) (*SummaryVersion, *BulletsVersion, error) {
	summary, err := g.GenerateSummary(ctx, n, reviews)
	if err != nil {
		return nil, nil, err
	}

	bullets, err := g.GenerateBullets(ctx, n, reviews)
	if err != nil {
		return nil, nil, err
	}

	return summary, bullets, nil
}

func (g *Generator) complete(ctx context.Context, variant, prompt string) (string, error) {
	start := time.Now()
	content, err := g.completer.Complete(ctx, prompt)
	metrics.GenerationDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(variant, "error").Inc()
		return "", err
	}

	metrics.GenerationRequestsTotal.WithLabelValues(variant, "success").Inc()
	return content, nil
}
