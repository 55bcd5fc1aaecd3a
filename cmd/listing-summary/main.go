// cmd/listing-summary/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"listing-summary/internal/common/config"
	"listing-summary/internal/common/logger"
	"listing-summary/internal/common/observability"
	"listing-summary/internal/genai"
	"listing-summary/internal/marketplace"
	"listing-summary/internal/summarize"
	"listing-summary/internal/web"
)

func main() {
	configPath := flag.String("config", "", "explicit config file path; defaults to the configs/ lookup")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting listing-summary service...",
		zap.String("environment", cfg.App.Environment),
		zap.String("addr", cfg.Server.Addr()),
	)

	obs := observability.New("listing-summary")
	defer obs.Shutdown()

	market := marketplace.NewClient(&marketplace.Config{
		BaseURL:            cfg.Marketplace.BaseURL,
		Timeout:            config.GetDuration(cfg.Marketplace.Timeout),
		AvailabilityStart:  cfg.Marketplace.AvailabilityStart,
		AvailabilityEnd:    cfg.Marketplace.AvailabilityEnd,
		PriceCurrency:      cfg.Marketplace.PriceCurrency,
		PriceDuration:      cfg.Marketplace.PriceDuration,
		PriceGuests:        cfg.Marketplace.PriceGuests,
		PriceCaptainOption: cfg.Marketplace.PriceCaptainOption,
	}, log)

	completer := genai.NewClient(&genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		BaseURL: cfg.GenAI.BaseURL,
		Model:   cfg.GenAI.Model,
		Timeout: config.GetDuration(cfg.GenAI.Timeout),
	}, log)

	generator := summarize.NewGenerator(completer, summarize.NewMarkerParser(), log)

	server := web.NewServer(market, generator, obs, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// pprof for debugging, on a separate port, only in debug mode.
	if cfg.Server.Debug {
		go func() {
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLog.Warn("pprof server failed", zap.Error(err))
			}
		}()
	}

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.WriteTimeout))
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Service stopped")
}
