// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cabnav/internal/automation"
	"cabnav/internal/config"
	httptransport "cabnav/internal/http"
	"cabnav/internal/infra"
	"cabnav/internal/modules/compare"
	"cabnav/internal/modules/history"
	"cabnav/internal/modules/location"
	"cabnav/internal/modules/prefs"
	"cabnav/internal/modules/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stdout, "cabnav-api ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	executor, err := automation.NewGeminiExecutor(ctx, cfg.AI.GeminiKey, cfg.Device.Serial, cfg.Device.Platform)
	if err != nil {
		log.Fatalf("automation init: %v", err)
	}
	defer executor.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	historySvc := history.NewService(history.NewStore(dbPool), history.NewCache(redisClient), logger)

	profiles := selectProfiles(cfg.Providers)
	registry := provider.NewRegistry(profiles, executor, cfg.Timeouts, logger)

	opts := []compare.Option{compare.WithRecorder(historySvc)}
	if cfg.Maps.APIKey != "" {
		routes, err := location.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		opts = append(opts, compare.WithRouteEstimator(routes))
	}
	orchestrator := compare.NewOrchestrator(registry, cfg.Timeouts.Compare, logger, opts...)

	extractor := prefs.NewExtractor(nil, logger)

	handler := httptransport.NewRouter(orchestrator, extractor, historySvc, logger)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func selectProfiles(names []string) []provider.Profile {
	var out []provider.Profile
	for _, name := range names {
		for _, p := range provider.DefaultProfiles {
			if p.Name == name {
				out = append(out, p)
			}
		}
	}
	return out
}
