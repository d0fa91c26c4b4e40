package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidfinder/finder"
	"vidfinder/finder/youtube"
	"vidfinder/shared/ai"
	"vidfinder/shared/config"
	"vidfinder/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	scorer, err := ai.NewScorer(&cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create scorer: %v", err)
	}

	server := web.NewServer(finder.New(client, scorer), finder.QueryConfig{
		LookbackDays:     cfg.Search.LookbackDays,
		DurationCategory: cfg.Search.DurationCategory,
	})

	httpServer := &http.Server{
		Addr:    cfg.Web.ListenAddr,
		Handler: server.Handler(),
	}

	go func() {
		log.Printf("Web server listening on %s", cfg.Web.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
