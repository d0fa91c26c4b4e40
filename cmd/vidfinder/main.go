package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"vidfinder/finder"
	"vidfinder/finder/youtube"
	"vidfinder/internal/models"
	"vidfinder/shared/ai"
	"vidfinder/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
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

	f := finder.New(client, scorer)
	f.OnCandidates = func(candidates []models.SearchCandidate) {
		fmt.Println("\nTop Video Links:")
		for _, candidate := range candidates {
			fmt.Println(finder.WatchURL(candidate.ID))
		}
		fmt.Printf("\nAnalyzing video titles for relevance using %s...\n", cfg.AI.Model)
	}

	fmt.Print("Enter your search query (Hindi/English): ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	query := strings.TrimSpace(line)
	if query == "" {
		fmt.Println("No query provided.")
		return
	}

	fmt.Println("Searching YouTube for top 20 relevant videos...")

	best, err := f.Run(ctx, finder.QueryConfig{
		Query:            query,
		LookbackDays:     cfg.Search.LookbackDays,
		DurationCategory: cfg.Search.DurationCategory,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("\nBest Video Recommendation:")
	fmt.Println("Title       :", best.Title)
	fmt.Println("Channel     :", best.ChannelTitle)
	fmt.Println("Published At:", best.PublishedAt)
	fmt.Println("Duration    :", best.Duration)
	fmt.Println("URL         :", best.URL)
}
