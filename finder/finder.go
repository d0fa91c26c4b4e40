package finder

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"vidfinder/internal/models"
)

// maxSearchResults is the single page of candidates requested from the
// platform; there is no pagination.
const maxSearchResults = 20

// VideoSource provides the two platform calls the finder composes. The
// publishedAfter cutoff is computed by the finder, never by the source, so
// identical inputs produce an identical request.
type VideoSource interface {
	Search(ctx context.Context, query string, maxResults int64, publishedAfter time.Time, category string) ([]models.SearchCandidate, error)
	FetchDetails(ctx context.Context, ids []string) (map[string]models.VideoDetail, error)
}

// TitleScorer rates how well a title matches a query on a 0-100 scale.
// Implementations absorb their own failures and return 0 instead of an error.
type TitleScorer interface {
	Score(ctx context.Context, query, title string) float64
}

// QueryConfig is one query's worth of caller input. Nothing here is
// persisted.
type QueryConfig struct {
	Query            string
	LookbackDays     int
	DurationCategory string
}

// Finder runs a query end to end: search, detail lookup, duration filter,
// per-title scoring, and a stable max-by-score selection. Each stage fully
// completes before the next begins.
type Finder struct {
	source VideoSource
	scorer TitleScorer

	// OnCandidates, when set, receives the raw search results before the
	// detail lookup. The CLI uses it to print the top video links.
	OnCandidates func([]models.SearchCandidate)
}

func New(source VideoSource, scorer TitleScorer) *Finder {
	return &Finder{
		source: source,
		scorer: scorer,
	}
}

// WatchURL builds the public watch link for a video id.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// Run executes a single query and returns the best-scoring video. Search and
// detail failures abort the run; scoring failures are absorbed per title by
// the scorer. Ties keep the earliest candidate in search order, so a run over
// the same inputs always picks the same winner.
func (f *Finder) Run(ctx context.Context, cfg QueryConfig) (*models.Recommendation, error) {
	publishedAfter := time.Now().UTC().AddDate(0, 0, -cfg.LookbackDays)

	candidates, err := f.source.Search(ctx, cfg.Query, maxSearchResults, publishedAfter, cfg.DurationCategory)
	if err != nil {
		return nil, fmt.Errorf("error during YouTube search: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoVideos
	}

	if f.OnCandidates != nil {
		f.OnCandidates(candidates)
	}

	ids := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	details, err := f.source.FetchDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error fetching video details: %w", err)
	}

	durationRange := RangeForCategory(cfg.DurationCategory)
	filtered := FilterByDuration(details, durationRange)
	if len(filtered) == 0 {
		return nil, ErrNoDurationMatch
	}

	// Score survivors in search order. Replacing the best only on a strictly
	// greater score keeps the first-seen candidate on ties.
	var bestID string
	bestScore := math.Inf(-1)
	for _, id := range ids {
		detail, ok := filtered[id]
		if !ok {
			continue
		}
		score := f.scorer.Score(ctx, cfg.Query, detail.Title)
		log.Printf("Scored %q: %.0f", detail.Title, score)
		if score > bestScore {
			bestScore = score
			bestID = id
		}
	}

	best := filtered[bestID]
	return &models.Recommendation{
		VideoDetail: best,
		Score:       bestScore,
		URL:         WatchURL(bestID),
	}, nil
}
