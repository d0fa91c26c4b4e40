package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidfinder/finder"
	"vidfinder/internal/models"
	"vidfinder/shared/config"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 for keyword search and batched detail
// lookups. Authentication is a plain API key; no user-scoped data is touched.
type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// Search returns up to maxResults videos matching the query, published after
// the given cutoff. The duration category is handed to the platform verbatim;
// local duration filtering is a separate stage. Upstream ordering is kept.
func (c *Client) Search(ctx context.Context, query string, maxResults int64, publishedAfter time.Time, category string) ([]models.SearchCandidate, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(maxResults).
		Type("video").
		PublishedAfter(publishedAfter.UTC().Format(time.RFC3339)).
		Context(ctx)

	if category != "" {
		call = call.VideoDuration(category)
	}

	response, err := call.Do()
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	return candidatesFromSearch(response), nil
}

// FetchDetails retrieves snippet and contentDetails for a batch of video ids
// in a single call. Ids the platform no longer knows (deleted or private
// videos) are simply absent from the result.
func (c *Client) FetchDetails(ctx context.Context, ids []string) (map[string]models.VideoDetail, error) {
	details := make(map[string]models.VideoDetail)
	if len(ids) == 0 {
		return details, nil
	}

	call := c.service.Videos.List([]string{"contentDetails", "snippet"}).
		Id(strings.Join(ids, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, wrapUpstreamError(err)
	}

	return detailsFromResponse(response), nil
}

func candidatesFromSearch(response *youtube.SearchListResponse) []models.SearchCandidate {
	candidates := make([]models.SearchCandidate, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		candidates = append(candidates, models.SearchCandidate{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return candidates
}

func detailsFromResponse(response *youtube.VideoListResponse) map[string]models.VideoDetail {
	details := make(map[string]models.VideoDetail, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.ContentDetails == nil {
			continue
		}
		details[item.Id] = models.VideoDetail{
			ID:           item.Id,
			Title:        item.Snippet.Title,
			Duration:     item.ContentDetails.Duration,
			PublishedAt:  item.Snippet.PublishedAt,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
	}
	return details
}

func wrapUpstreamError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &finder.UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Body}
	}
	return err
}
