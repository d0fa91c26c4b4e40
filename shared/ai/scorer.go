package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"vidfinder/shared/config"

	"google.golang.org/genai"
)

// Scorer rates a video title's relevance to a search query with Gemini.
// The client and sampling configuration are fixed at construction and shared
// read-only across calls; a failed call is worth a 0 score, never an error.
type Scorer struct {
	client *genai.Client
	model  string
	genCfg *genai.GenerateContentConfig
}

func NewScorer(cfg *config.AIConfig) (*Scorer, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Scorer{
		client: client,
		model:  cfg.Model,
		genCfg: scoringConfig(),
	}, nil
}

// scoringConfig returns the fixed sampling parameters for every scoring call.
// Safety filtering is off for all hazard categories so that titles quoting
// edgy content still get rated instead of an empty response.
func scoringConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.75),
		TopP:            genai.Ptr[float32](0.8),
		TopK:            genai.Ptr[float32](45),
		MaxOutputTokens: 5000,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}
}

// Score returns a relevance score in [0,100] for the title against the
// query. Any failure (call, missing JSON, bad payload) is logged and mapped
// to 0 so one bad title never aborts the whole query.
func (s *Scorer) Score(ctx context.Context, query, title string) float64 {
	prompt := buildScoringPrompt(query, title)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, s.genCfg)
	if err != nil {
		log.Printf("Warning: Gemini call failed for title %q: %v", title, err)
		return 0
	}

	score, err := parseScoreResponse(result.Text())
	if err != nil {
		log.Printf("Warning: Failed to parse score for title %q: %v", title, err)
		return 0
	}

	return score
}

func buildScoringPrompt(query, title string) string {
	return fmt.Sprintf(`You are a scoring system. Rate the relevance of this video title for the search query.
Query: '%s'
Video Title: '%s'
Respond only with a JSON object in this exact format: {"score": number}
where number is between 1 and 100 based on relevance.`, query, title)
}

// parseScoreResponse pulls the first {...} object out of the model's reply.
// The reply is not trusted to be pure JSON; models routinely wrap it in prose
// or code fences.
func parseScoreResponse(response string) (float64, error) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return 0, fmt.Errorf("no JSON found in response: %s", response)
	}

	jsonStr := response[startIdx : endIdx+1]

	var result struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return 0, fmt.Errorf("failed to unmarshal JSON '%s': %w", jsonStr, err)
	}
	if result.Score == nil {
		return 0, fmt.Errorf("response JSON has no score key: %s", jsonStr)
	}

	return clampScore(*result.Score), nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
