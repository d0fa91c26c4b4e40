package ai

import (
	"strings"
	"testing"
)

func TestParseScoreResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
		wantErr  bool
	}{
		{
			name:     "pure JSON",
			response: `{"score": 87}`,
			want:     87,
		},
		{
			name:     "JSON embedded in prose",
			response: "Sure! Based on the title I would rate it as follows: {\"score\": 87} Hope that helps.",
			want:     87,
		},
		{
			name:     "fenced code block",
			response: "```json\n{\"score\": 42}\n```",
			want:     42,
		},
		{
			name:     "fractional score",
			response: `{"score": 66.5}`,
			want:     66.5,
		},
		{
			name:     "score above range clamped",
			response: `{"score": 250}`,
			want:     100,
		},
		{
			name:     "negative score clamped",
			response: `{"score": -5}`,
			want:     0,
		},
		{
			name:     "no JSON object",
			response: "I would rate this an 87 out of 100.",
			wantErr:  true,
		},
		{
			name:     "missing score key",
			response: `{"rating": 87}`,
			wantErr:  true,
		},
		{
			name:     "malformed JSON",
			response: `{"score": eighty-seven}`,
			wantErr:  true,
		},
		{
			name:     "empty response",
			response: "",
			wantErr:  true,
		},
		{
			name:     "closing brace before opening",
			response: "} nothing useful {",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScoreResponse(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseScoreResponse(%q) = %v, want error", tt.response, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScoreResponse(%q) failed: %v", tt.response, err)
			}
			if got != tt.want {
				t.Errorf("parseScoreResponse(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestBuildScoringPrompt(t *testing.T) {
	prompt := buildScoringPrompt("lofi beats", "lofi beats to study to")

	if !strings.Contains(prompt, "lofi beats") {
		t.Error("prompt missing the query")
	}
	if !strings.Contains(prompt, "lofi beats to study to") {
		t.Error("prompt missing the title")
	}
	if !strings.Contains(prompt, `{"score": number}`) {
		t.Error("prompt missing the required response format")
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{101, 100},
	}

	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
