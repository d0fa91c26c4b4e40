package finder

import (
	"math"
	"testing"

	"vidfinder/internal/models"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{"PT5M30S", 5.5},
		{"PT1H", 60},
		{"PT45S", 0.75},
		{"PT2H15M30S", 135.5},
		{"PT10M", 10},
		{"PT", 0},
		{"garbage", 0},
		{"", 0},
		{"5M30S", 0},
		{"PT5M30Sx", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseDurationMinutes(tt.token)
			if got != tt.want {
				t.Errorf("ParseDurationMinutes(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestRangeForCategory(t *testing.T) {
	tests := []struct {
		category    string
		wantMin     float64
		wantMax     float64
		unboundedAt bool
	}{
		{"short", 0, 4, false},
		{"medium", 4, 20, false},
		{"long", 20, 0, true},
		{"any", 0, 0, true},
		{"", 0, 0, true},
		{"bogus", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			r := RangeForCategory(tt.category)
			if r.Min != tt.wantMin {
				t.Errorf("Min = %v, want %v", r.Min, tt.wantMin)
			}
			if tt.unboundedAt {
				if !math.IsInf(r.Max, 1) {
					t.Errorf("Max = %v, want +Inf", r.Max)
				}
			} else if r.Max != tt.wantMax {
				t.Errorf("Max = %v, want %v", r.Max, tt.wantMax)
			}
		})
	}
}

func TestDurationRangeContains(t *testing.T) {
	r := DurationRange{Min: 4, Max: 20}

	tests := []struct {
		name    string
		minutes float64
		want    bool
	}{
		{"below min", 3.99, false},
		{"at min", 4, true},
		{"inside", 10, true},
		{"at max", 20, true},
		{"above max", 20.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.minutes); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestFilterByDuration(t *testing.T) {
	details := map[string]models.VideoDetail{
		"atmin":   {ID: "atmin", Duration: "PT4M"},
		"atmax":   {ID: "atmax", Duration: "PT20M"},
		"inside":  {ID: "inside", Duration: "PT10M30S"},
		"short":   {ID: "short", Duration: "PT3M59S"},
		"long":    {ID: "long", Duration: "PT20M1S"},
		"garbage": {ID: "garbage", Duration: "n/a"},
	}

	filtered := FilterByDuration(details, DurationRange{Min: 4, Max: 20})

	want := []string{"atmin", "atmax", "inside"}
	if len(filtered) != len(want) {
		t.Fatalf("got %d surviving videos, want %d: %v", len(filtered), len(want), filtered)
	}
	for _, id := range want {
		if _, ok := filtered[id]; !ok {
			t.Errorf("expected %s to survive the filter", id)
		}
	}

	// Output must be a subset of the input keyed by the same ids.
	for id, detail := range filtered {
		original, ok := details[id]
		if !ok {
			t.Errorf("filter invented id %s", id)
		}
		if detail != original {
			t.Errorf("filter modified entry %s", id)
		}
	}
}

func TestFilterByDurationUnbounded(t *testing.T) {
	details := map[string]models.VideoDetail{
		"zero": {ID: "zero", Duration: "garbage"},
		"long": {ID: "long", Duration: "PT10H"},
	}

	filtered := FilterByDuration(details, RangeForCategory("any"))
	if len(filtered) != 2 {
		t.Errorf("any category should keep everything, got %d of 2", len(filtered))
	}
}

func TestFilterByDurationEmptyResult(t *testing.T) {
	details := map[string]models.VideoDetail{
		"short": {ID: "short", Duration: "PT1M"},
	}

	filtered := FilterByDuration(details, RangeForCategory("long"))
	if filtered == nil {
		t.Fatal("filter should return an empty map, not nil")
	}
	if len(filtered) != 0 {
		t.Errorf("got %d surviving videos, want 0", len(filtered))
	}
}
