package titles

import (
	"testing"

	"github.com/lucidmotion/showreel/internal/models"
)

func TestParseFullConvention(t *testing.T) {
	parsed := Parse("2024_Nike_Air Max Launch_AD")

	if parsed.Year != 2024 {
		t.Errorf("Year = %d, want 2024", parsed.Year)
	}
	if parsed.Client != "Nike" {
		t.Errorf("Client = %q, want %q", parsed.Client, "Nike")
	}
	if parsed.Title != "Air Max Launch" {
		t.Errorf("Title = %q, want %q", parsed.Title, "Air Max Launch")
	}
	if parsed.Kind != models.KindAd {
		t.Errorf("Kind = %q, want %q", parsed.Kind, models.KindAd)
	}
	if parsed.FeaturedOrder != nil {
		t.Errorf("FeaturedOrder = %d, want unset", *parsed.FeaturedOrder)
	}
}

func TestParseFeaturedOrder(t *testing.T) {
	parsed := Parse("2023_Acme_Brand Film_FULL #2")

	if parsed.FeaturedOrder == nil || *parsed.FeaturedOrder != 2 {
		t.Fatalf("FeaturedOrder = %v, want 2", parsed.FeaturedOrder)
	}
	if parsed.Year != 2023 {
		t.Errorf("Year = %d, want 2023", parsed.Year)
	}
	if parsed.Client != "Acme" {
		t.Errorf("Client = %q, want %q", parsed.Client, "Acme")
	}
	if parsed.Title != "Brand Film" {
		t.Errorf("Title = %q, want %q", parsed.Title, "Brand Film")
	}
	if parsed.Kind != models.KindFull {
		t.Errorf("Kind = %q, want %q", parsed.Kind, models.KindFull)
	}
}

func TestParseTotality(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"no underscores", "Just a plain title"},
		{"only underscores", "____"},
		{"only marker", "#7"},
		{"unicode", "2022_Büro_Zürich Reel_MV"},
		{"marker lookalikes", "Reel #1 #2 #3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic for any input.
			_ = Parse(tt.raw)
		})
	}
}

func TestParseOnlyFinalMarkerHonored(t *testing.T) {
	parsed := Parse("Reel #1 #2")

	if parsed.FeaturedOrder == nil || *parsed.FeaturedOrder != 2 {
		t.Fatalf("FeaturedOrder = %v, want 2 (only the final marker counts)", parsed.FeaturedOrder)
	}
}

func TestParseFieldRules(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantYear   int
		wantClient string
		wantTitle  string
		wantKind   models.TitleKind
	}{
		{
			name: "non-year first token not consumed for client",
			raw:  "Nike_Acme_Spot",
			// Token 0 is not a year; client still reads from index 1.
			wantClient: "Acme",
			wantTitle:  "Spot",
		},
		{
			name:       "year and client only",
			raw:        "2024_Nike",
			wantYear:   2024,
			wantClient: "Nike",
		},
		{
			name:       "lowercase type consumed and uppercased",
			raw:        "2021_Acme_Teaser_snippet",
			wantYear:   2021,
			wantClient: "Acme",
			wantTitle:  "Teaser",
			wantKind:   models.KindSnippet,
		},
		{
			name:       "multi-token title span",
			raw:        "2020_Studio_Part One_Part Two_BREAKDOWN",
			wantYear:   2020,
			wantClient: "Studio",
			wantTitle:  "Part One Part Two",
			wantKind:   models.KindBreakdown,
		},
		{
			name:      "single token",
			raw:       "Showreel",
			wantTitle: "",
		},
		{
			name:     "five digit first token is not a year",
			raw:      "20241_Acme_Spot",
			wantYear: 0, wantClient: "Acme", wantTitle: "Spot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.raw)
			if parsed.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", parsed.Year, tt.wantYear)
			}
			if parsed.Client != tt.wantClient {
				t.Errorf("Client = %q, want %q", parsed.Client, tt.wantClient)
			}
			if parsed.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", parsed.Title, tt.wantTitle)
			}
			if parsed.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", parsed.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseEmptyTokensSkipped(t *testing.T) {
	parsed := Parse("2024__Nike__Spot_AD")

	if parsed.Client != "Nike" {
		t.Errorf("Client = %q, want %q", parsed.Client, "Nike")
	}
	if parsed.Title != "Spot" {
		t.Errorf("Title = %q, want %q", parsed.Title, "Spot")
	}
}
