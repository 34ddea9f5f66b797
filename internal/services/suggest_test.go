package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/skycast/api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func findItem(items []models.PackingListItem, item string) bool {
	for _, it := range items {
		if it.Item == item {
			return true
		}
	}
	return false
}

func TestPackingListValidation(t *testing.T) {
	service := NewSuggestService()

	tests := []struct {
		name string
		req  models.PackingRequest
	}{
		{
			name: "missing destination",
			req:  models.PackingRequest{StartDate: "2025-06-01", EndDate: "2025-06-05"},
		},
		{
			name: "missing dates",
			req:  models.PackingRequest{Destination: "Lisbon"},
		},
		{
			name: "malformed start date",
			req:  models.PackingRequest{Destination: "Lisbon", StartDate: "June 1st", EndDate: "2025-06-05"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.PackingList(tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("PackingList() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestPackingListScalesWithTripLength(t *testing.T) {
	service := NewSuggestService()

	items, cond, err := service.PackingList(models.PackingRequest{
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-06",
	})
	if err != nil {
		t.Fatalf("PackingList() error = %v", err)
	}

	// 5 days: days+2 underwear, days socks, ceil(days/2) pants
	if !findItem(items, "7 Underwear") {
		t.Error("expected 7 Underwear for a 5-day trip")
	}
	if !findItem(items, "5 Pairs of socks") {
		t.Error("expected 5 Pairs of socks for a 5-day trip")
	}
	if !findItem(items, "3 Pants/jeans") {
		t.Error("expected 3 Pants/jeans for a 5-day trip")
	}

	// No weather given: default temperature, no branch items
	if cond.Temp != defaultTemp || cond.IsCold || cond.IsHot || cond.IsRainy {
		t.Errorf("conditions = %+v, want mild defaults", cond)
	}
	if !findItem(items, "Medium jacket") {
		t.Error("expected Medium jacket in mild weather")
	}
	if findItem(items, "Umbrella") || findItem(items, "Gloves") || findItem(items, "Shorts") {
		t.Error("unexpected weather-branch items in mild weather")
	}
}

func TestPackingListSameDayTripCountsAsOneDay(t *testing.T) {
	service := NewSuggestService()

	items, _, err := service.PackingList(models.PackingRequest{
		Destination: "Porto",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-01",
	})
	if err != nil {
		t.Fatalf("PackingList() error = %v", err)
	}

	if !findItem(items, "3 Underwear") {
		t.Error("expected 3 Underwear for a same-day trip")
	}
	if !findItem(items, "1 Pairs of socks") {
		t.Error("expected 1 Pairs of socks for a same-day trip")
	}
}

func TestPackingListWeatherBranches(t *testing.T) {
	service := NewSuggestService()

	tests := []struct {
		name        string
		weather     *models.WeatherSummary
		wantItems   []string
		absentItems []string
		check       func(t *testing.T, cond models.PackingConditions)
	}{
		{
			name:        "cold",
			weather:     &models.WeatherSummary{Temp: floatPtr(5), Description: "clear sky"},
			wantItems:   []string{"Warm jacket", "Gloves", "Scarf"},
			absentItems: []string{"Shorts", "Umbrella"},
			check: func(t *testing.T, cond models.PackingConditions) {
				if !cond.IsCold || cond.IsHot {
					t.Errorf("conditions = %+v, want cold", cond)
				}
			},
		},
		{
			name:        "hot",
			weather:     &models.WeatherSummary{Temp: floatPtr(35), Description: "clear sky"},
			wantItems:   []string{"Light jacket", "Shorts", "Sunglasses"},
			absentItems: []string{"Gloves", "Raincoat"},
			check: func(t *testing.T, cond models.PackingConditions) {
				if !cond.IsHot || cond.IsCold {
					t.Errorf("conditions = %+v, want hot", cond)
				}
			},
		},
		{
			name:        "rainy",
			weather:     &models.WeatherSummary{Temp: floatPtr(20), Description: "light rain"},
			wantItems:   []string{"Raincoat", "Umbrella", "Medium jacket"},
			absentItems: []string{"Shorts", "Gloves"},
			check: func(t *testing.T, cond models.PackingConditions) {
				if !cond.IsRainy {
					t.Errorf("conditions = %+v, want rainy", cond)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, cond, err := service.PackingList(models.PackingRequest{
				Destination: "Bergen",
				StartDate:   "2025-06-01",
				EndDate:     "2025-06-04",
				Weather:     tt.weather,
			})
			if err != nil {
				t.Fatalf("PackingList() error = %v", err)
			}

			for _, item := range tt.wantItems {
				if !findItem(items, item) {
					t.Errorf("missing item %q", item)
				}
			}
			for _, item := range tt.absentItems {
				if findItem(items, item) {
					t.Errorf("unexpected item %q", item)
				}
			}
			tt.check(t, cond)
		})
	}
}

func TestSuggestionsWeatherBranch(t *testing.T) {
	service := NewSuggestService()

	sunny := service.Suggestions("Rome", "sunny")
	if len(sunny) != 4 {
		t.Fatalf("got %d suggestions, want 4", len(sunny))
	}
	if sunny[0].Title != "🏞️ Outdoor Exploration" {
		t.Errorf("first title = %q, want outdoor exploration", sunny[0].Title)
	}
	if sunny[2].Title != "📸 Photography Walk" {
		t.Errorf("third title = %q, want photography walk", sunny[2].Title)
	}

	rainy := service.Suggestions("Rome", "heavy rain")
	if rainy[0].Title != "🏛️ Indoor Attractions" {
		t.Errorf("first title = %q, want indoor attractions", rainy[0].Title)
	}
	if rainy[2].Title != "☕ Cozy Café Hopping" {
		t.Errorf("third title = %q, want café hopping", rainy[2].Title)
	}

	// Destination appears in every description
	for i, sug := range sunny {
		if !strings.Contains(sug.Description, "Rome") {
			t.Errorf("suggestion %d description %q does not mention destination", i, sug.Description)
		}
	}
}

func TestSuggestionsDefaultDestination(t *testing.T) {
	service := NewSuggestService()

	got := service.Suggestions("", "sunny")
	if !strings.Contains(got[1].Description, "your destination") {
		t.Errorf("description = %q, want fallback destination", got[1].Description)
	}
}

func TestChatReplyKeywordRouting(t *testing.T) {
	service := NewSuggestService()

	tests := []struct {
		name     string
		message  string
		chatCtx  *models.ChatContext
		contains string
	}{
		{
			name:     "weather",
			message:  "What's the weather like?",
			contains: "Weather tab",
		},
		{
			name:    "weather with context",
			message: "current temperature please",
			chatCtx: &models.ChatContext{
				Weather: &models.ChatWeather{Temp: 21, Location: "Madrid"},
			},
			contains: "21°C in Madrid",
		},
		{
			name:     "packing",
			message:  "what should I bring?",
			contains: "packing list",
		},
		{
			name:     "route",
			message:  "how to get there",
			contains: "plan your route",
		},
		{
			name:     "activities",
			message:  "things to do nearby",
			contains: "AI suggest feature",
		},
		{
			name:     "accommodation",
			message:  "find me a hotel",
			contains: "find accommodations",
		},
		{
			name:     "greeting",
			message:  "hello!",
			contains: "travel assistant",
		},
		{
			name:     "fallback",
			message:  "quantum flux capacitor",
			contains: "What would you like to know?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ChatReply(tt.message, tt.chatCtx)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("ChatReply(%q) = %q, want to contain %q", tt.message, got, tt.contains)
			}
		})
	}
}
