package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/skycast/api/internal/models"
)

// Temperature thresholds for packing rules, in degrees Celsius.
const (
	coldThreshold = 15
	hotThreshold  = 30
	defaultTemp   = 25
)

// SuggestService generates rule-based packing lists, activity suggestions
// and chat replies. It is pure computation; no provider or store behind it.
type SuggestService struct{}

// NewSuggestService creates a new suggest service
func NewSuggestService() *SuggestService {
	return &SuggestService{}
}

// PackingList generates a packing list for a trip, scaled by trip length and
// branched on expected weather.
func (s *SuggestService) PackingList(req models.PackingRequest) ([]models.PackingListItem, models.PackingConditions, error) {
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, models.PackingConditions{}, fmt.Errorf("%w: destination, startDate and endDate are required", ErrValidation)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, models.PackingConditions{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrValidation)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, models.PackingConditions{}, fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrValidation)
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}

	cond := models.PackingConditions{Temp: defaultTemp}
	if req.Weather != nil {
		if req.Weather.Temp != nil {
			cond.Temp = *req.Weather.Temp
		}
		cond.IsRainy = strings.Contains(strings.ToLower(req.Weather.Description), "rain")
	}
	cond.IsCold = cond.Temp < coldThreshold
	cond.IsHot = cond.Temp > hotThreshold

	jacket := "Medium jacket"
	if cond.IsCold {
		jacket = "Warm jacket"
	} else if cond.IsHot {
		jacket = "Light jacket"
	}

	list := []models.PackingListItem{
		{Category: "Clothing", Item: fmt.Sprintf("%d Underwear", days+2)},
		{Category: "Clothing", Item: fmt.Sprintf("%d Pairs of socks", days)},
		{Category: "Clothing", Item: jacket},
		{Category: "Clothing", Item: fmt.Sprintf("%d Pants/jeans", (days+1)/2)},
		{Category: "Clothing", Item: fmt.Sprintf("%d Shirts/tops", days)},
	}

	if cond.IsHot {
		list = append(list,
			models.PackingListItem{Category: "Clothing", Item: "Shorts"},
			models.PackingListItem{Category: "Clothing", Item: "Sunglasses"})
	}
	if cond.IsCold {
		list = append(list,
			models.PackingListItem{Category: "Clothing", Item: "Gloves"},
			models.PackingListItem{Category: "Clothing", Item: "Scarf"})
	}
	if cond.IsRainy {
		list = append(list,
			models.PackingListItem{Category: "Clothing", Item: "Raincoat"},
			models.PackingListItem{Category: "Clothing", Item: "Umbrella"})
	}

	list = append(list,
		models.PackingListItem{Category: "Toiletries", Item: "Toothbrush & toothpaste"},
		models.PackingListItem{Category: "Toiletries", Item: "Shampoo & conditioner"},
		models.PackingListItem{Category: "Toiletries", Item: "Deodorant"},
		models.PackingListItem{Category: "Toiletries", Item: "Sunscreen (SPF 50+)"},
		models.PackingListItem{Category: "Toiletries", Item: "Medications"},
		models.PackingListItem{Category: "Electronics", Item: "Phone charger"},
		models.PackingListItem{Category: "Electronics", Item: "Power bank"},
		models.PackingListItem{Category: "Electronics", Item: "Universal adapter"},
		models.PackingListItem{Category: "Electronics", Item: "Camera"},
		models.PackingListItem{Category: "Documents", Item: "Passport/ID"},
		models.PackingListItem{Category: "Documents", Item: "Travel tickets"},
		models.PackingListItem{Category: "Documents", Item: "Hotel confirmations"},
		models.PackingListItem{Category: "Documents", Item: "Travel insurance"},
		models.PackingListItem{Category: "Essentials", Item: "Wallet & cards"},
		models.PackingListItem{Category: "Essentials", Item: "Cash (local currency)"},
		models.PackingListItem{Category: "Essentials", Item: "Hand sanitizer"},
		models.PackingListItem{Category: "Essentials", Item: "Face masks"},
		models.PackingListItem{Category: "Essentials", Item: "Water bottle"},
	)

	return list, cond, nil
}

// Suggestions returns canned activity suggestions for a destination, keyed
// on whether the weather description mentions rain.
func (s *SuggestService) Suggestions(destination, weather string) []models.Suggestion {
	if destination == "" {
		destination = "your destination"
	}
	goodWeather := !strings.Contains(strings.ToLower(weather), "rain")

	first := models.Suggestion{
		Title:              "🏛️ Indoor Attractions",
		Description:        fmt.Sprintf("Visit museums and indoor attractions in %s.", destination),
		Time:               "Morning to Afternoon",
		WeatherSuitability: "Ideal",
	}
	third := models.Suggestion{
		Title:              "☕ Cozy Café Hopping",
		Description:        fmt.Sprintf("Explore local cafés in %s.", destination),
		Time:               "Flexible",
		WeatherSuitability: "Excellent",
	}
	if goodWeather {
		first.Title = "🏞️ Outdoor Exploration"
		first.Description = fmt.Sprintf("Perfect %s weather for exploring %s's natural beauty.", weather, destination)
		third.Title = "📸 Photography Walk"
		third.Description = fmt.Sprintf("Capture stunning photos around %s.", destination)
	}

	return []models.Suggestion{
		first,
		{
			Title:              "🍽️ Local Cuisine Tour",
			Description:        fmt.Sprintf("Discover authentic restaurants in %s.", destination),
			Time:               "Lunch/Dinner",
			WeatherSuitability: "Perfect",
		},
		third,
		{
			Title:              "🛍️ Shopping & Markets",
			Description:        fmt.Sprintf("Browse local markets in %s.", destination),
			Time:               "Afternoon",
			WeatherSuitability: "Good",
		},
	}
}

// ChatReply routes a chat message by keyword to a canned assistant reply
func (s *SuggestService) ChatReply(message string, chatCtx *models.ChatContext) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "weather") || strings.Contains(lower, "temperature"):
		reply := "I can help you check the weather! Go to the Weather tab and enter your destination."
		if chatCtx != nil && chatCtx.Weather != nil {
			reply += fmt.Sprintf(" Currently it's %.0f°C in %s.", chatCtx.Weather.Temp, chatCtx.Weather.Location)
		}
		return reply
	case strings.Contains(lower, "pack") || strings.Contains(lower, "bring"):
		return "I can generate a packing list for you! Use the Trip Planner tab and I'll suggest items based on your destination's weather."
	case strings.Contains(lower, "route") || strings.Contains(lower, "how to get"):
		return "I can help you plan your route! Go to the Maps tab and enter your source and destination."
	case strings.Contains(lower, "activity") || strings.Contains(lower, "things to do") || strings.Contains(lower, "do"):
		return "Looking for things to do? Use the Trip Planner's AI suggest feature to get weather-based activity recommendations!"
	case strings.Contains(lower, "hotel") || strings.Contains(lower, "accommodation"):
		return "I can help you find accommodations! Check the Itinerary tab where you can search for hotels near your destination."
	case strings.Contains(lower, "hi") || strings.Contains(lower, "hello") || strings.Contains(lower, "hey"):
		return "Hey there! I'm your travel assistant. I can help with weather, routes, packing lists and suggestions. What would you like to do?"
	default:
		return "I'm your travel assistant! I can help you with:\n- Weather forecasts\n- Route planning\n- Packing lists\n- Activity suggestions\n- Accommodation finding\n\nWhat would you like to know?"
	}
}
