package models

// WeatherSummary is the optional weather hint attached to AI requests
type WeatherSummary struct {
	Temp        *float64 `json:"temp"`
	Description string   `json:"description"`
}

// PackingRequest asks for a generated packing list
type PackingRequest struct {
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Weather     *WeatherSummary `json:"weather"`
}

// PackingListItem is one generated packing suggestion
type PackingListItem struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Packed   bool   `json:"packed"`
}

// PackingConditions summarizes the weather assumptions behind a packing list
type PackingConditions struct {
	Temp    float64 `json:"temp"`
	IsRainy bool    `json:"isRainy"`
	IsCold  bool    `json:"isCold"`
	IsHot   bool    `json:"isHot"`
}

// SuggestRequest asks for activity suggestions
type SuggestRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Weather     string `json:"weather"`
}

// Suggestion is one canned activity suggestion
type Suggestion struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Time               string `json:"time"`
	WeatherSuitability string `json:"weatherSuitability"`
}

// ChatContext carries optional client-side state for the chat responder
type ChatContext struct {
	Weather *ChatWeather `json:"weather"`
}

// ChatWeather is the current-weather slice of ChatContext
type ChatWeather struct {
	Temp     float64 `json:"temp"`
	Location string  `json:"location"`
}

// ChatRequest is a chat message with optional context
type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context"`
}
