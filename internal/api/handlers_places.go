package api

import (
	"fmt"

	"github.com/skycast/api/internal/models"
	"github.com/valyala/fasthttp"
)

// The places endpoints return mocked listings interpolated with the requested
// location. They exist so the client has stable data to render while a real
// places provider is out of scope.

func placesLocation(ctx *fasthttp.RequestCtx) string {
	location := string(ctx.QueryArgs().Peek("location"))
	if location == "" {
		return "Unknown"
	}
	return location
}

// accommodationHandler returns mocked lodging listings
func (s *Server) accommodationHandler(ctx *fasthttp.RequestCtx) {
	location := placesLocation(ctx)

	accommodations := []models.AccommodationListing{
		{
			Name:      fmt.Sprintf("Grand Hotel %s", location),
			Address:   fmt.Sprintf("123 Main St, %s", location),
			Rating:    4.5,
			Price:     "$120/night",
			Amenities: []string{"WiFi", "Pool", "Breakfast"},
			Image:     "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400",
		},
		{
			Name:      fmt.Sprintf("Budget Inn %s", location),
			Address:   fmt.Sprintf("456 Side St, %s", location),
			Rating:    3.8,
			Price:     "$65/night",
			Amenities: []string{"WiFi", "Parking"},
			Image:     "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=400",
		},
		{
			Name:      fmt.Sprintf("Luxury Resort %s", location),
			Address:   fmt.Sprintf("789 Beach Rd, %s", location),
			Rating:    4.9,
			Price:     "$280/night",
			Amenities: []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym"},
			Image:     "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400",
		},
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]models.AccommodationListing{
		"accommodations": accommodations,
	})
}

// restaurantsHandler returns mocked restaurant listings
func (s *Server) restaurantsHandler(ctx *fasthttp.RequestCtx) {
	location := placesLocation(ctx)

	restaurants := []models.RestaurantListing{
		{
			Name:       "Local Flavors",
			Cuisine:    "Traditional",
			Rating:     4.6,
			PriceRange: "$$",
			Address:    fmt.Sprintf("101 Food St, %s", location),
			Image:      "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400",
		},
		{
			Name:       "Seafood Paradise",
			Cuisine:    "Seafood",
			Rating:     4.8,
			PriceRange: "$$$",
			Address:    fmt.Sprintf("202 Harbor View, %s", location),
			Image:      "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=400",
		},
		{
			Name:       "Street Food Corner",
			Cuisine:    "Street Food",
			Rating:     4.3,
			PriceRange: "$",
			Address:    fmt.Sprintf("303 Market Square, %s", location),
			Image:      "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400",
		},
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]models.RestaurantListing{
		"restaurants": restaurants,
	})
}

// eventsHandler returns mocked event listings
func (s *Server) eventsHandler(ctx *fasthttp.RequestCtx) {
	location := placesLocation(ctx)

	events := []models.EventListing{
		{
			Name:     fmt.Sprintf("%s Music Festival", location),
			Date:     "2025-02-15",
			Time:     "18:00",
			Location: fmt.Sprintf("Central Park, %s", location),
			Category: "Music",
			Price:    "$35",
			Image:    "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=400",
		},
		{
			Name:     "Food & Wine Expo",
			Date:     "2025-02-20",
			Time:     "12:00",
			Location: fmt.Sprintf("Convention Center, %s", location),
			Category: "Food",
			Price:    "Free",
			Image:    "https://images.unsplash.com/photo-1555244162-803834f70033?w=400",
		},
		{
			Name:     "Art Gallery Opening",
			Date:     "2025-02-18",
			Time:     "19:00",
			Location: fmt.Sprintf("Downtown Gallery, %s", location),
			Category: "Art",
			Price:    "$15",
			Image:    "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=400",
		},
	}

	s.sendJSON(ctx, fasthttp.StatusOK, map[string][]models.EventListing{
		"events": events,
	})
}
