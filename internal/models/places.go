package models

// AccommodationListing is a canned lodging search result
type AccommodationListing struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    float64  `json:"rating"`
	Price     string   `json:"price"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
}

// RestaurantListing is a canned restaurant search result
type RestaurantListing struct {
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"priceRange"`
	Address    string  `json:"address"`
	Image      string  `json:"image"`
}

// EventListing is a canned event search result
type EventListing struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}
