package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a user-owned travel plan. Nested sub-records (itinerary,
// packing list, places) are stored as JSONB documents alongside the row.
type Trip struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"`
	Destination   string         `json:"destination" db:"destination"`
	StartDate     string         `json:"startDate" db:"start_date"`
	EndDate       string         `json:"endDate" db:"end_date"`
	Itinerary     []ItineraryDay `json:"itinerary" db:"itinerary"`
	PackingList   []PackingItem  `json:"packingList" db:"packing_list"`
	Accommodation *Accommodation `json:"accommodation,omitempty" db:"accommodation"`
	Restaurants   []Restaurant   `json:"restaurants" db:"restaurants"`
	Events        []Event        `json:"events" db:"events"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

// TripInput carries the caller-settable trip fields for create and update.
type TripInput struct {
	Destination   string         `json:"destination"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	PackingList   []PackingItem  `json:"packingList"`
	Accommodation *Accommodation `json:"accommodation"`
	Restaurants   []Restaurant   `json:"restaurants"`
	Events        []Event        `json:"events"`
}

// ItineraryDay is one day of a trip plan
type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a single planned activity within a day
type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// PackingItem is one entry of a trip packing list
type PackingItem struct {
	Item   string `json:"item"`
	Packed bool   `json:"packed"`
}

// Accommodation is an optional lodging sub-record
type Accommodation struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Restaurant is an optional restaurant sub-record
type Restaurant struct {
	Name     string `json:"name"`
	Cuisine  string `json:"cuisine"`
	Location string `json:"location"`
}

// Event is an optional event sub-record
type Event struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}
