package store

import "github.com/Fi1osof/hotels-booking-demo/internal/model"

// seedHotels is the static record collection the demo ships with, used when
// no external source is configured and the database is empty
var seedHotels = []model.Hotel{
	{
		ID: 1, Name: "Grand Palace Hotel", City: "Bangkok", Price: 120, Rating: 4.6,
		Amenities:    []string{"wifi", "pool", "spa", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-01-10", CheckOut: "2025-12-20"},
	},
	{
		ID: 2, Name: "Riverside Boutique", City: "Bangkok", Price: 85, Rating: 4.1,
		Amenities:    []string{"wifi", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-02-01", CheckOut: "2025-11-30"},
	},
	{
		ID: 3, Name: "Budget Stay Sukhumvit", City: "Bangkok", Price: 45, Rating: 3.2,
		Amenities:    []string{"wifi"},
		Availability: model.Availability{CheckIn: "2025-01-01", CheckOut: "2025-12-31"},
	},
	{
		ID: 4, Name: "Shinjuku Garden Hotel", City: "Tokyo", Price: 210, Rating: 4.4,
		Amenities:    []string{"wifi", "gym", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-03-01", CheckOut: "2025-10-15"},
	},
	{
		ID: 5, Name: "Tokyo Bay Resort", City: "Tokyo", Price: 340, Rating: 4.8,
		Amenities:    []string{"wifi", "pool", "spa", "gym", "parking"},
		Availability: model.Availability{CheckIn: "2025-01-15", CheckOut: "2025-12-10"},
	},
	{
		ID: 6, Name: "Capsule Inn Akihabara", City: "Tokyo", Price: 55, Rating: 3.6,
		Amenities:    []string{"wifi"},
		Availability: model.Availability{CheckIn: "2025-01-01", CheckOut: "2025-12-31"},
	},
	{
		ID: 7, Name: "Marina Sky Tower", City: "Dubai", Price: 480, Rating: 4.9,
		Amenities:    []string{"wifi", "pool", "spa", "gym", "parking", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-02-10", CheckOut: "2025-11-25"},
	},
	{
		ID: 8, Name: "Desert Rose Hotel", City: "Dubai", Price: 175, Rating: 4.0,
		Amenities:    []string{"wifi", "pool", "parking"},
		Availability: model.Availability{CheckIn: "2025-04-01", CheckOut: "2025-09-30"},
	},
	{
		ID: 9, Name: "Old Town Budget Rooms", City: "Dubai", Price: 65, Rating: 3.1,
		Amenities:    []string{"wifi", "parking"},
		Availability: model.Availability{CheckIn: "2025-01-05", CheckOut: "2025-12-28"},
	},
	{
		ID: 10, Name: "Le Jardin Paris", City: "Paris", Price: 260, Rating: 4.7,
		Amenities:    []string{"wifi", "spa", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-03-15", CheckOut: "2025-10-31"},
	},
	{
		ID: 11, Name: "Montmartre Petit Hotel", City: "Paris", Price: 140, Rating: 4.2,
		Amenities:    []string{"wifi", "breakfast"},
		Availability: model.Availability{CheckIn: "2025-02-20", CheckOut: "2025-11-15"},
	},
	{
		ID: 12, Name: "Gare du Nord Hostel", City: "Paris", Price: 50, Rating: 3.4,
		Amenities:    []string{"wifi"},
		Availability: model.Availability{CheckIn: "2025-01-01", CheckOut: "2025-12-31"},
	},
}

// SeedData returns a copy of the embedded catalog for offline use
func SeedData() []model.Hotel {
	hotels := make([]model.Hotel, len(seedHotels))
	copy(hotels, seedHotels)
	return hotels
}
