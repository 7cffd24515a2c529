package main

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/Fi1osof/hotels-booking-demo/internal/engine"
	"github.com/Fi1osof/hotels-booking-demo/internal/model"
	"github.com/Fi1osof/hotels-booking-demo/internal/store"
)

// Prints the statistics report for the catalog to stdout. Reads the same
// database as catalog-api when CATALOG_DB points at one, otherwise runs
// over the embedded seed data.
func main() {
	viper.SetEnvPrefix("catalog")
	viper.AutomaticEnv()
	viper.SetDefault("db", "")

	var hotels []model.Hotel
	if dbPath := viper.GetString("db"); dbPath != "" {
		if err := store.InitDB(dbPath); err != nil {
			log.Fatalf("❌ Failed to open catalog database: %v", err)
		}
		defer store.CloseDB()

		loaded, err := store.ListHotels()
		if err != nil {
			log.Fatalf("❌ Failed to load catalog: %v", err)
		}
		hotels = loaded
	} else {
		hotels = store.SeedData()
	}

	summary, err := engine.BuildSummary(hotels)
	if err != nil {
		log.Fatalf("❌ Failed to build statistics: %v", err)
	}

	fmt.Printf("📊 Catalog report (%d hotels)\n", summary.TotalHotels)
	fmt.Printf("   Average price: $%.0f ($%.0f - $%.0f)\n",
		summary.AvgPrice, summary.PriceRange.Min, summary.PriceRange.Max)
	fmt.Printf("   Average rating: %.1f ★\n", summary.AvgRating)

	fmt.Println("\n🏙 By city:")
	for _, group := range summary.ByCity {
		fmt.Printf("   %-12s %2d hotels  avg $%s  %s ★\n",
			group.Key, group.Count,
			formatAggregate(group.Aggregates["price"], "%.0f"),
			formatAggregate(group.Aggregates["rating"], "%.1f"))
	}

	fmt.Println("\n⭐ By rating tier:")
	for _, group := range summary.RatingTiers {
		fmt.Printf("   %-16s %2d hotels  avg $%s\n",
			group.Key, group.Count, formatAggregate(group.Aggregates["price"], "%.0f"))
	}

	fmt.Println("\n🛎 Top amenities:")
	for _, amenity := range summary.TopAmenities {
		share := float64(amenity.Count) / float64(summary.TotalHotels) * 100
		fmt.Printf("   %-12s %d hotels (%.0f%%)\n", amenity.Amenity, amenity.Count, share)
	}
}

func formatAggregate(value *float64, format string) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *value)
}
